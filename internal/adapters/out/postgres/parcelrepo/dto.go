// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. Implements the repository pattern for the parcel domain
// aggregate, converting between domain entities and database rows.
package parcelrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The rider snapshot is denormalized into rider_* columns; the history lives
// in a child table ordered by seq.
type ParcelDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrackingID string    `gorm:"type:varchar(64);uniqueIndex;not null"`

	Name          string  `gorm:"type:varchar(255);not null"`
	Type          string  `gorm:"type:varchar(64)"`
	Weight        float64 `gorm:"type:numeric"`
	DeliveryZone  string  `gorm:"type:varchar(64)"`
	BaseCost      float64 `gorm:"type:numeric"`
	ExtraCharges  float64 `gorm:"type:numeric"`
	DeliveryCost  float64 `gorm:"type:numeric;not null"`
	PaymentMethod string  `gorm:"type:varchar(32)"`
	CreatedBy     string  `gorm:"type:varchar(255);not null;index"`

	Sender   ContactDTO `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver ContactDTO `gorm:"embedded;embeddedPrefix:receiver_"`

	ParcelStatus   string `gorm:"type:varchar(32);not null"`
	PaymentStatus  string `gorm:"type:varchar(32);not null"`
	DeliveryStatus string `gorm:"type:varchar(32);not null"`

	RiderID        *uuid.UUID `gorm:"type:uuid;index"`
	RiderName      *string    `gorm:"type:varchar(255)"`
	RiderEmail     *string    `gorm:"type:varchar(255);index"`
	RiderPhone     *string    `gorm:"type:varchar(32)"`
	RiderBikeRegNo *string    `gorm:"type:varchar(64)"`

	EarningsCredited bool `gorm:"not null;default:false"`

	History []HistoryEntryDTO `gorm:"foreignKey:ParcelID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// ContactDTO represents the embedded sender/receiver contact columns.
type ContactDTO struct {
	Name     string `gorm:"type:varchar(255)"`
	Phone    string `gorm:"type:varchar(32)"`
	Region   string `gorm:"type:varchar(64)"`
	District string `gorm:"type:varchar(64)"`
	Address  string `gorm:"type:varchar(512)"`
}

// HistoryEntryDTO represents one row of a parcel's append-only status
// history. Seq preserves the append order.
type HistoryEntryDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	ParcelID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Seq        int       `gorm:"not null"`
	Status     string    `gorm:"type:varchar(64);not null"`
	RecordedAt time.Time `gorm:"not null"`
	Actor      string    `gorm:"type:varchar(255)"`
	Action     *string   `gorm:"type:varchar(64)"`
}

// TableName specifies the database table name for history entries.
func (HistoryEntryDTO) TableName() string {
	return "parcel_history_entries"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	parcelID := aggregate.ID().Bytes()
	details := aggregate.Details()

	history := make([]HistoryEntryDTO, 0, len(aggregate.History()))
	for i, entry := range aggregate.History() {
		var action *string
		if entry.Action != "" {
			value := entry.Action
			action = &value
		}
		history = append(history, HistoryEntryDTO{
			ParcelID:   parcelID,
			Seq:        i,
			Status:     entry.Status,
			RecordedAt: entry.Time,
			Actor:      entry.By,
			Action:     action,
		})
	}

	dto := ParcelDTO{
		ID:             parcelID,
		TrackingID:     details.TrackingID,
		Name:           details.Name,
		Type:           details.Type,
		Weight:         details.Weight,
		DeliveryZone:   details.DeliveryZone,
		BaseCost:       details.BaseCost,
		ExtraCharges:   details.ExtraCharges,
		DeliveryCost:   details.DeliveryCost,
		PaymentMethod:  details.PaymentMethod,
		CreatedBy:      details.CreatedBy,
		Sender:         contactFromDomain(details.Sender),
		Receiver:       contactFromDomain(details.Receiver),
		ParcelStatus:   string(aggregate.Status()),
		PaymentStatus:  string(aggregate.PaymentStatus()),
		DeliveryStatus: string(aggregate.DeliveryStatus()),

		EarningsCredited: aggregate.EarningsCredited(),
		History:          history,
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}

	if snapshot := aggregate.AssignedRider(); snapshot != nil {
		riderID := snapshot.ID.Bytes()
		dto.RiderID = &riderID
		dto.RiderName = &snapshot.Name
		dto.RiderEmail = &snapshot.Email
		dto.RiderPhone = &snapshot.Phone
		dto.RiderBikeRegNo = &snapshot.BikeRegNo
	}

	return dto
}

func contactFromDomain(contact parcel.Contact) ContactDTO {
	return ContactDTO{
		Name:     contact.Name,
		Phone:    contact.Phone,
		Region:   contact.Region,
		District: contact.District,
		Address:  contact.Address,
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	details := parcel.Details{
		TrackingID:    dto.TrackingID,
		Name:          dto.Name,
		Type:          dto.Type,
		Weight:        dto.Weight,
		DeliveryZone:  dto.DeliveryZone,
		BaseCost:      dto.BaseCost,
		ExtraCharges:  dto.ExtraCharges,
		DeliveryCost:  dto.DeliveryCost,
		PaymentMethod: dto.PaymentMethod,
		CreatedBy:     dto.CreatedBy,
		Sender:        contactToDomain(dto.Sender),
		Receiver:      contactToDomain(dto.Receiver),
	}

	var snapshot *parcel.RiderSnapshot
	if dto.RiderID != nil {
		riderID, idErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if idErr != nil {
			return nil, idErr
		}
		snapshot = &parcel.RiderSnapshot{
			ID:        riderID,
			Name:      stringValue(dto.RiderName),
			Email:     stringValue(dto.RiderEmail),
			Phone:     stringValue(dto.RiderPhone),
			BikeRegNo: stringValue(dto.RiderBikeRegNo),
		}
	}

	history := make([]parcel.HistoryEntry, 0, len(dto.History))
	for _, entry := range dto.History {
		history = append(history, parcel.HistoryEntry{
			Status: entry.Status,
			Time:   entry.RecordedAt,
			By:     entry.Actor,
			Action: stringValue(entry.Action),
		})
	}

	return parcel.RestoreParcel(
		id,
		details,
		parcel.ParcelStatus(dto.ParcelStatus),
		parcel.PaymentStatus(dto.PaymentStatus),
		parcel.DeliveryStatus(dto.DeliveryStatus),
		snapshot,
		dto.EarningsCredited,
		history,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func contactToDomain(dto ContactDTO) parcel.Contact {
	return parcel.Contact{
		Name:     dto.Name,
		Phone:    dto.Phone,
		Region:   dto.Region,
		District: dto.District,
		Address:  dto.Address,
	}
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
