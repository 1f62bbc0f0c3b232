// Package riderrepo provides data transfer objects and mapping functions for
// rider persistence.
package riderrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider aggregates.
type RiderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Age       int       `gorm:"type:int;not null"`
	Phone     string    `gorm:"type:varchar(32);not null"`
	Region    string    `gorm:"type:varchar(64)"`
	District  string    `gorm:"type:varchar(64)"`
	NID       string    `gorm:"column:nid;type:varchar(32);uniqueIndex;not null"`
	BikeBrand string    `gorm:"type:varchar(64)"`
	BikeRegNo string    `gorm:"type:varchar(64)"`

	Status            string     `gorm:"type:varchar(32);not null;index"`
	CurrentDeliveryID *uuid.UUID `gorm:"type:uuid"`

	AppliedAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider domain aggregate to its database representation.
func fromDomain(aggregate *rider.Rider) RiderDTO {
	profile := aggregate.Profile()

	dto := RiderDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      profile.Name,
		Email:     profile.Email,
		Age:       profile.Age,
		Phone:     profile.Phone,
		Region:    profile.Region,
		District:  profile.District,
		NID:       profile.NID,
		BikeBrand: profile.BikeBrand,
		BikeRegNo: profile.BikeRegNo,
		Status:    string(aggregate.Status()),
		AppliedAt: aggregate.AppliedAt(),
	}

	if current := aggregate.CurrentDelivery(); current != nil {
		parcelID := current.Bytes()
		dto.CurrentDeliveryID = &parcelID
	}

	return dto
}

// toDomain converts a database DTO to a rider domain aggregate.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentDelivery *kernel.UUID
	if dto.CurrentDeliveryID != nil {
		parcelID, idErr := kernel.UUIDFromBytes((*dto.CurrentDeliveryID)[:])
		if idErr != nil {
			return nil, idErr
		}
		currentDelivery = &parcelID
	}

	profile := rider.Profile{
		Name:      dto.Name,
		Email:     dto.Email,
		Age:       dto.Age,
		Phone:     dto.Phone,
		Region:    dto.Region,
		District:  dto.District,
		NID:       dto.NID,
		BikeBrand: dto.BikeBrand,
		BikeRegNo: dto.BikeRegNo,
	}

	return rider.RestoreRider(id, profile, rider.Status(dto.Status), currentDelivery, dto.AppliedAt)
}
