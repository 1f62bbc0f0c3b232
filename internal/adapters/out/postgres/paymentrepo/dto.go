// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence.
package paymentrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment records.
// Rows are append-only; the unique index on TransactionID makes replayed
// gateway confirmations no-ops.
type PaymentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Email         string    `gorm:"type:varchar(255);not null"`
	Amount        float64   `gorm:"type:decimal(12,2);not null"`
	TransactionID string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	Method        string    `gorm:"type:varchar(32);not null"`
	Status        string    `gorm:"type:varchar(16);not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// fromDomain converts a payment domain aggregate to its database representation.
func fromDomain(aggregate *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            aggregate.ID().Bytes(),
		ParcelID:      aggregate.ParcelID().Bytes(),
		Email:         aggregate.Email(),
		Amount:        aggregate.Amount(),
		TransactionID: aggregate.TransactionID(),
		Method:        aggregate.Method(),
		Status:        aggregate.Status(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(
		id,
		parcelID,
		dto.Email,
		dto.Amount,
		dto.TransactionID,
		dto.Method,
		dto.CreatedAt,
	)
}
