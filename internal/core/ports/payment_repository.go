package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment records.
// Records are append-only, there is no update or delete.
type PaymentRepository interface {
	// Add persists a new payment record to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// GetByTransactionID retrieves a payment by the gateway's transaction
	// reference. Returns errs.ObjectNotFoundError when no payment matches.
	GetByTransactionID(ctx context.Context, transactionID string) (*payment.Payment, error)
}
