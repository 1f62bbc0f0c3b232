// Package ports defines the contracts between the core and infrastructure.
// Repository interfaces cover aggregate persistence, the unit of work bounds
// transactions, and identity/gateway ports abstract the outer services.
package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate,
	// including its rider snapshot and status history.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no parcel matches.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingID retrieves a parcel by its public tracking identifier.
	GetByTrackingID(ctx context.Context, trackingID string) (*parcel.Parcel, error)

	// Delete removes a parcel aggregate and its history from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
