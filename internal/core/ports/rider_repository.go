package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
type RiderRepository interface {
	// Add persists a new rider aggregate to storage.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Update persists changes to an existing rider aggregate.
	Update(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no rider matches.
	Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error)

	// GetByEmail retrieves a rider by their registered email address.
	GetByEmail(ctx context.Context, email string) (*rider.Rider, error)

	// GetAllByStatus retrieves all riders in the given approval status.
	GetAllByStatus(ctx context.Context, status rider.Status) ([]*rider.Rider, error)
}
