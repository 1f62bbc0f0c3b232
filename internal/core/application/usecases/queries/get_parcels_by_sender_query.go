// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelsBySenderQueryIsNotConstructed = errors.New(
	"GetParcelsBySenderQuery must be created via NewGetParcelsBySenderQuery constructor",
)

// GetParcelsBySenderQuery retrieves all parcels booked by a sender.
//
// Example:
//
//	query, _ := NewGetParcelsBySenderQuery("sender@example.com")
//	handler := NewGetParcelsBySenderQueryHandler(db)
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve parcels: %w", err)
//	}
type GetParcelsBySenderQuery struct { //nolint:recvcheck //using for validation
	senderEmail string

	guard guard.ConstructorGuard
}

// NewGetParcelsBySenderQuery creates a query for a sender's parcels.
func NewGetParcelsBySenderQuery(senderEmail string) (GetParcelsBySenderQuery, error) {
	query := GetParcelsBySenderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if senderEmail == "" {
		return GetParcelsBySenderQuery{}, errs.NewValueIsRequiredError("senderEmail")
	}
	query.senderEmail = senderEmail

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelsBySenderQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsBySenderQueryIsNotConstructed)
}

// SenderEmail returns the sender whose parcels are requested.
func (q GetParcelsBySenderQuery) SenderEmail() string {
	return q.senderEmail
}

// ParcelSummaryResponse is the read model for parcel listings.
type ParcelSummaryResponse struct {
	ID             kernel.UUID
	TrackingID     string
	Name           string
	Type           string
	DeliveryZone   string
	DeliveryCost   float64
	ParcelStatus   string
	PaymentStatus  string
	DeliveryStatus string
	RiderName      string
	CreatedAt      time.Time
}
