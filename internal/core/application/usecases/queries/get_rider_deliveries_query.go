package queries

import (
	"errors"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrGetRiderDeliveriesQueryIsNotConstructed = errors.New(
	"GetRiderDeliveriesQuery must be created via NewGetRiderDeliveriesQuery constructor",
)

// GetRiderDeliveriesQuery retrieves a rider's deliveries grouped by phase:
// assigned but not yet picked up, in transit, and completed.
type GetRiderDeliveriesQuery struct { //nolint:recvcheck //using for validation
	riderEmail string

	guard guard.ConstructorGuard
}

// NewGetRiderDeliveriesQuery creates a query for a rider's deliveries.
func NewGetRiderDeliveriesQuery(riderEmail string) (GetRiderDeliveriesQuery, error) {
	query := GetRiderDeliveriesQuery{
		guard: guard.NewConstructorGuard(),
	}

	if riderEmail == "" {
		return GetRiderDeliveriesQuery{}, errs.NewValueIsRequiredError("riderEmail")
	}
	query.riderEmail = riderEmail

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderDeliveriesQueryIsNotConstructed)
}

// RiderEmail returns the rider whose deliveries are requested.
func (q GetRiderDeliveriesQuery) RiderEmail() string {
	return q.riderEmail
}

// GetRiderDeliveriesQueryResponse groups a rider's parcels by delivery phase.
type GetRiderDeliveriesQueryResponse struct {
	Assigned  []ParcelSummaryResponse
	InTransit []ParcelSummaryResponse
	Completed []ParcelSummaryResponse
}
