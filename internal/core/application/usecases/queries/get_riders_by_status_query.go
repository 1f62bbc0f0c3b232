package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/rider"
	"parceltrack/internal/pkg/guard"
)

var ErrGetRidersByStatusQueryIsNotConstructed = errors.New(
	"GetRidersByStatusQuery must be created via NewGetRidersByStatusQuery constructor",
)

// GetRidersByStatusQuery retrieves riders in a given approval status,
// typically pending applications for admin review.
type GetRidersByStatusQuery struct { //nolint:recvcheck //using for validation
	status rider.Status

	guard guard.ConstructorGuard
}

// NewGetRidersByStatusQuery creates a query for riders in a status.
func NewGetRidersByStatusQuery(status rider.Status) (GetRidersByStatusQuery, error) {
	query := GetRidersByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := status.Validate(); err != nil {
		return GetRidersByStatusQuery{}, err
	}
	query.status = status

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRidersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetRidersByStatusQueryIsNotConstructed)
}

// Status returns the requested approval status.
func (q GetRidersByStatusQuery) Status() rider.Status {
	return q.status
}

// GetRidersByStatusQueryResponse is the read model for rider listings.
type GetRidersByStatusQueryResponse struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	Region    string
	District  string
	BikeBrand string
	BikeRegNo string
	Status    string
	Busy      bool
	AppliedAt time.Time
}
