package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetAdminParcelsQueryIsNotConstructed = errors.New(
	"GetAdminParcelsQuery must be created via NewGetAdminParcelsQuery constructor",
)

// GetAdminParcelsQuery retrieves every parcel in the system for the admin
// dashboard, optionally narrowed to a single delivery status.
type GetAdminParcelsQuery struct { //nolint:recvcheck //using for validation
	deliveryStatus parcel.DeliveryStatus

	guard guard.ConstructorGuard
}

// NewGetAdminParcelsQuery creates a query over all parcels. An empty status
// means no filter; a non-empty status must be a known delivery status.
func NewGetAdminParcelsQuery(deliveryStatus parcel.DeliveryStatus) (GetAdminParcelsQuery, error) {
	query := GetAdminParcelsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if deliveryStatus != "" {
		if err := deliveryStatus.Validate(); err != nil {
			return GetAdminParcelsQuery{}, err
		}
	}
	query.deliveryStatus = deliveryStatus

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAdminParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetAdminParcelsQueryIsNotConstructed)
}

// DeliveryStatus returns the delivery status filter; empty means all.
func (q GetAdminParcelsQuery) DeliveryStatus() parcel.DeliveryStatus {
	return q.deliveryStatus
}

// AdminParcelSummaryResponse is the read model for the admin parcel listing.
// Unlike the sender listing it also carries who booked the parcel.
type AdminParcelSummaryResponse struct {
	ID             kernel.UUID
	TrackingID     string
	Name           string
	Type           string
	DeliveryZone   string
	DeliveryCost   float64
	ParcelStatus   string
	PaymentStatus  string
	DeliveryStatus string
	CreatedBy      string
	RiderName      string
	CreatedAt      time.Time
}
