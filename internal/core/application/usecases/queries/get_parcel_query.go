package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetParcelQueryIsNotConstructed = errors.New(
		"GetParcelQuery must be created via NewGetParcelQuery constructor",
	)

	// ErrParcelUnknown is returned when no parcel carries the id.
	ErrParcelUnknown = errors.New("unknown parcel id")
)

// GetParcelQuery retrieves the full detail view of a single parcel:
// booking data, both contacts, the rider snapshot and the status history.
type GetParcelQuery struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelQuery creates a query for one parcel's detail view.
func NewGetParcelQuery(parcelID kernel.UUID) (GetParcelQuery, error) {
	query := GetParcelQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := parcelID.Validate(); err != nil {
		return GetParcelQuery{}, err
	}
	query.parcelID = parcelID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetParcelQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelQueryIsNotConstructed)
}

// ParcelID returns the parcel whose detail view is requested.
func (q GetParcelQuery) ParcelID() kernel.UUID {
	return q.parcelID
}

// ContactResponse is the read model for a sender or receiver contact.
type ContactResponse struct {
	Name     string
	Phone    string
	Region   string
	District string
	Address  string
}

// GetParcelQueryResponse is the detail read model for a single parcel.
type GetParcelQueryResponse struct {
	ID             kernel.UUID
	TrackingID     string
	Name           string
	Type           string
	Weight         float64
	DeliveryZone   string
	BaseCost       float64
	ExtraCharges   float64
	DeliveryCost   float64
	PaymentMethod  string
	CreatedBy      string
	Sender         ContactResponse
	Receiver       ContactResponse
	ParcelStatus   string
	PaymentStatus  string
	DeliveryStatus string
	RiderName      string
	RiderPhone     string
	CreatedAt      time.Time
	History        []HistoryEntryResponse
}
