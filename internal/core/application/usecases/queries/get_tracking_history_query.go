package queries

import (
	"errors"
	"time"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
		"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
	)

	// ErrTrackingIDUnknown is returned when no parcel carries the tracking id.
	ErrTrackingIDUnknown = errors.New("unknown tracking id")
)

// GetTrackingHistoryQuery retrieves the public tracking view of a parcel:
// its current status and the full transition history. This is the only
// read that requires no authentication.
type GetTrackingHistoryQuery struct { //nolint:recvcheck //using for validation
	trackingID string

	guard guard.ConstructorGuard
}

// NewGetTrackingHistoryQuery creates a query for a parcel's tracking view.
func NewGetTrackingHistoryQuery(trackingID string) (GetTrackingHistoryQuery, error) {
	query := GetTrackingHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if trackingID == "" {
		return GetTrackingHistoryQuery{}, errs.NewValueIsRequiredError("trackingId")
	}
	query.trackingID = trackingID

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

// TrackingID returns the public tracking identifier.
func (q GetTrackingHistoryQuery) TrackingID() string {
	return q.trackingID
}

// HistoryEntryResponse is the read model for one tracking history entry.
type HistoryEntryResponse struct {
	Status string
	Time   time.Time
	By     string
	Action string
}

// GetTrackingHistoryQueryResponse is the public tracking read model.
// It deliberately omits sender and payment details.
type GetTrackingHistoryQueryResponse struct {
	TrackingID     string
	Name           string
	ParcelStatus   string
	DeliveryStatus string
	DeliveryZone   string
	History        []HistoryEntryResponse
}
