package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackingHistoryQueryHandler serves the public tracking endpoint.
// Looks a parcel up by its tracking id and returns the status history.
type GetTrackingHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingHistoryQueryHandler creates a handler for tracking queries.
// Requires a GORM database connection for query execution.
func NewGetTrackingHistoryQueryHandler(db *gorm.DB) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{db: db}
}

// Handle executes the tracking query.
// Returns ErrTrackingIDUnknown when no parcel carries the tracking id.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) (GetTrackingHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTrackingHistoryQueryResponse{}, err
	}

	var response GetTrackingHistoryQueryResponse
	var parcelID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			name,
			parcel_status,
			delivery_status,
			delivery_zone
		FROM parcels
		WHERE tracking_id = ?
	`, query.TrackingID()).Row()

	err := row.Scan(
		&parcelID,
		&response.TrackingID,
		&response.Name,
		&response.ParcelStatus,
		&response.DeliveryStatus,
		&response.DeliveryZone,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetTrackingHistoryQueryResponse{}, ErrTrackingIDUnknown
	}
	if err != nil {
		return GetTrackingHistoryQueryResponse{}, err
	}

	response.History = make([]HistoryEntryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			recorded_at,
			actor,
			action
		FROM parcel_history_entries
		WHERE parcel_id = ?
		ORDER BY seq
	`, parcelID).Rows()
	if err != nil {
		return GetTrackingHistoryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry HistoryEntryResponse
		var action sql.NullString

		err = rows.Scan(
			&entry.Status,
			&entry.Time,
			&entry.By,
			&action,
		)
		if err != nil {
			return GetTrackingHistoryQueryResponse{}, err
		}

		entry.Action = action.String
		response.History = append(response.History, entry)
	}

	if err = rows.Err(); err != nil {
		return GetTrackingHistoryQueryResponse{}, err
	}

	return response, nil
}
