package queries

import (
	"context"
	"database/sql"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelsBySenderQueryHandler retrieves a sender's parcels from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetParcelsBySenderQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsBySenderQueryHandler creates a handler for sender parcel queries.
// Requires a GORM database connection for query execution.
func NewGetParcelsBySenderQueryHandler(db *gorm.DB) GetParcelsBySenderQueryHandler {
	return GetParcelsBySenderQueryHandler{db: db}
}

// Handle executes the query to retrieve the sender's parcels.
// Returns summaries ordered newest first.
func (h GetParcelsBySenderQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsBySenderQuery,
) ([]ParcelSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]ParcelSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			name,
			type,
			delivery_zone,
			delivery_cost,
			parcel_status,
			payment_status,
			delivery_status,
			rider_name,
			created_at
		FROM parcels
		WHERE created_by = ?
		ORDER BY created_at DESC
	`, query.SenderEmail()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary ParcelSummaryResponse
		var id uuid.UUID
		var riderName sql.NullString

		err = rows.Scan(
			&id,
			&summary.TrackingID,
			&summary.Name,
			&summary.Type,
			&summary.DeliveryZone,
			&summary.DeliveryCost,
			&summary.ParcelStatus,
			&summary.PaymentStatus,
			&summary.DeliveryStatus,
			&riderName,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = parcelID
		summary.RiderName = riderName.String
		parcels = append(parcels, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
