package queries

import (
	"context"
	"database/sql"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAdminParcelsQueryHandler lists parcels for the admin dashboard.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAdminParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetAdminParcelsQueryHandler creates a handler for admin parcel queries.
// Requires a GORM database connection for query execution.
func NewGetAdminParcelsQueryHandler(db *gorm.DB) GetAdminParcelsQueryHandler {
	return GetAdminParcelsQueryHandler{db: db}
}

// Handle executes the query to list parcels, newest first. When the query
// carries a delivery status only parcels in that status are returned.
func (h GetAdminParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetAdminParcelsQuery,
) ([]AdminParcelSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statement := `
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
			created_by,
			rider_name,
			created_at
		FROM parcels
	`
	args := make([]interface{}, 0, 1)
	if query.DeliveryStatus() != "" {
		statement += ` WHERE delivery_status = ?`
		args = append(args, query.DeliveryStatus())
	}
	statement += ` ORDER BY created_at DESC`

	parcels := make([]AdminParcelSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(statement, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary AdminParcelSummaryResponse
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
			&summary.CreatedBy,
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
