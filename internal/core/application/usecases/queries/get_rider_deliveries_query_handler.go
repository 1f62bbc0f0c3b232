package queries

import (
	"context"
	"database/sql"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRiderDeliveriesQueryHandler retrieves the parcels bound to a rider,
// split into assigned, in-transit and completed buckets for the rider's
// dashboard.
type GetRiderDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderDeliveriesQueryHandler creates a handler for rider delivery queries.
// Requires a GORM database connection for query execution.
func NewGetRiderDeliveriesQueryHandler(db *gorm.DB) GetRiderDeliveriesQueryHandler {
	return GetRiderDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve the rider's deliveries.
// Completed parcels come last and newest first within each bucket.
func (h GetRiderDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetRiderDeliveriesQuery,
) (GetRiderDeliveriesQueryResponse, error) {
	response := GetRiderDeliveriesQueryResponse{
		Assigned:  make([]ParcelSummaryResponse, 0),
		InTransit: make([]ParcelSummaryResponse, 0),
		Completed: make([]ParcelSummaryResponse, 0),
	}

	if err := query.Validate(); err != nil {
		return response, err
	}

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
		WHERE rider_email = ?
		ORDER BY created_at DESC
	`, query.RiderEmail()).Rows()
	if err != nil {
		return response, err
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
			return response, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return response, idErr
		}
		summary.ID = parcelID
		summary.RiderName = riderName.String

		switch parcel.DeliveryStatus(summary.DeliveryStatus) {
		case parcel.DeliveryRiderAssigned:
			response.Assigned = append(response.Assigned, summary)
		case parcel.DeliveryInTransit:
			response.InTransit = append(response.InTransit, summary)
		case parcel.DeliveryDelivered:
			response.Completed = append(response.Completed, summary)
		}
	}

	if err = rows.Err(); err != nil {
		return response, err
	}

	return response, nil
}
