package queries

import (
	"context"
	"database/sql"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelQueryHandler serves the single-parcel detail view.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetParcelQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelQueryHandler creates a handler for parcel detail queries.
// Requires a GORM database connection for query execution.
func NewGetParcelQueryHandler(db *gorm.DB) GetParcelQueryHandler {
	return GetParcelQueryHandler{db: db}
}

// Handle executes the detail query.
// Returns ErrParcelUnknown when no parcel carries the id.
func (h GetParcelQueryHandler) Handle(
	ctx context.Context,
	query GetParcelQuery,
) (GetParcelQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	var response GetParcelQueryResponse
	var parcelID uuid.UUID
	var riderName, riderPhone sql.NullString

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_id,
			name,
			type,
			weight,
			delivery_zone,
			base_cost,
			extra_charges,
			delivery_cost,
			payment_method,
			created_by,
			sender_name,
			sender_phone,
			sender_region,
			sender_district,
			sender_address,
			receiver_name,
			receiver_phone,
			receiver_region,
			receiver_district,
			receiver_address,
			parcel_status,
			payment_status,
			delivery_status,
			rider_name,
			rider_phone,
			created_at
		FROM parcels
		WHERE id = ?
	`, query.ParcelID().Bytes()).Row()

	err := row.Scan(
		&parcelID,
		&response.TrackingID,
		&response.Name,
		&response.Type,
		&response.Weight,
		&response.DeliveryZone,
		&response.BaseCost,
		&response.ExtraCharges,
		&response.DeliveryCost,
		&response.PaymentMethod,
		&response.CreatedBy,
		&response.Sender.Name,
		&response.Sender.Phone,
		&response.Sender.Region,
		&response.Sender.District,
		&response.Sender.Address,
		&response.Receiver.Name,
		&response.Receiver.Phone,
		&response.Receiver.Region,
		&response.Receiver.District,
		&response.Receiver.Address,
		&response.ParcelStatus,
		&response.PaymentStatus,
		&response.DeliveryStatus,
		&riderName,
		&riderPhone,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetParcelQueryResponse{}, ErrParcelUnknown
	}
	if err != nil {
		return GetParcelQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(parcelID[:])
	if err != nil {
		return GetParcelQueryResponse{}, err
	}
	response.ID = id
	response.RiderName = riderName.String
	response.RiderPhone = riderPhone.String

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
		return GetParcelQueryResponse{}, err
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
			return GetParcelQueryResponse{}, err
		}

		entry.Action = action.String
		response.History = append(response.History, entry)
	}

	if err = rows.Err(); err != nil {
		return GetParcelQueryResponse{}, err
	}

	return response, nil
}
