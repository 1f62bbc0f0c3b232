package queries

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRidersByStatusQueryHandler lists riders in an approval status.
// Used by the admin dashboard to review applications and pick riders for
// assignment.
type GetRidersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetRidersByStatusQueryHandler creates a handler for rider listing queries.
// Requires a GORM database connection for query execution.
func NewGetRidersByStatusQueryHandler(db *gorm.DB) GetRidersByStatusQueryHandler {
	return GetRidersByStatusQueryHandler{db: db}
}

// Handle executes the query to list riders in the requested status.
// Busy reports whether the rider currently carries a parcel.
func (h GetRidersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetRidersByStatusQuery,
) ([]GetRidersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	riders := make([]GetRidersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			region,
			district,
			bike_brand,
			bike_reg_no,
			status,
			current_delivery_id IS NOT NULL AS busy,
			applied_at
		FROM riders
		WHERE status = ?
		ORDER BY applied_at
	`, query.Status()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetRidersByStatusQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&entry.Name,
			&entry.Email,
			&entry.Phone,
			&entry.Region,
			&entry.District,
			&entry.BikeBrand,
			&entry.BikeRegNo,
			&entry.Status,
			&entry.Busy,
			&entry.AppliedAt,
		)
		if err != nil {
			return nil, err
		}

		riderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entry.ID = riderID
		riders = append(riders, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return riders, nil
}
