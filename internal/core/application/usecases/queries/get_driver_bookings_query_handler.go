package queries

import (
	"context"

	"haulaway/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverBookingsQueryHandler reads a driver's ordered stops for one day.
type GetDriverBookingsQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverBookingsQueryHandler creates a handler over a GORM connection.
func NewGetDriverBookingsQueryHandler(db *gorm.DB) GetDriverBookingsQueryHandler {
	return GetDriverBookingsQueryHandler{db: db}
}

// Handle returns the stops ordered by route position, unordered stops last.
func (h GetDriverBookingsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverBookingsQuery,
) ([]GetDriverBookingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stops := make([]GetDriverBookingsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			time_slot,
			area,
			address,
			address_detail,
			customer_name,
			phone,
			status,
			route_order,
			total_price,
			total_loading_cube
		FROM bookings
		WHERE driver_id = ? AND date = ?
		ORDER BY route_order ASC NULLS LAST, created_at ASC
	`, query.DriverID().Bytes(), query.Date().Time()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stop GetDriverBookingsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&stop.TimeSlot,
			&stop.Area,
			&stop.Address,
			&stop.AddressDetail,
			&stop.CustomerName,
			&stop.Phone,
			&stop.Status,
			&stop.RouteOrder,
			&stop.TotalPrice,
			&stop.TotalLoadingCube,
		)
		if err != nil {
			return nil, err
		}

		bookingID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		stop.ID = bookingID
		stops = append(stops, stop)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stops, nil
}
