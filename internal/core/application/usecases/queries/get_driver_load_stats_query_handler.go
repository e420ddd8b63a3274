package queries

import (
	"context"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverLoadStatsQueryHandler aggregates per-driver load figures for one
// service day.
type GetDriverLoadStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverLoadStatsQueryHandler creates a handler over a GORM connection.
func NewGetDriverLoadStatsQueryHandler(db *gorm.DB) GetDriverLoadStatsQueryHandler {
	return GetDriverLoadStatsQueryHandler{db: db}
}

// Handle aggregates stop counts and cargo volume per assigned driver.
// Terminal bookings still count: a cancelled stop frees capacity only once an
// operator unassigns it.
func (h GetDriverLoadStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDriverLoadStatsQuery,
) ([]GetDriverLoadStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stats := make([]GetDriverLoadStatsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			driver_id,
			driver_name,
			COUNT(*) AS stop_count,
			COALESCE(SUM(total_loading_cube), 0) AS total_loading_cube
		FROM bookings
		WHERE date = ? AND driver_id IS NOT NULL
		GROUP BY driver_id, driver_name
		ORDER BY driver_name
	`, query.Date().Time()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stat GetDriverLoadStatsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&stat.DriverName,
			&stat.StopCount,
			&stat.TotalLoadingCube,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		stat.DriverID = driverID
		stat.RequiredCrew = services.CrewSizeByVolume(stat.TotalLoadingCube)
		stats = append(stats, stat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
