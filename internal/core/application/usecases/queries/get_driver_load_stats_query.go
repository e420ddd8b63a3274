package queries

import (
	"errors"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/pkg/guard"
)

var ErrGetDriverLoadStatsQueryIsNotConstructed = errors.New(
	"GetDriverLoadStatsQuery must be created via NewGetDriverLoadStatsQuery constructor",
)

// GetDriverLoadStatsQuery reports each driver's physical load for a service
// day: how many stops, how much cargo volume, and the crew the volume calls
// for. Dispatchers use it to spot overloaded days before they happen.
type GetDriverLoadStatsQuery struct {
	date kernel.ServiceDate

	guard guard.ConstructorGuard
}

// NewGetDriverLoadStatsQuery validates and creates the query.
func NewGetDriverLoadStatsQuery(date kernel.ServiceDate) (GetDriverLoadStatsQuery, error) {
	if err := date.Validate(); err != nil {
		return GetDriverLoadStatsQuery{}, err
	}

	return GetDriverLoadStatsQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverLoadStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverLoadStatsQueryIsNotConstructed)
}

// Date returns the service day.
func (q GetDriverLoadStatsQuery) Date() kernel.ServiceDate { return q.date }

// GetDriverLoadStatsQueryResponse is one driver's day at a glance.
// RequiredCrew comes from the volume-keyed crew rule, which is deliberately
// separate from the price-keyed rule used for quoting.
type GetDriverLoadStatsQueryResponse struct {
	DriverID         kernel.UUID
	DriverName       string
	StopCount        int
	TotalLoadingCube float64
	RequiredCrew     int
}
