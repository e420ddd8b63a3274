// Package queries contains read-side operations. Handlers read straight from
// the database with raw SQL into response rows, bypassing the aggregate
// model: queries never mutate, so they do not pay the rehydration cost.
package queries

import (
	"errors"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/pkg/guard"
)

var ErrGetDriverBookingsQueryIsNotConstructed = errors.New(
	"GetDriverBookingsQuery must be created via NewGetDriverBookingsQuery constructor",
)

// GetDriverBookingsQuery retrieves one driver's stops for a service day in
// route order.
type GetDriverBookingsQuery struct {
	driverID kernel.UUID
	date     kernel.ServiceDate

	guard guard.ConstructorGuard
}

// NewGetDriverBookingsQuery validates and creates the query.
func NewGetDriverBookingsQuery(driverID kernel.UUID, date kernel.ServiceDate) (GetDriverBookingsQuery, error) {
	if err := errors.Join(driverID.Validate(), date.Validate()); err != nil {
		return GetDriverBookingsQuery{}, err
	}

	return GetDriverBookingsQuery{
		driverID: driverID,
		date:     date,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverBookingsQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverBookingsQueryIsNotConstructed)
}

// DriverID returns the driver whose day is being read.
func (q GetDriverBookingsQuery) DriverID() kernel.UUID { return q.driverID }

// Date returns the service day.
func (q GetDriverBookingsQuery) Date() kernel.ServiceDate { return q.date }

// GetDriverBookingsQueryResponse is one stop of the driver's day.
type GetDriverBookingsQueryResponse struct {
	ID               kernel.UUID
	TimeSlot         string
	Area             string
	Address          string
	AddressDetail    string
	CustomerName     string
	Phone            string
	Status           string
	RouteOrder       *int
	TotalPrice       int
	TotalLoadingCube float64
}
