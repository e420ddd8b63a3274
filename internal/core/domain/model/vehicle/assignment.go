// Package vehicle contains the driver-vehicle day assignment aggregate. Its
// lifecycle is independent from bookings: operators pair a driver with a
// vehicle per calendar day, and the pairing is unique per (driver, day) and
// per (vehicle, day).
package vehicle

import (
	"errors"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/pkg/errs"
	"haulaway/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment was not created
// through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New(
	"Assignment must be created via NewAssignment or RestoreAssignment",
)

// Assignment pairs one driver with one vehicle for one service day.
type Assignment struct {
	id        kernel.UUID
	driverID  kernel.UUID
	vehicleID string
	date      kernel.ServiceDate

	guard guard.ConstructorGuard
}

// NewAssignment validates and creates a day assignment.
func NewAssignment(id, driverID kernel.UUID, vehicleID string, date kernel.ServiceDate) (*Assignment, error) {
	if err := errors.Join(
		id.Validate(),
		driverID.Validate(),
		date.Validate(),
	); err != nil {
		return nil, err
	}
	if vehicleID == "" {
		return nil, errs.NewValueIsRequiredError("vehicleId")
	}

	return &Assignment{
		id:        id,
		driverID:  driverID,
		vehicleID: vehicleID,
		date:      date,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreAssignment rehydrates an Assignment from persistence.
func RestoreAssignment(id, driverID kernel.UUID, vehicleID string, date kernel.ServiceDate) (*Assignment, error) {
	return NewAssignment(id, driverID, vehicleID, date)
}

// Validate ensures the Assignment was created through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// ID returns the assignment identifier.
func (a *Assignment) ID() kernel.UUID { return a.id }

// DriverID returns the driver's identity.
func (a *Assignment) DriverID() kernel.UUID { return a.driverID }

// VehicleID returns the vehicle code (registration plate or fleet number).
func (a *Assignment) VehicleID() string { return a.vehicleID }

// Date returns the service day.
func (a *Assignment) Date() kernel.ServiceDate { return a.date }
