package commands

import (
	"errors"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/pkg/guard"
)

var (
	ErrAssignVehicleCommandIsNotConstructed = errors.New(
		"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
	)
	ErrVehicleIDIsRequired = errors.New("vehicle id is required")
)

// AssignVehicleCommand pairs a driver with a vehicle for one service day.
type AssignVehicleCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	driverID     kernel.UUID
	vehicleID    string
	date         kernel.ServiceDate

	guard guard.ConstructorGuard
}

// NewAssignVehicleCommand validates and creates a vehicle assignment command.
func NewAssignVehicleCommand(
	assignmentID kernel.UUID,
	driverID kernel.UUID,
	vehicleID string,
	date kernel.ServiceDate,
) (AssignVehicleCommand, error) {
	cmd := AssignVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignmentID.Validate(),
		driverID.Validate(),
		date.Validate(),
	); err != nil {
		return AssignVehicleCommand{}, err
	}
	if vehicleID == "" {
		return AssignVehicleCommand{}, ErrVehicleIDIsRequired
	}

	cmd.assignmentID = assignmentID
	cmd.driverID = driverID
	cmd.vehicleID = vehicleID
	cmd.date = date

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

// AssignmentID returns the pre-generated assignment identifier.
func (c AssignVehicleCommand) AssignmentID() kernel.UUID { return c.assignmentID }

// DriverID returns the driver's identity.
func (c AssignVehicleCommand) DriverID() kernel.UUID { return c.driverID }

// VehicleID returns the vehicle code.
func (c AssignVehicleCommand) VehicleID() string { return c.vehicleID }

// Date returns the service day.
func (c AssignVehicleCommand) Date() kernel.ServiceDate { return c.date }
