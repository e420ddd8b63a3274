package commands

import (
	"context"

	"haulaway/internal/core/domain/model/vehicle"
)

// AssignVehicleCommandHandler creates driver-vehicle day assignments. The
// one-vehicle-per-driver-per-day rule lives in the store's unique indexes;
// a violation surfaces as an ErrValueIsInvalid-classified error.
type AssignVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewAssignVehicleCommandHandler creates a handler for vehicle assignment.
func NewAssignVehicleCommandHandler(uowFactory VehicleUoWFactory) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the assignment.
func (h AssignVehicleCommandHandler) Handle(ctx context.Context, cmd AssignVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	assignment, err := vehicle.NewAssignment(cmd.AssignmentID(), cmd.DriverID(), cmd.VehicleID(), cmd.Date())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleAssignmentRepository().Add(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
