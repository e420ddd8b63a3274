package commands

import (
	"context"
	"errors"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/pkg/guard"
)

var ErrRemoveVehicleAssignmentCommandIsNotConstructed = errors.New(
	"RemoveVehicleAssignmentCommand must be created via NewRemoveVehicleAssignmentCommand constructor",
)

// RemoveVehicleAssignmentCommand releases a driver-vehicle pairing.
type RemoveVehicleAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveVehicleAssignmentCommand validates and creates a removal command.
func NewRemoveVehicleAssignmentCommand(assignmentID kernel.UUID) (RemoveVehicleAssignmentCommand, error) {
	if err := assignmentID.Validate(); err != nil {
		return RemoveVehicleAssignmentCommand{}, err
	}

	return RemoveVehicleAssignmentCommand{
		assignmentID: assignmentID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveVehicleAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRemoveVehicleAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the assignment to remove.
func (c RemoveVehicleAssignmentCommand) AssignmentID() kernel.UUID { return c.assignmentID }

// RemoveVehicleAssignmentCommandHandler deletes driver-vehicle assignments.
type RemoveVehicleAssignmentCommandHandler struct {
	uowFactory VehicleUoWFactory
}

// NewRemoveVehicleAssignmentCommandHandler creates a handler for assignment removal.
func NewRemoveVehicleAssignmentCommandHandler(uowFactory VehicleUoWFactory) RemoveVehicleAssignmentCommandHandler {
	return RemoveVehicleAssignmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the assignment. Missing assignments surface as
// errs.ErrObjectNotFound.
func (h RemoveVehicleAssignmentCommandHandler) Handle(ctx context.Context, cmd RemoveVehicleAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.uowFactory.Create().VehicleAssignmentRepository().Delete(ctx, cmd.AssignmentID())
}
