package commands_test

import (
	"context"
	"testing"
	"time"

	"haulaway/internal/core/application/usecases/commands"
	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	cmd, err := commands.NewAssignVehicleCommand(
		kernel.NewUUID(), kernel.NewUUID(), "12가3456", kernel.NewServiceDate(time.Now()))
	require.NoError(t, err)

	repo := new(MockVehicleAssignmentRepository)
	uow := new(MockVehicleUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("VehicleAssignmentRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*vehicle.Assignment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignVehicleCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAssignVehicleCommandHandler_Handle_DuplicateDayConflict(t *testing.T) {
	ctx := context.Background()

	cmd, err := commands.NewAssignVehicleCommand(
		kernel.NewUUID(), kernel.NewUUID(), "12가3456", kernel.NewServiceDate(time.Now()))
	require.NoError(t, err)

	repo := new(MockVehicleAssignmentRepository)
	uow := new(MockVehicleUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("VehicleAssignmentRepository").Return(repo)
	repo.On("Add", mock.Anything, mock.Anything).
		Return(errs.NewValueIsInvalidError("assignment"))
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewAssignVehicleCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestRemoveVehicleAssignmentCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	id := kernel.NewUUID()
	cmd, err := commands.NewRemoveVehicleAssignmentCommand(id)
	require.NoError(t, err)

	repo := new(MockVehicleAssignmentRepository)
	repo.On("Delete", ctx, id).Return(nil).Once()

	uow := new(MockVehicleUoW)
	uow.On("VehicleAssignmentRepository").Return(repo)

	factory := new(MockVehicleUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewRemoveVehicleAssignmentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
}

func TestNewAssignVehicleCommand_RequiresVehicleID(t *testing.T) {
	_, err := commands.NewAssignVehicleCommand(
		kernel.NewUUID(), kernel.NewUUID(), "", kernel.NewServiceDate(time.Now()))
	require.ErrorIs(t, err, commands.ErrVehicleIDIsRequired)
}
