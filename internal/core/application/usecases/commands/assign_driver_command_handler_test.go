package commands_test

import (
	"context"
	"errors"
	"testing"

	"haulaway/internal/core/application/usecases/commands"
	"haulaway/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignDriverCommandHandler_Handle_AllSucceed(t *testing.T) {
	ctx := context.Background()

	ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()}
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand(ids, driverID, "김기사")
	require.NoError(t, err)

	repo := new(MockBookingRepository)
	for _, id := range ids {
		repo.On("UpdateAssignment", mock.Anything, id, driverID, "김기사").Return(nil).Once()
	}

	h := commands.NewAssignDriverCommandHandler(statusFactoryWith(repo), nil)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "ClearAssignment", mock.Anything, mock.Anything)
}

func TestAssignDriverCommandHandler_Handle_PartialFailureRollsBack(t *testing.T) {
	ctx := context.Background()

	good1 := kernel.NewUUID()
	bad := kernel.NewUUID()
	good2 := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewAssignDriverCommand([]kernel.UUID{good1, bad, good2}, driverID, "김기사")
	require.NoError(t, err)

	repo := new(MockBookingRepository)
	repo.On("UpdateAssignment", mock.Anything, good1, driverID, "김기사").Return(nil).Once()
	repo.On("UpdateAssignment", mock.Anything, bad, driverID, "김기사").
		Return(errors.New("booking is cancelled")).Once()
	repo.On("UpdateAssignment", mock.Anything, good2, driverID, "김기사").Return(nil).Once()

	// Only the rows that succeeded get compensated.
	repo.On("ClearAssignment", mock.Anything, good1).Return(nil).Once()
	repo.On("ClearAssignment", mock.Anything, good2).Return(nil).Once()

	h := commands.NewAssignDriverCommandHandler(statusFactoryWith(repo), nil)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrBatchAssignFailed)

	var batchErr *commands.BatchAssignError
	require.ErrorAs(t, err, &batchErr)
	require.Len(t, batchErr.FailedIDs(), 1)
	require.True(t, batchErr.FailedIDs()[0].IsEqual(bad))

	repo.AssertExpectations(t)
}

func TestAssignDriverCommandHandler_Handle_CompensationFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()

	good := kernel.NewUUID()
	bad := kernel.NewUUID()
	driverID := kernel.NewUUID()

	cmd, err := commands.NewAssignDriverCommand([]kernel.UUID{good, bad}, driverID, "김기사")
	require.NoError(t, err)

	repo := new(MockBookingRepository)
	repo.On("UpdateAssignment", mock.Anything, good, driverID, "김기사").Return(nil).Once()
	repo.On("UpdateAssignment", mock.Anything, bad, driverID, "김기사").
		Return(errors.New("write failed")).Once()
	repo.On("ClearAssignment", mock.Anything, good).
		Return(errors.New("connection lost")).Once()

	h := commands.NewAssignDriverCommandHandler(statusFactoryWith(repo), nil)
	err = h.Handle(ctx, cmd)

	// The batch error still names the original failure, not the compensation's.
	require.ErrorIs(t, err, commands.ErrBatchAssignFailed)
	repo.AssertExpectations(t)
}

func TestNewAssignDriverCommand_Validation(t *testing.T) {
	driverID := kernel.NewUUID()

	t.Run("empty batch", func(t *testing.T) {
		_, err := commands.NewAssignDriverCommand(nil, driverID, "김기사")
		require.ErrorIs(t, err, commands.ErrBookingIDsAreRequired)
	})

	t.Run("oversized batch", func(t *testing.T) {
		ids := make([]kernel.UUID, commands.MaxAssignBatchSize+1)
		for i := range ids {
			ids[i] = kernel.NewUUID()
		}
		_, err := commands.NewAssignDriverCommand(ids, driverID, "김기사")
		require.ErrorIs(t, err, commands.ErrTooManyBookings)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		id := kernel.NewUUID()
		_, err := commands.NewAssignDriverCommand([]kernel.UUID{id, id}, driverID, "김기사")
		require.ErrorIs(t, err, commands.ErrDuplicateBookingIDs)
	})

	t.Run("missing driver name", func(t *testing.T) {
		_, err := commands.NewAssignDriverCommand([]kernel.UUID{kernel.NewUUID()}, driverID, "")
		require.ErrorIs(t, err, commands.ErrDriverNameIsRequired)
	})
}
