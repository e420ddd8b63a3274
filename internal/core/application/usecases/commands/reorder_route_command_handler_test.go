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

func TestReorderRouteCommandHandler_Handle_AllSucceed(t *testing.T) {
	ctx := context.Background()

	entries := []commands.RouteOrderEntry{
		{BookingID: kernel.NewUUID(), RouteOrder: 1},
		{BookingID: kernel.NewUUID(), RouteOrder: 2},
	}
	cmd, err := commands.NewReorderRouteCommand(entries)
	require.NoError(t, err)

	repo := new(MockBookingRepository)
	for _, entry := range entries {
		repo.On("UpdateRouteOrder", mock.Anything, entry.BookingID, entry.RouteOrder).Return(nil).Once()
	}

	h := commands.NewReorderRouteCommandHandler(statusFactoryWith(repo), nil)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 2, result.UpdatedCount)
	require.Empty(t, result.FailedIDs)
	repo.AssertExpectations(t)
}

func TestReorderRouteCommandHandler_Handle_PartialFailureIsReportedNotRolledBack(t *testing.T) {
	ctx := context.Background()

	good := commands.RouteOrderEntry{BookingID: kernel.NewUUID(), RouteOrder: 1}
	bad := commands.RouteOrderEntry{BookingID: kernel.NewUUID(), RouteOrder: 2}
	cmd, err := commands.NewReorderRouteCommand([]commands.RouteOrderEntry{good, bad})
	require.NoError(t, err)

	repo := new(MockBookingRepository)
	repo.On("UpdateRouteOrder", mock.Anything, good.BookingID, 1).Return(nil).Once()
	repo.On("UpdateRouteOrder", mock.Anything, bad.BookingID, 2).
		Return(errors.New("booking has no driver")).Once()

	h := commands.NewReorderRouteCommandHandler(statusFactoryWith(repo), nil)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err, "partial failure is a result, not an error")
	require.Equal(t, 1, result.UpdatedCount)
	require.Len(t, result.FailedIDs, 1)
	require.True(t, result.FailedIDs[0].IsEqual(bad.BookingID))

	// No compensation for reorders.
	repo.AssertNotCalled(t, "ClearAssignment", mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}

func TestNewReorderRouteCommand_Validation(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := commands.NewReorderRouteCommand(nil)
		require.ErrorIs(t, err, commands.ErrEntriesAreRequired)
	})

	t.Run("oversized", func(t *testing.T) {
		entries := make([]commands.RouteOrderEntry, commands.MaxReorderBatchSize+1)
		for i := range entries {
			entries[i] = commands.RouteOrderEntry{BookingID: kernel.NewUUID(), RouteOrder: i + 1}
		}
		_, err := commands.NewReorderRouteCommand(entries)
		require.ErrorIs(t, err, commands.ErrTooManyEntries)
	})

	t.Run("position below one", func(t *testing.T) {
		_, err := commands.NewReorderRouteCommand([]commands.RouteOrderEntry{
			{BookingID: kernel.NewUUID(), RouteOrder: 0},
		})
		require.ErrorIs(t, err, commands.ErrRouteOrderOutOfRange)
	})

	t.Run("duplicate booking", func(t *testing.T) {
		id := kernel.NewUUID()
		_, err := commands.NewReorderRouteCommand([]commands.RouteOrderEntry{
			{BookingID: id, RouteOrder: 1},
			{BookingID: id, RouteOrder: 2},
		})
		require.ErrorIs(t, err, commands.ErrDuplicateRouteEntries)
	})
}
