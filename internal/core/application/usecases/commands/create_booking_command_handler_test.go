package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"haulaway/internal/core/application/usecases/commands"
	"haulaway/internal/core/domain/model/booking"
	"haulaway/internal/core/domain/model/catalog"
	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCalculator() services.QuoteCalculator {
	cat := catalog.NewCatalog(catalog.DefaultItems(), catalog.DefaultAreaRates(), catalog.DefaultLadderTiers())
	return services.NewQuoteCalculator(cat, nil)
}

func validCreateBookingCommand(t *testing.T) commands.CreateBookingCommand {
	t.Helper()

	cmd, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(),
		kernel.NewServiceDate(time.Now()),
		"오전",
		"강남구",
		[]services.QuoteItem{{Category: "가구", Name: "소파", Quantity: 1}},
		false, "", 0,
		booking.CustomerInfo{
			Name:    "홍길동",
			Phone:   "010-1234-5678",
			Address: "서울시 강남구 테헤란로 123",
		},
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateBookingCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd := validCreateBookingCommand(t)

	repo := new(MockBookingRepository)
	uow := new(MockBookingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBookingCommandHandler(factory, testCalculator())
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// The persisted aggregate carries the server-side price, not the client's.
	added := repo.Calls[0].Arguments.Get(1).(*booking.Booking)
	require.Equal(t, booking.StatusPending, added.Status())
	require.Equal(t, 150_000, added.Pricing().ItemsTotal)
	require.True(t, added.Items()[0].Verified)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateBookingCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	factory := new(MockBookingUoWFactory)
	h := commands.NewCreateBookingCommandHandler(factory, testCalculator())

	err := h.Handle(ctx, commands.CreateBookingCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateBookingCommandHandler_Handle_AddError(t *testing.T) {
	ctx := context.Background()
	cmd := validCreateBookingCommand(t)

	repo := new(MockBookingRepository)
	uow := new(MockBookingUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateBookingCommandHandler(factory, testCalculator())
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateBookingCommandHandler_Handle_UnknownItemIsKeptUnverified(t *testing.T) {
	ctx := context.Background()

	cmd, err := commands.NewCreateBookingCommand(
		kernel.NewUUID(),
		kernel.NewServiceDate(time.Now()),
		"오전",
		"강남구",
		[]services.QuoteItem{{Category: "furniture", Name: "없는물건", Quantity: 2}},
		false, "", 0,
		booking.CustomerInfo{Name: "홍길동", Phone: "010-1234-5678", Address: "서울시"},
	)
	require.NoError(t, err)

	repo := new(MockBookingRepository)
	uow := new(MockBookingUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("BookingRepository").Return(repo)
	repo.On("Add", mock.Anything, mock.Anything).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockBookingUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewCreateBookingCommandHandler(factory, testCalculator())
	require.NoError(t, h.Handle(ctx, cmd))

	added := repo.Calls[0].Arguments.Get(1).(*booking.Booking)
	items := added.Items()
	require.Len(t, items, 1)
	require.False(t, items[0].Verified)
	require.Zero(t, items[0].UnitPrice)
	require.Zero(t, added.Pricing().ItemsTotal)
}
