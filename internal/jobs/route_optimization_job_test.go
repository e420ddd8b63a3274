package jobs

import (
	"context"
	"testing"
	"time"

	"haulaway/internal/core/application/usecases/commands"
	"haulaway/internal/core/domain/model/booking"
	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *mockBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *mockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*booking.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) GetAssignedToDriver(ctx context.Context, driverID kernel.UUID, date kernel.ServiceDate) ([]*booking.Booking, error) {
	args := m.Called(ctx, driverID, date)
	if b := args.Get(0); b != nil {
		return b.([]*booking.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) CompareAndSwapStatus(ctx context.Context, id kernel.UUID, expected booking.Status, expectedDriverID *kernel.UUID, next booking.Status) error {
	args := m.Called(ctx, id, expected, expectedDriverID, next)
	return args.Error(0)
}

func (m *mockBookingRepository) UpdateAssignment(ctx context.Context, id kernel.UUID, driverID kernel.UUID, driverName string) error {
	args := m.Called(ctx, id, driverID, driverName)
	return args.Error(0)
}

func (m *mockBookingRepository) ClearAssignment(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockBookingRepository) UpdateRouteOrder(ctx context.Context, id kernel.UUID, routeOrder int) error {
	args := m.Called(ctx, id, routeOrder)
	return args.Error(0)
}

func (m *mockBookingRepository) GetDriversWithStops(ctx context.Context, date kernel.ServiceDate) ([]kernel.UUID, error) {
	args := m.Called(ctx, date)
	if ids := args.Get(0); ids != nil {
		return ids.([]kernel.UUID), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingUoW struct {
	repo ports.BookingRepository
}

func (m *mockBookingUoW) Begin(ctx context.Context) error    { return nil }
func (m *mockBookingUoW) Commit(ctx context.Context) error   { return nil }
func (m *mockBookingUoW) Rollback(ctx context.Context) error { return nil }
func (m *mockBookingUoW) BookingRepository() ports.BookingRepository {
	return m.repo
}

type funcUoWFactory func() commands.BookingUoW

func (f funcUoWFactory) Create() commands.BookingUoW { return f() }

type mockRouteOptimizer struct {
	mock.Mock
}

func (m *mockRouteOptimizer) Optimize(ctx context.Context, stops []ports.RouteStop) ([]kernel.UUID, error) {
	args := m.Called(ctx, stops)
	if ids := args.Get(0); ids != nil {
		return ids.([]kernel.UUID), args.Error(1)
	}
	return nil, args.Error(1)
}

func assignedBooking(t *testing.T, driverID kernel.UUID) *booking.Booking {
	t.Helper()

	item, err := booking.NewLineItem("furniture", "소파", "소파", 1, 150_000, 1.2, true)
	require.NoError(t, err)

	b, err := booking.RestoreBooking(booking.RestoreBookingParams{
		ID:       kernel.NewUUID(),
		Date:     kernel.NewServiceDate(time.Now()),
		TimeSlot: "오전",
		Area:     "강남구",
		Items:    []booking.LineItem{item},
		Customer: booking.CustomerInfo{
			Name:    "홍길동",
			Phone:   "010-1234-5678",
			Address: "서울시 강남구 테헤란로 123",
		},
		Pricing: booking.PriceSnapshot{
			ItemsTotal:       150_000,
			CrewSize:         1,
			CrewPrice:        100_000,
			TotalPrice:       250_000,
			EstimateMin:      100_000,
			EstimateMax:      290_000,
			TotalLoadingCube: 1.2,
		},
		Status:     booking.StatusUserConfirmed,
		DriverID:   &driverID,
		DriverName: "김기사",
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	})
	require.NoError(t, err)
	return b
}

func newTestJob(repo ports.BookingRepository, optimizer ports.RouteOptimizer, today kernel.ServiceDate) *RouteOptimizationJob {
	factory := funcUoWFactory(func() commands.BookingUoW {
		return &mockBookingUoW{repo: repo}
	})
	handler := commands.NewOptimizeRouteCommandHandler(factory, optimizer, nil)

	job := NewRouteOptimizationJob(handler, repo, nil)
	job.today = func() kernel.ServiceDate { return today }
	return job
}

func TestRouteOptimizationJob_OptimizesEveryDriverWithStops(t *testing.T) {
	ctx := context.Background()
	today := kernel.NewServiceDate(time.Now())
	driverA := kernel.NewUUID()
	driverB := kernel.NewUUID()

	stopA := assignedBooking(t, driverA)
	stopB1 := assignedBooking(t, driverB)
	stopB2 := assignedBooking(t, driverB)

	repo := &mockBookingRepository{}
	repo.On("GetDriversWithStops", ctx, today).Return([]kernel.UUID{driverA, driverB}, nil)
	repo.On("GetAssignedToDriver", ctx, driverA, today).Return([]*booking.Booking{stopA}, nil)
	repo.On("GetAssignedToDriver", ctx, driverB, today).Return([]*booking.Booking{stopB1, stopB2}, nil)
	repo.On("UpdateRouteOrder", ctx, mock.Anything, mock.Anything).Return(nil)

	optimizer := &mockRouteOptimizer{}
	optimizer.On("Optimize", ctx, mock.Anything).Return([]kernel.UUID{stopA.ID()}, nil).Once()
	optimizer.On("Optimize", ctx, mock.Anything).Return([]kernel.UUID{stopB2.ID(), stopB1.ID()}, nil).Once()

	newTestJob(repo, optimizer, today).Run(ctx)

	repo.AssertNumberOfCalls(t, "UpdateRouteOrder", 3)
	repo.AssertCalled(t, "UpdateRouteOrder", ctx, stopB2.ID(), 1)
	repo.AssertCalled(t, "UpdateRouteOrder", ctx, stopB1.ID(), 2)
}

func TestRouteOptimizationJob_UnavailableServiceLeavesOrderUntouched(t *testing.T) {
	ctx := context.Background()
	today := kernel.NewServiceDate(time.Now())
	driverID := kernel.NewUUID()
	stop := assignedBooking(t, driverID)

	repo := &mockBookingRepository{}
	repo.On("GetDriversWithStops", ctx, today).Return([]kernel.UUID{driverID}, nil)
	repo.On("GetAssignedToDriver", ctx, driverID, today).Return([]*booking.Booking{stop}, nil)

	optimizer := &mockRouteOptimizer{}
	optimizer.On("Optimize", ctx, mock.Anything).Return(nil, ports.ErrRouteServiceUnavailable)

	newTestJob(repo, optimizer, today).Run(ctx)

	repo.AssertNotCalled(t, "UpdateRouteOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestRouteOptimizationJob_DriverListingFailureStopsTheRun(t *testing.T) {
	ctx := context.Background()
	today := kernel.NewServiceDate(time.Now())

	repo := &mockBookingRepository{}
	repo.On("GetDriversWithStops", ctx, today).Return(nil, assert.AnError)

	optimizer := &mockRouteOptimizer{}

	newTestJob(repo, optimizer, today).Run(ctx)

	optimizer.AssertNotCalled(t, "Optimize", mock.Anything, mock.Anything)
}
