package commands_test

import (
	"context"
	"testing"
	"time"

	"haulaway/internal/core/application/usecases/commands"
	"haulaway/internal/core/domain/model/booking"
	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/core/domain/model/vehicle"
	"haulaway/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetAssignedToDriver(
	ctx context.Context, driverID kernel.UUID, date kernel.ServiceDate,
) ([]*booking.Booking, error) {
	args := m.Called(ctx, driverID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) CompareAndSwapStatus(
	ctx context.Context, id kernel.UUID,
	expected booking.Status, expectedDriverID *kernel.UUID, next booking.Status,
) error {
	args := m.Called(ctx, id, expected, expectedDriverID, next)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateAssignment(
	ctx context.Context, id kernel.UUID, driverID kernel.UUID, driverName string,
) error {
	args := m.Called(ctx, id, driverID, driverName)
	return args.Error(0)
}

func (m *MockBookingRepository) ClearAssignment(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateRouteOrder(ctx context.Context, id kernel.UUID, routeOrder int) error {
	args := m.Called(ctx, id, routeOrder)
	return args.Error(0)
}

func (m *MockBookingRepository) GetDriversWithStops(
	ctx context.Context, date kernel.ServiceDate,
) ([]kernel.UUID, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockBookingUoW struct{ mock.Mock }

func (m *MockBookingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockBookingUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockVehicleAssignmentRepository struct{ mock.Mock }

func (m *MockVehicleAssignmentRepository) Add(ctx context.Context, a *vehicle.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockVehicleAssignmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVehicleAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Assignment), args.Error(1)
}

func (m *MockVehicleAssignmentRepository) GetAllByDate(
	ctx context.Context, date kernel.ServiceDate,
) ([]*vehicle.Assignment, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Assignment), args.Error(1)
}

type MockVehicleUoW struct{ mock.Mock }

func (m *MockVehicleUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockVehicleUoW) VehicleAssignmentRepository() ports.VehicleAssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleAssignmentRepository)
}

type MockVehicleUoWFactory struct{ mock.Mock }

func (m *MockVehicleUoWFactory) Create() commands.VehicleUoW {
	args := m.Called()
	return args.Get(0).(commands.VehicleUoW)
}

type MockRouteOptimizer struct{ mock.Mock }

func (m *MockRouteOptimizer) Optimize(ctx context.Context, stops []ports.RouteStop) ([]kernel.UUID, error) {
	args := m.Called(ctx, stops)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

// restoreTestBooking builds a persisted-looking booking in the given status,
// optionally assigned to a driver.
func restoreTestBooking(t *testing.T, status booking.Status, driverID *kernel.UUID) *booking.Booking {
	t.Helper()

	now := time.Now().UTC()
	driverName := ""
	if driverID != nil {
		driverName = "김기사"
	}

	b, err := booking.RestoreBooking(booking.RestoreBookingParams{
		ID:       kernel.NewUUID(),
		Date:     kernel.NewServiceDate(now),
		TimeSlot: "오전",
		Area:     "강남구",
		Items: []booking.LineItem{{
			Category:    "furniture",
			Name:        "소파",
			DisplayName: "소파",
			Quantity:    1,
			UnitPrice:   150_000,
			UnitVolume:  1.2,
			Verified:    true,
		}},
		Customer: booking.CustomerInfo{
			Name:    "홍길동",
			Phone:   "010-1234-5678",
			Address: "서울시 강남구 테헤란로 123",
		},
		Pricing: booking.PriceSnapshot{
			ItemsTotal:  150_000,
			CrewSize:    1,
			CrewPrice:   100_000,
			TotalPrice:  250_000,
			EstimateMin: 100_000,
			EstimateMax: 290_000,
		},
		Status:     status,
		DriverID:   driverID,
		DriverName: driverName,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatal(err)
	}
	return b
}
