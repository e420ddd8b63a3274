// Package ports defines the interfaces between the application core and its
// adapters: persistence, the external routing service, and notification
// delivery. Implementations live under internal/adapters.
package ports

import (
	"context"

	"haulaway/internal/core/domain/model/booking"
	"haulaway/internal/core/domain/model/kernel"
)

// BookingRepository persists Booking aggregates.
//
// Alongside the aggregate-level Add/Update/Get it exposes narrow conditional
// primitives used by the lifecycle state machine and the dispatch engine.
// These exist because their callers need field-precise, concurrency-safe
// writes: a full-aggregate Update would clobber concurrent changes the
// caller never read.
type BookingRepository interface {
	// Add persists a new booking.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists the full aggregate state of an existing booking.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking by id. Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// GetAssignedToDriver returns the driver's bookings for a service day,
	// ordered by route order (unordered stops last).
	GetAssignedToDriver(ctx context.Context, driverID kernel.UUID, date kernel.ServiceDate) ([]*booking.Booking, error)

	// CompareAndSwapStatus conditionally moves a booking to next: the write
	// succeeds only if the row still holds the expected status and, when
	// expectedDriverID is non-nil, the expected driver. A zero-row match is
	// reported as errs.ErrVersionConflict, never as success.
	CompareAndSwapStatus(
		ctx context.Context,
		id kernel.UUID,
		expected booking.Status,
		expectedDriverID *kernel.UUID,
		next booking.Status,
	) error

	// UpdateAssignment sets the driver fields of one booking without touching
	// its status. Fails on terminal bookings.
	UpdateAssignment(ctx context.Context, id kernel.UUID, driverID kernel.UUID, driverName string) error

	// ClearAssignment removes the driver fields and route order of one booking.
	// Used both by operators and as the compensation step of a failed batch
	// assignment, so it must be idempotent.
	ClearAssignment(ctx context.Context, id kernel.UUID) error

	// UpdateRouteOrder sets the stop sequence position of one booking.
	UpdateRouteOrder(ctx context.Context, id kernel.UUID, routeOrder int) error

	// GetDriversWithStops returns the distinct drivers that have at least one
	// assigned booking on the given day.
	GetDriversWithStops(ctx context.Context, date kernel.ServiceDate) ([]kernel.UUID, error)
}
