package bookingrepo

import (
	"context"
	"errors"
	"time"

	"haulaway/internal/core/domain/model/booking"
	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBookingRepository implements BookingRepository using GORM.
type GormBookingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBookingRepository creates a new GORM booking repository.
func NewGormBookingRepository(db *gorm.DB, tracker aggregateTracker) *GormBookingRepository {
	return &GormBookingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new booking to the database.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the full aggregate state of an existing booking. Select("*")
// forces zero and nil values through, so cleared dispatch fields persist.
func (r *GormBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("booking", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a booking by ID.
func (r *GormBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAssignedToDriver retrieves the driver's bookings for a service day in
// stop order, with unordered stops last.
func (r *GormBookingRepository) GetAssignedToDriver(
	ctx context.Context,
	driverID kernel.UUID,
	date kernel.ServiceDate,
) ([]*booking.Booking, error) {
	if err := errors.Join(driverID.Validate(), date.Validate()); err != nil {
		return nil, err
	}

	var dtos []BookingDTO
	err := r.db.WithContext(ctx).
		Where("driver_id = ? AND date = ?", driverID.Bytes(), date.Time()).
		Order("route_order ASC NULLS LAST, created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	bookings := make([]*booking.Booking, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

// CompareAndSwapStatus moves a booking to next only if the row still holds
// the expected status, and the expected driver when one is given. Zero rows
// matched means somebody got there first: the caller sees a version conflict,
// never a silent success.
func (r *GormBookingRepository) CompareAndSwapStatus(
	ctx context.Context,
	id kernel.UUID,
	expected booking.Status,
	expectedDriverID *kernel.UUID,
	next booking.Status,
) error {
	if err := errors.Join(id.Validate(), expected.Validate(), next.Validate()); err != nil {
		return err
	}

	query := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), expected.String())
	if expectedDriverID != nil {
		query = query.Where("driver_id = ?", expectedDriverID.Bytes())
	}

	result := query.Updates(map[string]any{
		"status":     next.String(),
		"updated_at": time.Now().UTC(),
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionConflictError("status", expected.String())
	}

	return nil
}

// UpdateAssignment sets the driver fields of one booking without touching its
// status. Terminal bookings are excluded in the predicate so a concurrent
// cancellation cannot be overwritten.
func (r *GormBookingRepository) UpdateAssignment(
	ctx context.Context,
	id kernel.UUID,
	driverID kernel.UUID,
	driverName string,
) error {
	if err := errors.Join(id.Validate(), driverID.Validate()); err != nil {
		return err
	}
	if driverName == "" {
		return errs.NewValueIsRequiredError("driverName")
	}

	result := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("id = ? AND status NOT IN ?", id.Bytes(), terminalStatusStrings()).
		Updates(map[string]any{
			"driver_id":   driverID.Bytes(),
			"driver_name": driverName,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("booking", id.String())
	}

	return nil
}

// ClearAssignment removes the driver fields and route order of one booking.
// A missing row is not an error: this is the compensation step of a failed
// batch assignment and must be safe to repeat.
func (r *GormBookingRepository) ClearAssignment(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"driver_id":   nil,
			"driver_name": "",
			"route_order": nil,
			"updated_at":  time.Now().UTC(),
		}).Error
}

// UpdateRouteOrder sets the stop sequence position of one assigned booking.
func (r *GormBookingRepository) UpdateRouteOrder(ctx context.Context, id kernel.UUID, routeOrder int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if routeOrder < 1 {
		return errs.NewValueIsInvalidError("routeOrder")
	}

	result := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("id = ? AND driver_id IS NOT NULL", id.Bytes()).
		Updates(map[string]any{
			"route_order": routeOrder,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("booking", id.String())
	}

	return nil
}

// GetDriversWithStops returns the distinct drivers holding at least one
// booking on the given day.
func (r *GormBookingRepository) GetDriversWithStops(
	ctx context.Context,
	date kernel.ServiceDate,
) ([]kernel.UUID, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}

	var rows []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Distinct("driver_id").
		Where("date = ? AND driver_id IS NOT NULL", date.Time()).
		Pluck("driver_id", &rows).Error
	if err != nil {
		return nil, err
	}

	drivers := make([]kernel.UUID, 0, len(rows))
	for _, raw := range rows {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, id)
	}

	return drivers, nil
}

func terminalStatusStrings() []string {
	statuses := make([]string, 0, len(booking.TerminalStatuses))
	for _, s := range booking.TerminalStatuses {
		statuses = append(statuses, s.String())
	}
	return statuses
}
