package vehiclerepo

import (
	"context"
	"errors"
	"fmt"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/core/domain/model/vehicle"
	"haulaway/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleAssignmentRepository implements VehicleAssignmentRepository using GORM.
type GormVehicleAssignmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormVehicleAssignmentRepository creates a new GORM vehicle assignment repository.
func NewGormVehicleAssignmentRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleAssignmentRepository {
	return &GormVehicleAssignmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assignment. Unique index violations surface as
// errs.ErrValueIsInvalid: the driver or the vehicle is already booked that day.
// Requires gorm.Config{TranslateError: true} on the connection.
func (r *GormVehicleAssignmentRepository) Add(ctx context.Context, aggregate *vehicle.Assignment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("assignment",
				fmt.Errorf("driver %s or vehicle %s already assigned on %s",
					aggregate.DriverID(), aggregate.VehicleID(), aggregate.Date()))
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes an assignment by ID.
func (r *GormVehicleAssignmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AssignmentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicleAssignment", id.String())
	}

	return nil
}

// Get retrieves an assignment by ID.
func (r *GormVehicleAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Assignment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AssignmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicleAssignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByDate retrieves all assignments for a service day.
func (r *GormVehicleAssignmentRepository) GetAllByDate(
	ctx context.Context,
	date kernel.ServiceDate,
) ([]*vehicle.Assignment, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}

	var dtos []AssignmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "date = ?", date.Time()).Error; err != nil {
		return nil, err
	}

	assignments := make([]*vehicle.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}
