package ports

import (
	"context"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/core/domain/model/vehicle"
)

// VehicleAssignmentRepository persists driver-vehicle day assignments.
// Uniqueness per (driver, date) and per (vehicle, date) is enforced by the
// store; Add surfaces violations as errs.ErrValueIsInvalid.
type VehicleAssignmentRepository interface {
	Add(ctx context.Context, aggregate *vehicle.Assignment) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Assignment, error)
	GetAllByDate(ctx context.Context, date kernel.ServiceDate) ([]*vehicle.Assignment, error)
}
