// Package vehiclerepo implements VehicleAssignmentRepository on PostgreSQL
// via GORM. The unique indexes carry the business rule: one vehicle per
// driver per day, one driver per vehicle per day.
package vehiclerepo

import (
	"time"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// AssignmentDTO is the database representation of a day assignment.
type AssignmentDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	DriverID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_vehicle_assignments_driver_date,priority:1"`
	VehicleID string    `gorm:"uniqueIndex:idx_vehicle_assignments_vehicle_date,priority:1"`
	Date      time.Time `gorm:"type:date;uniqueIndex:idx_vehicle_assignments_driver_date,priority:2;uniqueIndex:idx_vehicle_assignments_vehicle_date,priority:2"`
}

// TableName overrides GORM's naming convention.
func (AssignmentDTO) TableName() string {
	return "vehicle_assignments"
}

func fromDomain(aggregate *vehicle.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:        aggregate.ID().Bytes(),
		DriverID:  aggregate.DriverID().Bytes(),
		VehicleID: aggregate.VehicleID(),
		Date:      aggregate.Date().Time(),
	}
}

func toDomain(dto AssignmentDTO) (*vehicle.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreAssignment(id, driverID, dto.VehicleID, kernel.NewServiceDate(dto.Date))
}
