package ports

import "context"

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork coordinates a transaction across the repositories it vends.
// Repository instances obtained from it participate in the active
// transaction; without Begin they act on the base connection.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	BookingRepository() BookingRepository
	VehicleAssignmentRepository() VehicleAssignmentRepository
}
