// Package commands contains business operations that modify system state.
// Commands follow one pattern: constructor validation, repository access
// through a unit of work, explicit error classification for the transport
// layer.
//
// Not every command opens a transaction. The batch dispatch commands rely on
// per-row conditional writes for their consistency and fan out over the base
// connection, because a single gorm transaction must not be shared across
// goroutines.
package commands

import (
	"context"

	"haulaway/internal/core/ports"
)

type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BookingRepoFactory provides access to the booking repository.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// VehicleRepoFactory provides access to the vehicle assignment repository.
	VehicleRepoFactory interface {
		VehicleAssignmentRepository() ports.VehicleAssignmentRepository
	}

	// BookingUoW manages booking-only operations.
	BookingUoW interface {
		TxManager
		BookingRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// VehicleUoW manages vehicle-assignment-only operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}
)
