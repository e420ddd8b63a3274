package commands

import (
	"errors"
	"fmt"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/pkg/guard"
)

// MaxAssignBatchSize bounds one batch assignment request.
const MaxAssignBatchSize = 50

var (
	ErrAssignDriverCommandIsNotConstructed = errors.New(
		"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
	)
	ErrBookingIDsAreRequired = errors.New("at least one booking id is required")
	ErrTooManyBookings       = fmt.Errorf("at most %d bookings per assignment batch", MaxAssignBatchSize)
	ErrDuplicateBookingIDs   = errors.New("booking ids must be unique")
	ErrDriverNameIsRequired  = errors.New("driver name is required")
)

// AssignDriverCommand assigns one driver to a batch of bookings. The batch is
// all-or-nothing: partial success is compensated back to unassigned.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	bookingIDs []kernel.UUID
	driverID   kernel.UUID
	driverName string

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand validates and creates a batch assignment command.
func NewAssignDriverCommand(
	bookingIDs []kernel.UUID,
	driverID kernel.UUID,
	driverName string,
) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingIDs(bookingIDs),
		cmd.setDriver(driverID, driverName),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// BookingIDs returns the bookings to assign.
func (c AssignDriverCommand) BookingIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.bookingIDs...)
}

// DriverID returns the driver's identity.
func (c AssignDriverCommand) DriverID() kernel.UUID { return c.driverID }

// DriverName returns the driver's display name.
func (c AssignDriverCommand) DriverName() string { return c.driverName }

func (c *AssignDriverCommand) setBookingIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrBookingIDsAreRequired
	}
	if len(ids) > MaxAssignBatchSize {
		return ErrTooManyBookings
	}

	seen := make(map[kernel.UUID]bool, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if seen[id] {
			return ErrDuplicateBookingIDs
		}
		seen[id] = true
	}

	c.bookingIDs = append([]kernel.UUID(nil), ids...)
	return nil
}

func (c *AssignDriverCommand) setDriver(driverID kernel.UUID, driverName string) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if driverName == "" {
		return ErrDriverNameIsRequired
	}

	c.driverID = driverID
	c.driverName = driverName
	return nil
}
