package commands

import (
	"errors"

	"haulaway/internal/core/domain/model/booking"
	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/pkg/guard"
)

var (
	ErrChangeBookingStatusCommandIsNotConstructed = errors.New(
		"ChangeBookingStatusCommand must be created via NewChangeBookingStatusCommand constructor",
	)
	ErrDriverIdentityIsRequired = errors.New("driver identity is required for driver transitions")
)

// ChangeBookingStatusCommand moves a booking along the lifecycle graph on
// behalf of one acting role. Driver transitions additionally carry the
// driver's identity for the ownership check.
type ChangeBookingStatusCommand struct { //nolint:recvcheck //using for validation
	bookingID kernel.UUID
	actor     booking.Actor
	target    booking.Status
	driverID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeBookingStatusCommand validates and creates a status change command.
// driverID is required when actor is the driver role and ignored otherwise.
func NewChangeBookingStatusCommand(
	bookingID kernel.UUID,
	actor booking.Actor,
	target booking.Status,
	driverID *kernel.UUID,
) (ChangeBookingStatusCommand, error) {
	cmd := ChangeBookingStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setActor(actor, driverID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeBookingStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeBookingStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeBookingStatusCommandIsNotConstructed)
}

// BookingID returns the booking identifier.
func (c ChangeBookingStatusCommand) BookingID() kernel.UUID { return c.bookingID }

// Actor returns the acting role.
func (c ChangeBookingStatusCommand) Actor() booking.Actor { return c.actor }

// Target returns the requested status.
func (c ChangeBookingStatusCommand) Target() booking.Status { return c.target }

// DriverID returns the acting driver's identity, or nil for other roles.
func (c ChangeBookingStatusCommand) DriverID() *kernel.UUID { return c.driverID }

func (c *ChangeBookingStatusCommand) setBookingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.bookingID = id
	return nil
}

func (c *ChangeBookingStatusCommand) setActor(actor booking.Actor, driverID *kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor == booking.ActorDriver {
		if driverID == nil {
			return ErrDriverIdentityIsRequired
		}
		if err := driverID.Validate(); err != nil {
			return err
		}
		id := *driverID
		c.driverID = &id
	}
	c.actor = actor
	return nil
}

func (c *ChangeBookingStatusCommand) setTarget(target booking.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
