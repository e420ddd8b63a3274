package commands

import (
	"errors"

	"haulaway/internal/core/domain/model/booking"
	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/core/domain/services"
	"haulaway/internal/pkg/guard"
)

// MaxLadderHours bounds the ladder-truck duration bucket accepted from clients.
const MaxLadderHours = 10

var (
	ErrCreateBookingCommandIsNotConstructed = errors.New(
		"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
	)
	ErrItemsAreRequired     = errors.New("at least one item is required")
	ErrItemNameIsRequired   = errors.New("every item needs a name")
	ErrLadderHoursOutOfRange = errors.New("ladder hours must be between 0 and 10")
)

// CreateBookingCommand represents a customer submission of a pickup request.
// It carries only identifying item fields; all monetary values are recomputed
// server-side before anything is persisted.
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID   kernel.UUID
	date        kernel.ServiceDate
	timeSlot    string
	area        string
	items       []services.QuoteItem
	needLadder  bool
	ladderType  string
	ladderHours int
	customer    booking.CustomerInfo

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand validates and creates a booking creation command.
func NewCreateBookingCommand(
	bookingID kernel.UUID,
	date kernel.ServiceDate,
	timeSlot string,
	area string,
	items []services.QuoteItem,
	needLadder bool,
	ladderType string,
	ladderHours int,
	customer booking.CustomerInfo,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBookingID(bookingID),
		cmd.setDate(date),
		cmd.setArea(area),
		cmd.setItems(items),
		cmd.setLadder(needLadder, ladderType, ladderHours),
		cmd.setCustomer(customer),
	); err != nil {
		return CreateBookingCommand{}, err
	}
	cmd.timeSlot = timeSlot

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// BookingID returns the pre-generated booking identifier.
func (c CreateBookingCommand) BookingID() kernel.UUID { return c.bookingID }

// Date returns the requested pickup day.
func (c CreateBookingCommand) Date() kernel.ServiceDate { return c.date }

// TimeSlot returns the requested time window label.
func (c CreateBookingCommand) TimeSlot() string { return c.timeSlot }

// Area returns the service zone name.
func (c CreateBookingCommand) Area() string { return c.area }

// Items returns the requested items.
func (c CreateBookingCommand) Items() []services.QuoteItem {
	return append([]services.QuoteItem(nil), c.items...)
}

// NeedLadder reports whether a ladder truck was requested.
func (c CreateBookingCommand) NeedLadder() bool { return c.needLadder }

// LadderType returns the requested ladder tier name.
func (c CreateBookingCommand) LadderType() string { return c.ladderType }

// LadderHours returns the requested ladder duration bucket.
func (c CreateBookingCommand) LadderHours() int { return c.ladderHours }

// Customer returns the contact fields.
func (c CreateBookingCommand) Customer() booking.CustomerInfo { return c.customer }

func (c *CreateBookingCommand) setBookingID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.bookingID = id
	return nil
}

func (c *CreateBookingCommand) setDate(date kernel.ServiceDate) error {
	if err := date.Validate(); err != nil {
		return err
	}
	c.date = date
	return nil
}

func (c *CreateBookingCommand) setArea(area string) error {
	if area == "" {
		return errors.New("area is required")
	}
	c.area = area
	return nil
}

func (c *CreateBookingCommand) setItems(items []services.QuoteItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if item.Name == "" {
			return ErrItemNameIsRequired
		}
	}
	c.items = append([]services.QuoteItem(nil), items...)
	return nil
}

func (c *CreateBookingCommand) setLadder(needLadder bool, ladderType string, ladderHours int) error {
	if ladderHours < 0 || ladderHours > MaxLadderHours {
		return ErrLadderHoursOutOfRange
	}
	c.needLadder = needLadder
	c.ladderType = ladderType
	c.ladderHours = ladderHours
	return nil
}

func (c *CreateBookingCommand) setCustomer(customer booking.CustomerInfo) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	c.customer = customer
	return nil
}
