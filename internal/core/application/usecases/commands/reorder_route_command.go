package commands

import (
	"errors"
	"fmt"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/pkg/guard"
)

// MaxReorderBatchSize bounds one route reorder request.
const MaxReorderBatchSize = 100

var (
	ErrReorderRouteCommandIsNotConstructed = errors.New(
		"ReorderRouteCommand must be created via NewReorderRouteCommand constructor",
	)
	ErrEntriesAreRequired    = errors.New("at least one route order entry is required")
	ErrTooManyEntries        = fmt.Errorf("at most %d entries per reorder batch", MaxReorderBatchSize)
	ErrRouteOrderOutOfRange  = errors.New("route order positions start at 1")
	ErrDuplicateRouteEntries = errors.New("route order entries must name unique bookings")
)

// RouteOrderEntry places one booking at one position of a driver's day.
type RouteOrderEntry struct {
	BookingID  kernel.UUID
	RouteOrder int
}

// ReorderRouteCommand applies an operator-chosen stop sequence. Entries are
// independent row writes: partial failure is reported, not rolled back, since
// a half-applied sequence is repairable by resubmitting and never corrupts
// booking state beyond ordering.
type ReorderRouteCommand struct { //nolint:recvcheck //using for validation
	entries []RouteOrderEntry

	guard guard.ConstructorGuard
}

// NewReorderRouteCommand validates and creates a reorder command.
func NewReorderRouteCommand(entries []RouteOrderEntry) (ReorderRouteCommand, error) {
	cmd := ReorderRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setEntries(entries); err != nil {
		return ReorderRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReorderRouteCommand) Validate() error {
	return c.guard.Validate(ErrReorderRouteCommandIsNotConstructed)
}

// Entries returns the requested (booking, position) pairs.
func (c ReorderRouteCommand) Entries() []RouteOrderEntry {
	return append([]RouteOrderEntry(nil), c.entries...)
}

func (c *ReorderRouteCommand) setEntries(entries []RouteOrderEntry) error {
	if len(entries) == 0 {
		return ErrEntriesAreRequired
	}
	if len(entries) > MaxReorderBatchSize {
		return ErrTooManyEntries
	}

	seen := make(map[kernel.UUID]bool, len(entries))
	for _, entry := range entries {
		if err := entry.BookingID.Validate(); err != nil {
			return err
		}
		if entry.RouteOrder < 1 {
			return ErrRouteOrderOutOfRange
		}
		if seen[entry.BookingID] {
			return ErrDuplicateRouteEntries
		}
		seen[entry.BookingID] = true
	}

	c.entries = append([]RouteOrderEntry(nil), entries...)
	return nil
}
