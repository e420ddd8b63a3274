package commands

import (
	"context"
	"log/slog"
	"time"

	"haulaway/internal/core/domain/model/booking"
	"haulaway/internal/core/ports"
)

// notifyTimeout bounds the post-commit notification attempt.
const notifyTimeout = 5 * time.Second

// ChangeBookingStatusCommandHandler moves a booking along the lifecycle
// graph with optimistic concurrency. The read validates the transition
// against the graph and the acting role; the write is a compare-and-swap
// keyed on the status the handler read (and the driver identity for driver
// transitions), so a concurrent change surfaces as a version conflict
// instead of silently winning.
type ChangeBookingStatusCommandHandler struct {
	uowFactory BookingUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewChangeBookingStatusCommandHandler creates a handler for status changes.
func NewChangeBookingStatusCommandHandler(
	uowFactory BookingUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) ChangeBookingStatusCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return ChangeBookingStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "change_booking_status"),
	}
}

// Handle validates and executes the transition. The conditional write is the
// only mutation, so no transaction is opened; atomicity comes from the
// compare-and-swap predicate itself.
func (h ChangeBookingStatusCommandHandler) Handle(ctx context.Context, cmd ChangeBookingStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	repo := h.uowFactory.Create().BookingRepository()

	current, err := repo.Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}
	observedStatus := current.Status()

	if cmd.Actor() == booking.ActorDriver {
		if err = current.TransitionByDriver(*cmd.DriverID(), cmd.Target()); err != nil {
			return err
		}
		if err = repo.CompareAndSwapStatus(ctx,
			cmd.BookingID(), observedStatus, cmd.DriverID(), cmd.Target()); err != nil {
			return err
		}
	} else {
		if err = current.TransitionTo(cmd.Actor(), cmd.Target()); err != nil {
			return err
		}
		if err = repo.CompareAndSwapStatus(ctx,
			cmd.BookingID(), observedStatus, nil, cmd.Target()); err != nil {
			return err
		}
	}

	h.notifyIfCustomerVisible(current, cmd.Target())
	return nil
}

// notifyIfCustomerVisible fires the customer notification after the write
// lands. Fire-and-forget: delivery failure is logged, never propagated.
func (h ChangeBookingStatusCommandHandler) notifyIfCustomerVisible(b *booking.Booking, target booking.Status) {
	if h.notifier == nil || !target.NotifiesCustomer() {
		return
	}

	notification := ports.StatusNotification{
		BookingID:    b.ID(),
		CustomerName: b.Customer().Name,
		Phone:        b.Customer().Phone,
		Status:       target,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := h.notifier.StatusChanged(ctx, notification); err != nil {
			h.logger.Warn("customer notification failed",
				"bookingId", notification.BookingID.String(),
				"status", notification.Status.String(),
				"error", err)
		}
	}()
}
