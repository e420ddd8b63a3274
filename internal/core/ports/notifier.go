package ports

import (
	"context"

	"haulaway/internal/core/domain/model/booking"
	"haulaway/internal/core/domain/model/kernel"
)

// StatusNotification carries what the customer needs to hear about a
// lifecycle change.
type StatusNotification struct {
	BookingID    kernel.UUID
	CustomerName string
	Phone        string
	Status       booking.Status
}

// Notifier delivers customer-facing notifications (SMS/push). Delivery is
// fire-and-forget from the caller's perspective: it runs after the state
// change commits, and its failure is logged, never propagated into the
// primary operation's result.
type Notifier interface {
	StatusChanged(ctx context.Context, notification StatusNotification) error
}
