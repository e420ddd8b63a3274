// Package notify implements the Notifier port. The current delivery channel
// is the structured log: the SMS gateway integration plugs in here without
// touching callers.
package notify

import (
	"context"
	"log/slog"

	"haulaway/internal/core/ports"
)

// LogNotifier writes customer notifications to the structured log.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

// StatusChanged records the notification. Phone numbers are masked: the log
// is not a place for full contact data.
func (n *LogNotifier) StatusChanged(ctx context.Context, notification ports.StatusNotification) error {
	n.logger.InfoContext(ctx, "customer notification",
		"bookingId", notification.BookingID.String(),
		"customerName", notification.CustomerName,
		"phone", maskPhone(notification.Phone),
		"status", notification.Status.String(),
	)
	return nil
}

// maskPhone keeps the leading prefix and last two digits.
func maskPhone(phone string) string {
	if len(phone) < 6 {
		return "***"
	}
	masked := []rune(phone)
	for i := 3; i < len(masked)-2; i++ {
		if masked[i] != '-' {
			masked[i] = '*'
		}
	}
	return string(masked)
}
