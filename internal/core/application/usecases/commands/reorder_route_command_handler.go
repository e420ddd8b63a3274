package commands

import (
	"context"
	"log/slog"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/pkg/batch"
)

// ReorderRouteResult reports a settled reorder batch: how many rows were
// updated and which bookings failed. Failed entries are safe to resubmit.
type ReorderRouteResult struct {
	UpdatedCount int
	FailedIDs    []kernel.UUID
}

// ReorderRouteCommandHandler applies operator-chosen route orders with
// settle-all semantics and no compensation.
type ReorderRouteCommandHandler struct {
	uowFactory BookingUoWFactory
	logger     *slog.Logger
}

// NewReorderRouteCommandHandler creates a handler for route reordering.
func NewReorderRouteCommandHandler(uowFactory BookingUoWFactory, logger *slog.Logger) ReorderRouteCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return ReorderRouteCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "reorder_route"),
	}
}

// Handle runs the batch and reports the outcome. The returned error is only
// non-nil for invalid commands; per-row failures live in the result.
func (h ReorderRouteCommandHandler) Handle(ctx context.Context, cmd ReorderRouteCommand) (ReorderRouteResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReorderRouteResult{}, err
	}

	repo := h.uowFactory.Create().BookingRepository()

	result := batch.RunIndependent(ctx, cmd.Entries(), func(ctx context.Context, entry RouteOrderEntry) error {
		return repo.UpdateRouteOrder(ctx, entry.BookingID, entry.RouteOrder)
	})

	failed := make([]kernel.UUID, 0, len(result.Failed))
	for _, f := range result.Failed {
		failed = append(failed, f.Key.BookingID)
		h.logger.Warn("route order update failed",
			"bookingId", f.Key.BookingID.String(),
			"routeOrder", f.Key.RouteOrder,
			"error", f.Err)
	}

	return ReorderRouteResult{
		UpdatedCount: len(result.Succeeded),
		FailedIDs:    failed,
	}, nil
}
