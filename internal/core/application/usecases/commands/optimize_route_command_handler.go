package commands

import (
	"context"
	"log/slog"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/core/ports"
	"haulaway/internal/pkg/batch"
)

// OptimizeRouteResult reports a settled optimization: how many stops received
// a new position and which rows failed to persist. Rerunning the command is
// idempotent, so failed rows are retried by resubmitting.
type OptimizeRouteResult struct {
	UpdatedCount int
	FailedIDs    []kernel.UUID
}

// OptimizeRouteCommandHandler asks the external routing service for an
// efficient visiting order and persists it as a dense 1..N sequence.
//
// The external call happens before any write: when the service is down or
// answers garbage, the command returns ports.ErrRouteServiceUnavailable with
// zero bookings mutated.
type OptimizeRouteCommandHandler struct {
	uowFactory BookingUoWFactory
	optimizer  ports.RouteOptimizer
	logger     *slog.Logger
}

// NewOptimizeRouteCommandHandler creates a handler for route optimization.
func NewOptimizeRouteCommandHandler(
	uowFactory BookingUoWFactory,
	optimizer ports.RouteOptimizer,
	logger *slog.Logger,
) OptimizeRouteCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return OptimizeRouteCommandHandler{
		uowFactory: uowFactory,
		optimizer:  optimizer,
		logger:     logger.With("component", "optimize_route"),
	}
}

// Handle loads the driver's stops, optimizes, and persists the new order.
func (h OptimizeRouteCommandHandler) Handle(ctx context.Context, cmd OptimizeRouteCommand) (OptimizeRouteResult, error) {
	if err := cmd.Validate(); err != nil {
		return OptimizeRouteResult{}, err
	}

	repo := h.uowFactory.Create().BookingRepository()

	bookings, err := repo.GetAssignedToDriver(ctx, cmd.DriverID(), cmd.Date())
	if err != nil {
		return OptimizeRouteResult{}, err
	}
	if len(bookings) == 0 {
		return OptimizeRouteResult{}, nil
	}

	stops := make([]ports.RouteStop, 0, len(bookings))
	for _, b := range bookings {
		stops = append(stops, ports.RouteStop{
			BookingID: b.ID(),
			Area:      b.Area(),
			Address:   b.Customer().Address,
		})
	}

	orderedIDs, err := h.optimizer.Optimize(ctx, stops)
	if err != nil {
		return OptimizeRouteResult{}, err
	}

	entries := make([]RouteOrderEntry, 0, len(orderedIDs))
	for position, id := range orderedIDs {
		entries = append(entries, RouteOrderEntry{BookingID: id, RouteOrder: position + 1})
	}

	result := batch.RunIndependent(ctx, entries, func(ctx context.Context, entry RouteOrderEntry) error {
		return repo.UpdateRouteOrder(ctx, entry.BookingID, entry.RouteOrder)
	})

	failed := make([]kernel.UUID, 0, len(result.Failed))
	for _, f := range result.Failed {
		failed = append(failed, f.Key.BookingID)
		h.logger.Warn("optimized route order update failed",
			"bookingId", f.Key.BookingID.String(),
			"routeOrder", f.Key.RouteOrder,
			"error", f.Err)
	}

	return OptimizeRouteResult{
		UpdatedCount: len(result.Succeeded),
		FailedIDs:    failed,
	}, nil
}
