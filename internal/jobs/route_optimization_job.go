package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"haulaway/internal/core/application/usecases/commands"
	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// routeOptimizationSchedule fires at 06:00 every day, before drivers leave
// the depot but after the previous evening's dispatch changes have settled.
const routeOptimizationSchedule = "0 0 6 * * *"

// RouteOptimizationJob reorders every active driver's stops for the current
// day through the external routing service. A failed driver never blocks the
// others: each optimization is an independent command.
type RouteOptimizationJob struct {
	handler  commands.OptimizeRouteCommandHandler
	bookings ports.BookingRepository
	cron     *cron.Cron
	logger   *slog.Logger

	today func() kernel.ServiceDate
}

// NewRouteOptimizationJob creates the daily route optimization job.
func NewRouteOptimizationJob(
	handler commands.OptimizeRouteCommandHandler,
	bookings ports.BookingRepository,
	logger *slog.Logger,
) *RouteOptimizationJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &RouteOptimizationJob{
		handler:  handler,
		bookings: bookings,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "route_optimization_job"),
		today: func() kernel.ServiceDate {
			return kernel.NewServiceDate(time.Now())
		},
	}
}

// Start schedules the job to run daily at 06:00.
func (j *RouteOptimizationJob) Start() error {
	_, err := j.cron.AddFunc(routeOptimizationSchedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Route optimization job started (running daily at 06:00)")
	return nil
}

// Stop stops the route optimization job.
func (j *RouteOptimizationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Route optimization job stopped")
}

// Run optimizes every driver with stops scheduled for today.
func (j *RouteOptimizationJob) Run(ctx context.Context) {
	date := j.today()

	drivers, err := j.bookings.GetDriversWithStops(ctx, date)
	if err != nil {
		j.logger.ErrorContext(ctx, "Route optimization job could not list drivers",
			"date", date.String(), "error", err)
		return
	}

	for _, driverID := range drivers {
		j.optimizeDriver(ctx, driverID, date)
	}
}

func (j *RouteOptimizationJob) optimizeDriver(ctx context.Context, driverID kernel.UUID, date kernel.ServiceDate) {
	cmd, err := commands.NewOptimizeRouteCommand(driverID, date)
	if err != nil {
		j.logger.ErrorContext(ctx, "Route optimization job built an invalid command",
			"driver_id", driverID.String(), "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		// An unreachable routing service is an expected operational state,
		// not a system fault. The morning order simply stays as dispatched.
		if errors.Is(err, ports.ErrRouteServiceUnavailable) {
			j.logger.WarnContext(ctx, "Route optimization skipped, routing service unavailable",
				"driver_id", driverID.String(), "date", date.String(), "error", err)
			return
		}
		j.logger.ErrorContext(ctx, "Route optimization failed",
			"driver_id", driverID.String(), "date", date.String(), "error", err)
		return
	}

	if len(result.FailedIDs) > 0 {
		j.logger.WarnContext(ctx, "Route optimization left some stops unordered",
			"driver_id", driverID.String(), "updated", result.UpdatedCount,
			"failed", len(result.FailedIDs))
		return
	}

	j.logger.InfoContext(ctx, "Route optimized",
		"driver_id", driverID.String(), "date", date.String(),
		"updated", result.UpdatedCount)
}
