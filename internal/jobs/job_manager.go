package jobs

import (
	"fmt"
	"log/slog"

	"haulaway/internal/core/application/usecases/commands"
	"haulaway/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	routeOptimizationJob *RouteOptimizationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	optimizeHandler commands.OptimizeRouteCommandHandler,
	bookings ports.BookingRepository,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		routeOptimizationJob: NewRouteOptimizationJob(optimizeHandler, bookings, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.routeOptimizationJob.Start(); err != nil {
		return fmt.Errorf("failed to start route optimization job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.routeOptimizationJob.Stop()
}
