package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/core/ports"
	"haulaway/internal/pkg/batch"
)

// ErrBatchAssignFailed reports an assignment batch where at least one booking
// could not be assigned. The batch is all-or-nothing: by the time this error
// is returned, every booking that had been assigned has been compensated back
// to unassigned.
var ErrBatchAssignFailed = errors.New("batch assignment failed")

// BatchAssignError carries the per-booking failures of a settled batch.
type BatchAssignError struct {
	Failures []batch.Failure[kernel.UUID]
}

func (e *BatchAssignError) Error() string {
	ids := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		ids = append(ids, f.Key.String())
	}
	return fmt.Sprintf("%s: %s", ErrBatchAssignFailed, strings.Join(ids, ", "))
}

func (e *BatchAssignError) Unwrap() error {
	return ErrBatchAssignFailed
}

// FailedIDs returns the bookings that could not be assigned.
func (e *BatchAssignError) FailedIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(e.Failures))
	for _, f := range e.Failures {
		ids = append(ids, f.Key)
	}
	return ids
}

// AssignDriverCommandHandler assigns a driver to a batch of bookings with
// all-or-nothing semantics. Every row is attempted regardless of sibling
// failures (settle-all); on any failure the succeeded rows are compensated
// back to unassigned.
//
// The fan-out runs over the base connection: each row write is conditionally
// guarded in SQL, and a shared gorm transaction must not cross goroutines.
type AssignDriverCommandHandler struct {
	uowFactory BookingUoWFactory
	logger     *slog.Logger
}

// NewAssignDriverCommandHandler creates a handler for batch assignment.
func NewAssignDriverCommandHandler(uowFactory BookingUoWFactory, logger *slog.Logger) AssignDriverCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "assign_driver"),
	}
}

// Handle runs the batch. On partial failure it compensates and returns a
// *BatchAssignError wrapping ErrBatchAssignFailed.
func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	repo := h.uowFactory.Create().BookingRepository()

	result := batch.RunIndependent(ctx, cmd.BookingIDs(), func(ctx context.Context, id kernel.UUID) error {
		return repo.UpdateAssignment(ctx, id, cmd.DriverID(), cmd.DriverName())
	})
	if result.AllSucceeded() {
		return nil
	}

	h.compensate(ctx, repo, result.Succeeded)

	return &BatchAssignError{Failures: result.Failed}
}

// compensate unassigns the rows that made it through before the batch was
// declared failed. ClearAssignment is idempotent; rows that cannot be
// compensated are logged for manual follow-up rather than retried forever.
func (h AssignDriverCommandHandler) compensate(ctx context.Context, repo ports.BookingRepository, succeeded []kernel.UUID) {
	rollback := batch.RunIndependent(ctx, succeeded, func(ctx context.Context, id kernel.UUID) error {
		return repo.ClearAssignment(ctx, id)
	})

	for _, f := range rollback.Failed {
		h.logger.Error("assignment compensation failed, booking left assigned",
			"bookingId", f.Key.String(),
			"error", f.Err)
	}
}
