package ports

import (
	"context"
	"errors"

	"haulaway/internal/core/domain/model/kernel"
)

// ErrRouteServiceUnavailable is returned when the external routing service is
// unreachable, times out, or answers with a malformed response. Callers must
// treat it as "feature unavailable": no booking may be mutated on this error.
var ErrRouteServiceUnavailable = errors.New("route optimization service unavailable")

// RouteStop is one pickup location submitted for route optimization.
type RouteStop struct {
	BookingID kernel.UUID
	Area      string
	Address   string
}

// RouteOptimizer calls the external route/ETA service to reorder stops by
// travel efficiency.
//
// Optimize returns the booking ids in optimized visiting order. It must
// return ErrRouteServiceUnavailable (possibly wrapped) on transport failures
// and on responses that do not contain exactly the submitted stops.
type RouteOptimizer interface {
	Optimize(ctx context.Context, stops []RouteStop) ([]kernel.UUID, error)
}
