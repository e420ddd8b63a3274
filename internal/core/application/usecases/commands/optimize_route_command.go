package commands

import (
	"errors"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/pkg/guard"
)

var ErrOptimizeRouteCommandIsNotConstructed = errors.New(
	"OptimizeRouteCommand must be created via NewOptimizeRouteCommand constructor",
)

// OptimizeRouteCommand reorders one driver's day by travel efficiency using
// the external routing service.
type OptimizeRouteCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	date     kernel.ServiceDate

	guard guard.ConstructorGuard
}

// NewOptimizeRouteCommand validates and creates an optimization command.
func NewOptimizeRouteCommand(driverID kernel.UUID, date kernel.ServiceDate) (OptimizeRouteCommand, error) {
	cmd := OptimizeRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(driverID.Validate(), date.Validate()); err != nil {
		return OptimizeRouteCommand{}, err
	}
	cmd.driverID = driverID
	cmd.date = date

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OptimizeRouteCommand) Validate() error {
	return c.guard.Validate(ErrOptimizeRouteCommandIsNotConstructed)
}

// DriverID returns the driver whose day is being optimized.
func (c OptimizeRouteCommand) DriverID() kernel.UUID { return c.driverID }

// Date returns the service day.
func (c OptimizeRouteCommand) Date() kernel.ServiceDate { return c.date }
