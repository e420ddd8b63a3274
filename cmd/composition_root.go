package cmd

import (
	"log/slog"

	httpin "haulaway/internal/adapters/in/http"
	"haulaway/internal/adapters/out/postgres"
	"haulaway/internal/core/application/usecases/commands"
	"haulaway/internal/core/application/usecases/queries"
	"haulaway/internal/core/domain/model/catalog"
	"haulaway/internal/core/domain/services"
	"haulaway/internal/core/ports"
	"haulaway/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	calculator services.QuoteCalculator
	optimizer  ports.RouteOptimizer
	notifier   ports.Notifier
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	cat *catalog.Catalog,
	optimizer ports.RouteOptimizer,
	notifier ports.Notifier,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		calculator: services.NewQuoteCalculator(cat, logger),
		optimizer:  optimizer,
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	return commands.NewCreateBookingCommandHandler(c.bookingUoWFactory(), c.calculator)
}

func (c *CompositionRoot) CreateChangeBookingStatusCommandHandler() commands.ChangeBookingStatusCommandHandler {
	return commands.NewChangeBookingStatusCommandHandler(c.bookingUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.bookingUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateReorderRouteCommandHandler() commands.ReorderRouteCommandHandler {
	return commands.NewReorderRouteCommandHandler(c.bookingUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateOptimizeRouteCommandHandler() commands.OptimizeRouteCommandHandler {
	return commands.NewOptimizeRouteCommandHandler(c.bookingUoWFactory(), c.optimizer, c.logger)
}

func (c *CompositionRoot) CreateAssignVehicleCommandHandler() commands.AssignVehicleCommandHandler {
	return commands.NewAssignVehicleCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateRemoveVehicleAssignmentCommandHandler() commands.RemoveVehicleAssignmentCommandHandler {
	return commands.NewRemoveVehicleAssignmentCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateGetDriverBookingsQueryHandler() queries.GetDriverBookingsQueryHandler {
	return queries.NewGetDriverBookingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverLoadStatsQueryHandler() queries.GetDriverLoadStatsQueryHandler {
	return queries.NewGetDriverLoadStatsQueryHandler(c.gormDB)
}

// NewHTTPServer assembles the inbound HTTP adapter over all use cases.
func (c *CompositionRoot) NewHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.calculator,
		c.CreateCreateBookingCommandHandler(),
		c.CreateChangeBookingStatusCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateReorderRouteCommandHandler(),
		c.CreateOptimizeRouteCommandHandler(),
		c.CreateAssignVehicleCommandHandler(),
		c.CreateRemoveVehicleAssignmentCommandHandler(),
		c.CreateGetDriverBookingsQueryHandler(),
		c.CreateGetDriverLoadStatsQueryHandler(),
	)
}

// NewJobManager assembles the background jobs. The job reads through a
// repository bound to the base connection, outside any transaction.
func (c *CompositionRoot) NewJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateOptimizeRouteCommandHandler(),
		c.uowFactory.Create().BookingRepository(),
		c.logger,
	)
}

func (c *CompositionRoot) bookingUoWFactory() commands.BookingUoWFactory {
	return FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vehicleUoWFactory() commands.VehicleUoWFactory {
	return FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}
