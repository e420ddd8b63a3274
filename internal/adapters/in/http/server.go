package http

import (
	"errors"
	"net/http"

	"haulaway/internal/core/application/usecases/commands"
	"haulaway/internal/core/application/usecases/queries"
	"haulaway/internal/core/domain/model/booking"
	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/core/domain/services"
	"haulaway/internal/core/ports"
	"haulaway/internal/generated/servers"
	"haulaway/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// driverIdentityHeader carries the authenticated driver id set by the edge
// proxy. Token verification happens upstream; this service trusts the header.
const driverIdentityHeader = "X-Driver-Id"

// Server implements the generated ServerInterface.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	calculator services.QuoteCalculator

	// Command handlers
	createBookingHandler commands.CreateBookingCommandHandler
	changeStatusHandler  commands.ChangeBookingStatusCommandHandler
	assignDriverHandler  commands.AssignDriverCommandHandler
	reorderRouteHandler  commands.ReorderRouteCommandHandler
	optimizeRouteHandler commands.OptimizeRouteCommandHandler
	assignVehicleHandler commands.AssignVehicleCommandHandler
	removeVehicleHandler commands.RemoveVehicleAssignmentCommandHandler

	// Query handlers
	driverBookingsHandler queries.GetDriverBookingsQueryHandler
	loadStatsHandler      queries.GetDriverLoadStatsQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(
	calculator services.QuoteCalculator,
	createBookingHandler commands.CreateBookingCommandHandler,
	changeStatusHandler commands.ChangeBookingStatusCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	reorderRouteHandler commands.ReorderRouteCommandHandler,
	optimizeRouteHandler commands.OptimizeRouteCommandHandler,
	assignVehicleHandler commands.AssignVehicleCommandHandler,
	removeVehicleHandler commands.RemoveVehicleAssignmentCommandHandler,
	driverBookingsHandler queries.GetDriverBookingsQueryHandler,
	loadStatsHandler queries.GetDriverLoadStatsQueryHandler,
) *Server {
	return &Server{
		calculator:            calculator,
		createBookingHandler:  createBookingHandler,
		changeStatusHandler:   changeStatusHandler,
		assignDriverHandler:   assignDriverHandler,
		reorderRouteHandler:   reorderRouteHandler,
		optimizeRouteHandler:  optimizeRouteHandler,
		assignVehicleHandler:  assignVehicleHandler,
		removeVehicleHandler:  removeVehicleHandler,
		driverBookingsHandler: driverBookingsHandler,
		loadStatsHandler:      loadStatsHandler,
	}
}

// CreateQuote handles POST /api/v1/quotes - calculates a price quote.
func (s *Server) CreateQuote(ctx echo.Context) error {
	var req servers.QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	input, err := quoteInputFromRequest(req)
	if err != nil {
		return badRequest(ctx, "Invalid quote request: "+err.Error())
	}

	result := s.calculator.Calculate(input)

	return ctx.JSON(http.StatusOK, quoteResultToResponse(result))
}

// CreateBooking handles POST /api/v1/bookings - creates a pending booking.
// Prices are always recomputed server-side; client-submitted monetary values
// never reach the aggregate.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var req servers.NewBooking
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	input, err := quoteInputFromRequest(servers.QuoteRequest{
		Area:        req.Area,
		Items:       req.Items,
		NeedLadder:  req.NeedLadder,
		LadderType:  req.LadderType,
		LadderHours: req.LadderHours,
	})
	if err != nil {
		return badRequest(ctx, "Invalid booking request: "+err.Error())
	}

	customer := booking.CustomerInfo{
		Name:          req.Customer.Name,
		Phone:         req.Customer.Phone,
		Address:       req.Customer.Address,
		AddressDetail: deref(req.Customer.AddressDetail),
		Memo:          deref(req.Customer.Memo),
	}

	bookingID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(
		bookingID,
		kernel.NewServiceDate(req.Date.Time),
		deref(req.TimeSlot),
		req.Area,
		input.Items,
		input.NeedLadder,
		input.LadderType,
		input.LadderHours,
		customer,
	)
	if err != nil {
		return badRequest(ctx, "Invalid booking data: "+err.Error())
	}

	if handleErr := s.createBookingHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to create booking")
	}

	// The quote engine is deterministic, so recalculating here returns the
	// same numbers that were snapshotted into the persisted booking.
	quote := s.calculator.Calculate(input)

	return ctx.JSON(http.StatusCreated, servers.BookingCreated{
		Id:          bookingID.Bytes(),
		Status:      booking.StatusPending.String(),
		TotalPrice:  quote.TotalPrice,
		EstimateMin: quote.EstimateMin,
		EstimateMax: quote.EstimateMax,
	})
}

// UpdateDriverBookingStatus handles PUT /api/v1/driver/bookings/{bookingId}/status.
// Driver identity comes from the X-Driver-Id header; the write is a
// compare-and-swap, so a concurrent change surfaces as 409.
func (s *Server) UpdateDriverBookingStatus(ctx echo.Context, bookingId openapi_types.UUID) error {
	driverID, err := driverIdentity(ctx)
	if err != nil {
		return badRequest(ctx, "Driver identity required: "+err.Error())
	}

	var req servers.StatusUpdate
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := booking.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status: "+req.Status)
	}

	bookingKernelID, err := kernel.UUIDFromBytes(bookingId[:])
	if err != nil {
		return badRequest(ctx, "Invalid booking id")
	}

	cmd, err := commands.NewChangeBookingStatusCommand(bookingKernelID, booking.ActorDriver, target, &driverID)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if handleErr := s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to change booking status")
	}

	return ctx.NoContent(http.StatusOK)
}

// AssignDriver handles POST /api/v1/dispatch/assign - batch driver assignment.
func (s *Server) AssignDriver(ctx echo.Context) error {
	var req servers.AssignRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	bookingIDs := make([]kernel.UUID, 0, len(req.BookingIds))
	for _, id := range req.BookingIds {
		kernelID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return badRequest(ctx, "Invalid booking id in batch")
		}
		bookingIDs = append(bookingIDs, kernelID)
	}

	driverID, err := kernel.UUIDFromBytes(req.DriverId[:])
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewAssignDriverCommand(bookingIDs, driverID, req.DriverName)
	if err != nil {
		return badRequest(ctx, "Invalid assignment: "+err.Error())
	}

	if handleErr := s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		var batchErr *commands.BatchAssignError
		if errors.As(handleErr, &batchErr) {
			return ctx.JSON(http.StatusConflict, servers.BatchFailure{
				Code:      http.StatusConflict,
				Message:   "Batch assignment failed and was rolled back",
				FailedIds: toAPIUUIDs(batchErr.FailedIDs()),
			})
		}
		return domainError(ctx, handleErr, "Failed to assign driver")
	}

	return ctx.JSON(http.StatusOK, servers.AssignResult{
		AssignedIds: req.BookingIds,
	})
}

// UpdateRouteOrder handles PUT /api/v1/dispatch/route-order. Partial failure
// is a result, not an error: failed ids come back for caller-driven retry.
func (s *Server) UpdateRouteOrder(ctx echo.Context) error {
	var req servers.RouteOrderUpdate
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if len(req.Entries) > 50 {
		return badRequest(ctx, "Too many route order entries, at most 50 per request")
	}

	entries := make([]commands.RouteOrderEntry, 0, len(req.Entries))
	for _, entry := range req.Entries {
		bookingID, err := kernel.UUIDFromBytes(entry.BookingId[:])
		if err != nil {
			return badRequest(ctx, "Invalid booking id in entries")
		}
		entries = append(entries, commands.RouteOrderEntry{
			BookingID:  bookingID,
			RouteOrder: entry.RouteOrder,
		})
	}

	cmd, err := commands.NewReorderRouteCommand(entries)
	if err != nil {
		return badRequest(ctx, "Invalid route order: "+err.Error())
	}

	result, handleErr := s.reorderRouteHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return domainError(ctx, handleErr, "Failed to update route order")
	}

	return ctx.JSON(http.StatusOK, routeUpdateToResponse(result.UpdatedCount, result.FailedIDs))
}

// OptimizeRoute handles POST /api/v1/dispatch/optimize. When the routing
// service is unavailable nothing was mutated and the caller gets 503.
func (s *Server) OptimizeRoute(ctx echo.Context) error {
	var req servers.OptimizeRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromBytes(req.DriverId[:])
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	cmd, err := commands.NewOptimizeRouteCommand(driverID, kernel.NewServiceDate(req.Date.Time))
	if err != nil {
		return badRequest(ctx, "Invalid optimization request: "+err.Error())
	}

	result, handleErr := s.optimizeRouteHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		if errors.Is(handleErr, ports.ErrRouteServiceUnavailable) {
			return ctx.JSON(http.StatusServiceUnavailable, servers.Error{
				Code:    http.StatusServiceUnavailable,
				Message: "Route optimization service unavailable, no bookings changed",
			})
		}
		return domainError(ctx, handleErr, "Failed to optimize route")
	}

	return ctx.JSON(http.StatusOK, routeUpdateToResponse(result.UpdatedCount, result.FailedIDs))
}

// GetDriverBookings handles GET /api/v1/drivers/{driverId}/bookings.
func (s *Server) GetDriverBookings(ctx echo.Context, driverId openapi_types.UUID, params servers.GetDriverBookingsParams) error {
	driverID, err := kernel.UUIDFromBytes(driverId[:])
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	query, err := queries.NewGetDriverBookingsQuery(driverID, kernel.NewServiceDate(params.Date.Time))
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	stops, err := s.driverBookingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve driver bookings")
	}

	response := make([]servers.DriverBooking, len(stops))
	for i, stop := range stops {
		response[i] = servers.DriverBooking{
			Id:               stop.ID.Bytes(),
			TimeSlot:         stop.TimeSlot,
			Area:             stop.Area,
			Address:          stop.Address,
			AddressDetail:    optString(stop.AddressDetail),
			CustomerName:     stop.CustomerName,
			Phone:            stop.Phone,
			Status:           stop.Status,
			RouteOrder:       stop.RouteOrder,
			TotalPrice:       stop.TotalPrice,
			TotalLoadingCube: stop.TotalLoadingCube,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDriverLoadStats handles GET /api/v1/dispatch/load-stats.
func (s *Server) GetDriverLoadStats(ctx echo.Context, params servers.GetDriverLoadStatsParams) error {
	query, err := queries.NewGetDriverLoadStatsQuery(kernel.NewServiceDate(params.Date.Time))
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	stats, err := s.loadStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve load statistics")
	}

	response := make([]servers.DriverLoadStat, len(stats))
	for i, stat := range stats {
		response[i] = servers.DriverLoadStat{
			DriverId:         stat.DriverID.Bytes(),
			DriverName:       stat.DriverName,
			StopCount:        stat.StopCount,
			TotalLoadingCube: stat.TotalLoadingCube,
			RequiredCrew:     stat.RequiredCrew,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateVehicleAssignment handles POST /api/v1/vehicle-assignments.
func (s *Server) CreateVehicleAssignment(ctx echo.Context) error {
	var req servers.NewVehicleAssignment
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromBytes(req.DriverId[:])
	if err != nil {
		return badRequest(ctx, "Invalid driver id")
	}

	assignmentID := kernel.NewUUID()
	cmd, err := commands.NewAssignVehicleCommand(assignmentID, driverID, req.VehicleId, kernel.NewServiceDate(req.Date.Time))
	if err != nil {
		return badRequest(ctx, "Invalid vehicle assignment: "+err.Error())
	}

	if handleErr := s.assignVehicleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrValueIsInvalid) {
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    http.StatusConflict,
				Message: "Driver or vehicle already assigned for that day",
			})
		}
		return domainError(ctx, handleErr, "Failed to create vehicle assignment")
	}

	return ctx.JSON(http.StatusCreated, servers.VehicleAssignmentCreated{
		Id: assignmentID.Bytes(),
	})
}

// DeleteVehicleAssignment handles DELETE /api/v1/vehicle-assignments/{assignmentId}.
func (s *Server) DeleteVehicleAssignment(ctx echo.Context, assignmentId openapi_types.UUID) error {
	kernelID, err := kernel.UUIDFromBytes(assignmentId[:])
	if err != nil {
		return badRequest(ctx, "Invalid assignment id")
	}

	cmd, err := commands.NewRemoveVehicleAssignmentCommand(kernelID)
	if err != nil {
		return badRequest(ctx, "Invalid request: "+err.Error())
	}

	if handleErr := s.removeVehicleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to remove vehicle assignment")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// driverIdentity reads the authenticated driver id from the request headers.
func driverIdentity(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(driverIdentityHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(driverIdentityHeader)
	}
	return kernel.UUIDFromString(raw)
}

// domainError maps domain error classes to HTTP statuses. Anything
// unclassified is a 500 with the given fallback message.
func domainError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Not found",
		})
	case errors.Is(err, booking.ErrNotBookingOwner),
		errors.Is(err, booking.ErrActorNotPermitted):
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: "Not permitted",
		})
	case errors.Is(err, errs.ErrVersionConflict):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Conflicting concurrent change, re-fetch and retry",
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return internalError(ctx, fallback)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// quoteInputFromRequest validates request-level schema constraints and builds
// the engine input. Catalog-level checks (unknown items, unknown areas) are
// the engine's business and degrade instead of failing.
func quoteInputFromRequest(req servers.QuoteRequest) (services.QuoteInput, error) {
	if req.Area == "" {
		return services.QuoteInput{}, errs.NewValueIsRequiredError("area")
	}
	if len(req.Items) == 0 {
		return services.QuoteInput{}, errs.NewValueIsRequiredError("items")
	}

	items := make([]services.QuoteItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Name == "" {
			return services.QuoteInput{}, errs.NewValueIsRequiredError("item name")
		}
		if item.Quantity < 1 || item.Quantity > 100 {
			return services.QuoteInput{}, errs.NewValueIsOutOfRangeError("quantity", item.Quantity, 1, 100)
		}
		items = append(items, services.QuoteItem{
			Category: deref(item.Category),
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	ladderHours := deref(req.LadderHours)
	if ladderHours < 0 || ladderHours > commands.MaxLadderHours {
		return services.QuoteInput{}, errs.NewValueIsOutOfRangeError("ladderHours", ladderHours, 0, commands.MaxLadderHours)
	}

	return services.QuoteInput{
		Area:        req.Area,
		Items:       items,
		NeedLadder:  deref(req.NeedLadder),
		LadderType:  deref(req.LadderType),
		LadderHours: ladderHours,
	}, nil
}

func quoteResultToResponse(result services.QuoteResult) servers.QuoteResult {
	breakdown := make([]servers.QuoteBreakdownRow, len(result.Breakdown))
	for i, row := range result.Breakdown {
		breakdown[i] = servers.QuoteBreakdownRow{
			Name:      row.Name,
			Quantity:  row.Quantity,
			UnitPrice: row.UnitPrice,
			Subtotal:  row.Subtotal,
		}
	}
	return servers.QuoteResult{
		ItemsTotal:       result.ItemsTotal,
		CrewSize:         result.CrewSize,
		CrewPrice:        result.CrewPrice,
		LadderPrice:      result.LadderPrice,
		TotalPrice:       result.TotalPrice,
		EstimateMin:      result.EstimateMin,
		EstimateMax:      result.EstimateMax,
		TotalLoadingCube: result.TotalLoadingCube,
		Breakdown:        breakdown,
	}
}

func routeUpdateToResponse(updated int, failed []kernel.UUID) servers.RouteUpdateResult {
	response := servers.RouteUpdateResult{UpdatedCount: updated}
	if len(failed) > 0 {
		ids := toAPIUUIDs(failed)
		response.FailedIds = &ids
	}
	return response
}

func toAPIUUIDs(ids []kernel.UUID) []openapi_types.UUID {
	out := make([]openapi_types.UUID, len(ids))
	for i, id := range ids {
		out[i] = id.Bytes()
	}
	return out
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
