package commands

import (
	"context"

	"haulaway/internal/core/domain/model/booking"
	"haulaway/internal/core/domain/services"
)

// CreateBookingCommandHandler handles booking creation. Every submission is
// re-priced through the quote engine against the live catalog, so the stored
// price snapshot never contains a client-supplied number.
type CreateBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	calculator services.QuoteCalculator
}

// NewCreateBookingCommandHandler creates a handler for booking creation.
func NewCreateBookingCommandHandler(
	uowFactory BookingUoWFactory,
	calculator services.QuoteCalculator,
) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle re-prices the request, builds the pending booking, and persists it.
func (h CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	quote := h.calculator.Calculate(services.QuoteInput{
		Area:        cmd.Area(),
		Items:       cmd.Items(),
		NeedLadder:  cmd.NeedLadder(),
		LadderType:  cmd.LadderType(),
		LadderHours: cmd.LadderHours(),
	})

	newBooking, err := booking.NewBooking(
		cmd.BookingID(),
		cmd.Date(),
		cmd.TimeSlot(),
		cmd.Area(),
		quote.Items,
		cmd.Customer(),
		booking.PriceSnapshot{
			ItemsTotal:       quote.ItemsTotal,
			CrewSize:         quote.CrewSize,
			CrewPrice:        quote.CrewPrice,
			NeedLadder:       cmd.NeedLadder(),
			LadderType:       cmd.LadderType(),
			LadderHours:      cmd.LadderHours(),
			LadderPrice:      quote.LadderPrice,
			TotalPrice:       quote.TotalPrice,
			EstimateMin:      quote.EstimateMin,
			EstimateMax:      quote.EstimateMax,
			TotalLoadingCube: quote.TotalLoadingCube,
		},
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BookingRepository().Add(ctx, newBooking); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
