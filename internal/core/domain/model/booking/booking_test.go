package booking_test

import (
	"testing"
	"time"

	"haulaway/internal/core/domain/model/booking"
	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPricing() booking.PriceSnapshot {
	return booking.PriceSnapshot{
		ItemsTotal:       150000,
		CrewSize:         1,
		CrewPrice:        100000,
		TotalPrice:       250000,
		EstimateMin:      250000,
		EstimateMax:      280000,
		TotalLoadingCube: 1.2,
	}
}

func validCustomer() booking.CustomerInfo {
	return booking.CustomerInfo{
		Name:    "김민수",
		Phone:   "010-1234-5678",
		Address: "서울 강남구 테헤란로 1",
	}
}

func validItems(t *testing.T) []booking.LineItem {
	t.Helper()
	item, err := booking.NewLineItem("가구", "소파", "소파", 1, 150000, 1.2, true)
	require.NoError(t, err)
	return []booking.LineItem{item}
}

func newTestBooking(t *testing.T) *booking.Booking {
	t.Helper()
	date, err := kernel.ServiceDateFromString("2026-09-15")
	require.NoError(t, err)

	b, err := booking.NewBooking(
		kernel.NewUUID(), date, "오전", "강남구",
		validItems(t), validCustomer(), validPricing(),
	)
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("starts pending and unassigned", func(t *testing.T) {
		b := newTestBooking(t)

		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Nil(t, b.DriverID())
		assert.Nil(t, b.RouteOrder())
		assert.NoError(t, b.Validate())
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		date, _ := kernel.ServiceDateFromString("2026-09-15")

		_, err := booking.NewBooking(
			kernel.NewUUID(), date, "오전", "강남구",
			nil, validCustomer(), validPricing(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects inverted estimate range", func(t *testing.T) {
		pricing := validPricing()
		pricing.EstimateMin = pricing.EstimateMax + 10000
		date, _ := kernel.ServiceDateFromString("2026-09-15")

		_, err := booking.NewBooking(
			kernel.NewUUID(), date, "오전", "강남구",
			validItems(t), validCustomer(), pricing,
		)

		require.Error(t, err)
	})

	t.Run("zero value fails Validate", func(t *testing.T) {
		var b booking.Booking

		assert.ErrorIs(t, b.Validate(), booking.ErrBookingIsNotConstructed)
	})
}

func TestBooking_TransitionByDriver(t *testing.T) {
	driverID := kernel.NewUUID()

	prepare := func(t *testing.T) *booking.Booking {
		b := newTestBooking(t)
		require.NoError(t, b.TransitionTo(booking.ActorOperator, booking.StatusQuoteConfirmed))
		require.NoError(t, b.AssignDriver(driverID, "박기사"))
		return b
	}

	t.Run("owner walks the driver path", func(t *testing.T) {
		b := prepare(t)

		require.NoError(t, b.TransitionByDriver(driverID, booking.StatusInProgress))
		assert.Equal(t, booking.StatusInProgress, b.Status())

		require.NoError(t, b.TransitionByDriver(driverID, booking.StatusCompleted))
		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("other driver is rejected as non-owner", func(t *testing.T) {
		b := prepare(t)

		err := b.TransitionByDriver(kernel.NewUUID(), booking.StatusInProgress)

		require.ErrorIs(t, err, booking.ErrNotBookingOwner)
		assert.Equal(t, booking.StatusQuoteConfirmed, b.Status())
	})

	t.Run("wrong target is a conflict, not a no-op success", func(t *testing.T) {
		b := prepare(t)

		err := b.TransitionByDriver(driverID, booking.StatusCompleted)

		require.ErrorIs(t, err, errs.ErrVersionConflict)
		assert.Equal(t, booking.StatusQuoteConfirmed, b.Status())
	})

	t.Run("unassigned booking rejects any driver", func(t *testing.T) {
		b := newTestBooking(t)
		require.NoError(t, b.TransitionTo(booking.ActorOperator, booking.StatusQuoteConfirmed))

		err := b.TransitionByDriver(driverID, booking.StatusInProgress)

		require.ErrorIs(t, err, booking.ErrNotBookingOwner)
	})
}

func TestBooking_AssignDriver(t *testing.T) {
	t.Run("assignment does not change status", func(t *testing.T) {
		b := newTestBooking(t)
		before := b.Status()

		require.NoError(t, b.AssignDriver(kernel.NewUUID(), "박기사"))

		assert.Equal(t, before, b.Status())
		assert.Equal(t, "박기사", b.DriverName())
	})

	t.Run("terminal bookings cannot be assigned", func(t *testing.T) {
		b := newTestBooking(t)
		require.NoError(t, b.TransitionTo(booking.ActorCustomer, booking.StatusCancelled))

		err := b.AssignDriver(kernel.NewUUID(), "박기사")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unassign clears driver and route order", func(t *testing.T) {
		b := newTestBooking(t)
		require.NoError(t, b.AssignDriver(kernel.NewUUID(), "박기사"))
		require.NoError(t, b.SetRouteOrder(3))

		b.Unassign()

		assert.Nil(t, b.DriverID())
		assert.Empty(t, b.DriverName())
		assert.Nil(t, b.RouteOrder())
	})
}

func TestBooking_SetRouteOrder(t *testing.T) {
	t.Run("requires an assigned driver", func(t *testing.T) {
		b := newTestBooking(t)

		err := b.SetRouteOrder(1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("positions start at one", func(t *testing.T) {
		b := newTestBooking(t)
		require.NoError(t, b.AssignDriver(kernel.NewUUID(), "박기사"))

		require.ErrorIs(t, b.SetRouteOrder(0), errs.ErrValueIsOutOfRange)

		require.NoError(t, b.SetRouteOrder(2))
		require.NotNil(t, b.RouteOrder())
		assert.Equal(t, 2, *b.RouteOrder())
	})
}

func TestBooking_AdjustFinalPrice(t *testing.T) {
	t.Run("admin may adjust", func(t *testing.T) {
		b := newTestBooking(t)

		require.NoError(t, b.AdjustFinalPrice(booking.ActorAdmin, 300000))

		require.NotNil(t, b.FinalPrice())
		assert.Equal(t, 300000, *b.FinalPrice())
	})

	t.Run("operator may not", func(t *testing.T) {
		b := newTestBooking(t)

		err := b.AdjustFinalPrice(booking.ActorOperator, 300000)

		require.ErrorIs(t, err, booking.ErrActorNotPermitted)
		assert.Nil(t, b.FinalPrice())
	})
}

func TestBooking_Restore(t *testing.T) {
	t.Run("round trips through restore params", func(t *testing.T) {
		original := newTestBooking(t)
		require.NoError(t, original.TransitionTo(booking.ActorOperator, booking.StatusQuoteConfirmed))
		driverID := kernel.NewUUID()
		require.NoError(t, original.AssignDriver(driverID, "박기사"))

		restored, err := booking.RestoreBooking(booking.RestoreBookingParams{
			ID:         original.ID(),
			Date:       original.Date(),
			TimeSlot:   original.TimeSlot(),
			Area:       original.Area(),
			Items:      original.Items(),
			Customer:   original.Customer(),
			Pricing:    original.Pricing(),
			Status:     original.Status(),
			DriverID:   original.DriverID(),
			DriverName: original.DriverName(),
			CreatedAt:  original.CreatedAt(),
			UpdatedAt:  original.UpdatedAt(),
		})

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, booking.StatusQuoteConfirmed, restored.Status())
		assert.True(t, restored.IsOwnedBy(driverID))
	})

	t.Run("rejects invalid persisted status", func(t *testing.T) {
		date, _ := kernel.ServiceDateFromString("2026-09-15")

		_, err := booking.RestoreBooking(booking.RestoreBookingParams{
			ID:        kernel.NewUUID(),
			Date:      date,
			Pricing:   validPricing(),
			Status:    booking.StatusUnknown,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})

		require.Error(t, err)
	})
}

func TestLineItem(t *testing.T) {
	t.Run("computes subtotal and loading cube", func(t *testing.T) {
		item, err := booking.NewLineItem("가구", "의자", "의자", 4, 20000, 0.3, true)

		require.NoError(t, err)
		assert.Equal(t, 80000, item.Subtotal())
		assert.InDelta(t, 1.2, item.LoadingCube(), 1e-9)
	})

	t.Run("bounds quantity", func(t *testing.T) {
		_, err := booking.NewLineItem("가구", "의자", "", 0, 20000, 0.3, true)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = booking.NewLineItem("가구", "의자", "", 101, 20000, 0.3, true)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
