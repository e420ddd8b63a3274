package booking

import (
	"errors"
	"fmt"
	"math"
	"time"

	"haulaway/internal/core/domain/model/kernel"
	"haulaway/internal/pkg/errs"
	"haulaway/internal/pkg/guard"
)

var (
	// ErrBookingIsNotConstructed is returned when a Booking was not created
	// through NewBooking or RestoreBooking.
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking or RestoreBooking")

	// ErrNotBookingOwner is returned when a driver acts on a booking that is
	// assigned to somebody else (or to nobody).
	ErrNotBookingOwner = errors.New("booking is not assigned to this driver")

	// ErrActorNotPermitted is returned when a role attempts an action outside
	// its permission set, such as an operator adjusting a price.
	ErrActorNotPermitted = errors.New("actor is not permitted to perform this action")
)

// CustomerInfo groups the contact fields of a booking.
type CustomerInfo struct {
	Name          string
	Phone         string
	Address       string
	AddressDetail string
	Memo          string
}

// Validate requires name, phone and address.
func (c CustomerInfo) Validate() error {
	if c.Name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if c.Phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if c.Address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	return nil
}

// PriceSnapshot is the monetary outcome captured when the booking was priced.
// It is a snapshot of the catalog at that moment, not a live reference.
type PriceSnapshot struct {
	ItemsTotal       int
	CrewSize         int
	CrewPrice        int
	NeedLadder       bool
	LadderType       string
	LadderHours      int
	LadderPrice      int
	TotalPrice       int
	EstimateMin      int
	EstimateMax      int
	TotalLoadingCube float64
}

// Validate enforces the snapshot invariants, most importantly
// EstimateMin <= EstimateMax.
func (p PriceSnapshot) Validate() error {
	if p.TotalPrice < 0 || p.ItemsTotal < 0 || p.CrewPrice < 0 || p.LadderPrice < 0 {
		return errs.NewValueIsInvalidError("priceSnapshot")
	}
	if p.CrewSize < 1 {
		return errs.NewValueIsInvalidErrorWithCause("crewSize",
			fmt.Errorf("%d is less than 1", p.CrewSize))
	}
	if p.EstimateMin > p.EstimateMax {
		return errs.NewValueIsInvalidErrorWithCause("estimateRange",
			fmt.Errorf("min %d exceeds max %d", p.EstimateMin, p.EstimateMax))
	}
	return nil
}

// Booking is the aggregate root of a pickup request. It is created once from
// a customer submission, then mutated only through the lifecycle methods
// below: status moves along the actor-parameterized transition graph, and
// dispatch fields (driver, route order) change without ever touching status
// as a side effect.
type Booking struct {
	id       kernel.UUID
	date     kernel.ServiceDate
	timeSlot string
	area     string
	items    []LineItem
	customer CustomerInfo
	pricing  PriceSnapshot
	status   Status

	finalPrice *int
	driverID   *kernel.UUID
	driverName string
	routeOrder *int

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewBooking creates a pending booking from a customer submission. The price
// snapshot must come from the quote engine; callers never pass client-supplied
// monetary values here.
func NewBooking(
	id kernel.UUID,
	date kernel.ServiceDate,
	timeSlot string,
	area string,
	items []LineItem,
	customer CustomerInfo,
	pricing PriceSnapshot,
) (*Booking, error) {
	if err := errors.Join(
		id.Validate(),
		date.Validate(),
		customer.Validate(),
		pricing.Validate(),
	); err != nil {
		return nil, err
	}
	if area == "" {
		return nil, errs.NewValueIsRequiredError("area")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	now := time.Now().UTC()
	b := &Booking{
		id:        id,
		date:      date,
		timeSlot:  timeSlot,
		area:      area,
		items:     append([]LineItem(nil), items...),
		customer:  customer,
		pricing:   pricing,
		status:    StatusPending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}
	return b, nil
}

// RestoreBookingParams carries the persisted state needed to rehydrate a Booking.
type RestoreBookingParams struct {
	ID         kernel.UUID
	Date       kernel.ServiceDate
	TimeSlot   string
	Area       string
	Items      []LineItem
	Customer   CustomerInfo
	Pricing    PriceSnapshot
	Status     Status
	FinalPrice *int
	DriverID   *kernel.UUID
	DriverName string
	RouteOrder *int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// RestoreBooking rehydrates a Booking from persistence without re-running
// creation-time rules, but still rejecting structurally invalid state.
func RestoreBooking(p RestoreBookingParams) (*Booking, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.Date.Validate(),
		p.Status.Validate(),
		p.Pricing.Validate(),
	); err != nil {
		return nil, err
	}
	if p.DriverID != nil {
		if err := p.DriverID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Booking{
		id:         p.ID,
		date:       p.Date,
		timeSlot:   p.TimeSlot,
		area:       p.Area,
		items:      append([]LineItem(nil), p.Items...),
		customer:   p.Customer,
		pricing:    p.Pricing,
		status:     p.Status,
		finalPrice: p.FinalPrice,
		driverID:   p.DriverID,
		driverName: p.DriverName,
		routeOrder: p.RouteOrder,
		createdAt:  p.CreatedAt,
		updatedAt:  p.UpdatedAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Booking was created through a constructor.
func (b *Booking) Validate() error {
	if b == nil {
		return ErrBookingIsNotConstructed
	}
	return b.guard.Validate(ErrBookingIsNotConstructed)
}

// IsEqual compares bookings by identity.
func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the booking identifier.
func (b *Booking) ID() kernel.UUID { return b.id }

// Date returns the scheduled pickup day.
func (b *Booking) Date() kernel.ServiceDate { return b.date }

// TimeSlot returns the requested time window label.
func (b *Booking) TimeSlot() string { return b.timeSlot }

// Area returns the service zone name.
func (b *Booking) Area() string { return b.area }

// Items returns a copy of the priced line items.
func (b *Booking) Items() []LineItem { return append([]LineItem(nil), b.items...) }

// Customer returns the contact fields.
func (b *Booking) Customer() CustomerInfo { return b.customer }

// Pricing returns the price snapshot captured at creation.
func (b *Booking) Pricing() PriceSnapshot { return b.pricing }

// Status returns the current lifecycle state.
func (b *Booking) Status() Status { return b.status }

// FinalPrice returns the admin-adjusted price, or nil.
func (b *Booking) FinalPrice() *int { return b.finalPrice }

// DriverID returns the assigned driver's identity, or nil.
func (b *Booking) DriverID() *kernel.UUID { return b.driverID }

// DriverName returns the assigned driver's display name.
func (b *Booking) DriverName() string { return b.driverName }

// RouteOrder returns the stop sequence position within the driver's day, or nil.
func (b *Booking) RouteOrder() *int { return b.routeOrder }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last mutation timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// IsOwnedBy reports whether the booking is assigned to the given driver.
func (b *Booking) IsOwnedBy(driverID kernel.UUID) bool {
	return b.driverID != nil && b.driverID.IsEqual(driverID)
}

// TransitionTo moves the booking along a legal edge for the acting role.
// Illegal edges are reported as version conflicts; terminal states have no
// outgoing edges for any role.
func (b *Booking) TransitionTo(actor Actor, target Status) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := b.status.CanTransition(actor, target); err != nil {
		return err
	}

	b.status = target
	b.touch()
	return nil
}

// TransitionByDriver enforces the driver protocol: the caller must own the
// booking, and the target must be the single legal driver successor of the
// current status.
func (b *Booking) TransitionByDriver(driverID kernel.UUID, target Status) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if !b.IsOwnedBy(driverID) {
		return ErrNotBookingOwner
	}

	successor, err := b.status.DriverSuccessor()
	if err != nil {
		return err
	}
	if successor != target {
		return errs.NewVersionConflictErrorWithCause("status", b.status.String(),
			fmt.Errorf("driver may only move %s to %s, not %s", b.status, successor, target))
	}

	b.status = target
	b.touch()
	return nil
}

// AssignDriver sets the dispatch fields. It never changes status: assignment
// and lifecycle are independent axes.
func (b *Booking) AssignDriver(driverID kernel.UUID, driverName string) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if driverName == "" {
		return errs.NewValueIsRequiredError("driverName")
	}
	if b.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("cannot assign a driver to a %s booking", b.status))
	}

	b.driverID = &driverID
	b.driverName = driverName
	b.touch()
	return nil
}

// Unassign clears the dispatch fields, including the route order.
func (b *Booking) Unassign() {
	b.driverID = nil
	b.driverName = ""
	b.routeOrder = nil
	b.touch()
}

// SetRouteOrder places the booking at the given position in the assigned
// driver's stop sequence. Positions start at 1.
func (b *Booking) SetRouteOrder(order int) error {
	if b.driverID == nil {
		return errs.NewValueIsInvalidErrorWithCause("routeOrder",
			errors.New("booking has no assigned driver"))
	}
	if order < 1 {
		return errs.NewValueIsOutOfRangeError("routeOrder", order, 1, math.MaxInt)
	}

	b.routeOrder = &order
	b.touch()
	return nil
}

// AdjustFinalPrice records the billed price. Restricted to roles with
// price-change permission.
func (b *Booking) AdjustFinalPrice(actor Actor, price int) error {
	if !actor.CanAdjustPrice() {
		return ErrActorNotPermitted
	}
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("finalPrice",
			fmt.Errorf("%d is negative", price))
	}

	b.finalPrice = &price
	b.touch()
	return nil
}

func (b *Booking) touch() {
	b.updatedAt = time.Now().UTC()
}
