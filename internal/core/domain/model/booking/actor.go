package booking

import (
	"fmt"

	"haulaway/internal/pkg/errs"
)

// Actor is the role attempting an operation on a booking. Transition
// authority and destructive-action permissions differ per role.
type Actor int

const (
	// ActorUnknown catches uninitialized Actor values.
	ActorUnknown Actor = iota

	// ActorCustomer acts through the public surface and may only accept a
	// quote, request a change, or cancel. Never sets internal statuses.
	ActorCustomer

	// ActorDriver executes pickups. May only start and complete bookings
	// that are assigned to them.
	ActorDriver

	// ActorOperator runs day-to-day dispatch. Excluded from destructive
	// actions: payment confirmation, price adjustment, deletion.
	ActorOperator

	// ActorAdmin may perform every operation.
	ActorAdmin
)

func actorStrings() map[Actor]string {
	return map[Actor]string{
		ActorUnknown:  "unknown",
		ActorCustomer: "customer",
		ActorDriver:   "driver",
		ActorOperator: "operator",
		ActorAdmin:    "admin",
	}
}

// String returns the role name.
func (a Actor) String() string {
	if s, ok := actorStrings()[a]; ok {
		return s
	}
	return "unknown"
}

// ActorFromString parses a role name.
func ActorFromString(s string) (Actor, error) {
	for actor, str := range actorStrings() {
		if str == s && actor != ActorUnknown {
			return actor, nil
		}
	}
	return ActorUnknown, errs.NewValueIsInvalidErrorWithCause("actor",
		fmt.Errorf("%q is not a valid actor", s))
}

// Validate reports whether the Actor is one of the defined roles.
func (a Actor) Validate() error {
	if a == ActorUnknown {
		return errs.NewValueIsInvalidErrorWithCause("actor",
			fmt.Errorf("%d is not a valid actor", int(a)))
	}
	if _, ok := actorStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("actor",
			fmt.Errorf("%d is not a valid actor", int(a)))
	}
	return nil
}

// CanAdjustPrice reports whether the role may set a booking's final price.
func (a Actor) CanAdjustPrice() bool {
	return a == ActorAdmin
}

// CanConfirmPayment reports whether the role may confirm payment completion.
func (a Actor) CanConfirmPayment() bool {
	return a == ActorAdmin
}
