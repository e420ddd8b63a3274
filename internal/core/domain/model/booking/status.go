package booking

import (
	"fmt"

	"haulaway/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking. Transitions are
// parameterized by the acting role: the same edge may be legal for an
// operator and illegal for a driver or customer.
//
// Main path:
//
//	pending ──> quote_confirmed ──> in_progress ──> completed ──> payment_requested ──> payment_completed
//	    │              │
//	    │              ├──> user_confirmed (customer acceptance)
//	    └──────────────┴──> change_requested / cancelled / rejected
//
// cancelled, rejected and payment_completed are terminal: no role may move a
// booking out of them.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial state of a customer submission.
	StatusPending

	// StatusQuoteConfirmed means an operator confirmed the computed quote.
	StatusQuoteConfirmed

	// StatusUserConfirmed means the customer accepted the confirmed quote.
	StatusUserConfirmed

	// StatusChangeRequested means the customer asked to modify the request.
	StatusChangeRequested

	// StatusInProgress means the assigned driver started the pickup.
	StatusInProgress

	// StatusCompleted means the driver finished the pickup.
	StatusCompleted

	// StatusPaymentRequested means a payment request was issued to the customer.
	StatusPaymentRequested

	// StatusPaymentCompleted is terminal: payment was confirmed.
	StatusPaymentCompleted

	// StatusCancelled is terminal: the customer or an operator cancelled.
	StatusCancelled

	// StatusRejected is terminal: an operator declined the request.
	StatusRejected
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "unknown",
		StatusPending:          "pending",
		StatusQuoteConfirmed:   "quote_confirmed",
		StatusUserConfirmed:    "user_confirmed",
		StatusChangeRequested:  "change_requested",
		StatusInProgress:       "in_progress",
		StatusCompleted:        "completed",
		StatusPaymentRequested: "payment_requested",
		StatusPaymentCompleted: "payment_completed",
		StatusCancelled:        "cancelled",
		StatusRejected:         "rejected",
	}
}

// String returns the snake_case name used on the wire and in storage.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a stored/wire status name.
func StatusFromString(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate reports whether the Status is one of the defined states.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// TerminalStatuses lists the states with no outgoing transitions.
var TerminalStatuses = []Status{StatusCancelled, StatusRejected, StatusPaymentCompleted}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusRejected || s == StatusPaymentCompleted
}

// NotifiesCustomer reports whether entering this status has customer-visible
// meaning and should fire a notification after the state change commits.
func (s Status) NotifiesCustomer() bool {
	switch s {
	case StatusQuoteConfirmed, StatusInProgress, StatusCompleted,
		StatusPaymentRequested, StatusCancelled, StatusRejected:
		return true
	default:
		return false
	}
}

// operatorTransitions is the full operational graph. Admin inherits it and
// additionally confirms payments; operator is excluded from that destructive
// action (see Actor.CanConfirmPayment).
func operatorTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:         {StatusQuoteConfirmed, StatusRejected, StatusCancelled},
		StatusQuoteConfirmed:  {StatusInProgress, StatusChangeRequested, StatusRejected, StatusCancelled},
		StatusUserConfirmed:   {StatusInProgress},
		StatusChangeRequested: {StatusQuoteConfirmed},
		StatusInProgress:      {StatusCompleted},
		StatusCompleted:       {StatusPaymentRequested},
	}
}

func transitionsFor(actor Actor) map[Status][]Status {
	switch actor {
	case ActorDriver:
		return map[Status][]Status{
			StatusQuoteConfirmed: {StatusInProgress},
			StatusInProgress:     {StatusCompleted},
		}
	case ActorCustomer:
		return map[Status][]Status{
			StatusPending:        {StatusChangeRequested, StatusCancelled},
			StatusQuoteConfirmed: {StatusUserConfirmed, StatusChangeRequested, StatusCancelled},
		}
	case ActorOperator:
		return operatorTransitions()
	case ActorAdmin:
		graph := operatorTransitions()
		graph[StatusPaymentRequested] = []Status{StatusPaymentCompleted}
		return graph
	default:
		return nil
	}
}

// SuccessorsFor returns the statuses the given actor may move this status to.
func (s Status) SuccessorsFor(actor Actor) []Status {
	return transitionsFor(actor)[s]
}

// CanTransition checks whether actor may move a booking from s to target.
// Returns a version-conflict-classified error for illegal edges so callers
// can distinguish "the booking is no longer in the state you saw" from
// malformed input.
func (s Status) CanTransition(actor Actor, target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	for _, allowed := range s.SuccessorsFor(actor) {
		if allowed == target {
			return nil
		}
	}
	return errs.NewVersionConflictErrorWithCause("status", s.String(),
		fmt.Errorf("%s may not move %s to %s", actor, s, target))
}

// DriverSuccessor returns the single legal next status for a driver, or an
// error when the booking is not in a driver-actionable state. Drivers have
// a strictly linear path, so the successor is always unique.
func (s Status) DriverSuccessor() (Status, error) {
	successors := s.SuccessorsFor(ActorDriver)
	if len(successors) != 1 {
		return StatusUnknown, errs.NewVersionConflictErrorWithCause("status", s.String(),
			fmt.Errorf("no driver transition from %s", s))
	}
	return successors[0], nil
}
