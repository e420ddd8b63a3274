// Package booking contains the Booking aggregate and its lifecycle state
// machine. The aggregate owns all mutations of a pickup request: statuses
// move only along the actor-parameterized transition graph, dispatch fields
// (driver, route order) change without side effects on status, and monetary
// fields are snapshots produced by the quote engine, never raw client input.
package booking
