// Package errs provides the standardized error taxonomy for the haulaway backend.
//
// Each error category follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound) used with errors.Is
//   - A struct type carrying error details and an optional Cause
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() to reach the sentinel
//
// The taxonomy matters operationally: ErrVersionConflict separates concurrent
// modification (caller must re-fetch and retry) from ErrObjectNotFound and from
// plain validation failures, so HTTP adapters can map them to 409, 404 and 400
// respectively instead of collapsing everything into a generic server error.
package errs
