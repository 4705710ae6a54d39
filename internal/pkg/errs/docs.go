// Package errs provides the standardized error taxonomy for the freight
// back-office. Callers classify failures with errors.Is against the sentinel
// errors and render distinguishable messages for each class.
//
// The taxonomy follows the user-facing outcomes of the system:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     validation failures, resolved locally and reported inline
//   - ObjectNotFoundError: an id or scanned tracking code resolved to nothing
//   - ConflictError: the operation contradicts current state (parcel already
//     assigned elsewhere, forbidden status transition, stale version token)
//   - TransientError: network or server failure, retryable by the user
//   - NoTariffConfiguredError: pricing configuration gap blocking an operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict)
//   - A struct type carrying the error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for classification
//
// NotFound and Conflict are deliberately separate classes: scan-to-assign
// renders "not found" and "already assigned" as different states, and the
// distinction must survive every layer.
package errs
