// Package errs provides standardized error types for the freight marketplace.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: a load, offer or message cannot be found
//   - UnauthorizedError: role or ownership mismatch
//   - IllegalTransitionError: a load status change outside the state machine
//   - ConflictError: a lost race or a uniqueness violation
//   - PreconditionFailedError: an operation not allowed in the current state
//   - VersionIsInvalidError: a stale optimistic-lock version
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is classifies the kind
//
// Domain packages declare rule-specific errors on top of these kinds, so a caller
// can match either the exact rule or the broad category.
package errs
