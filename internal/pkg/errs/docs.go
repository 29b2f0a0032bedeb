// Package errs provides standardized error types for the fulfillment engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value falls outside its bounds
//   - ObjectNotFoundError: for when an object cannot be found
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for errors.Is classification
//
// Domain-specific failures (invalid workflow configuration, rejected status
// transitions, assignment conflicts) live next to the domain types that
// raise them; this package carries only the generic vocabulary.
package errs
