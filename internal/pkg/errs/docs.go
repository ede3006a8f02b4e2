// Package errs provides standardized error types for the orderdesk application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model, the use cases and the adapters.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value breaks a business rule
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Domain packages wrap these generic kinds together with their own sentinels
// (for example order.ErrInvalidLineItem), so callers can match either with errors.Is.
package errs
