// Package errs provides standardized error types for the packing service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model, the use cases and the HTTP adapter.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value breaks a domain rule (e.g. a non-positive dimension)
//   - ValueIsOutOfRangeError: For when a value falls outside an allowed interval (e.g. a coordinate)
//   - ObjectNotFoundError: For when an object cannot be found
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP adapter classifies failures through the sentinels, so any error built here
// maps to a stable status code regardless of how deep in the model it was raised.
package errs
