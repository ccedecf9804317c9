// Package errs provides standardized error types for the ordering application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a value lies outside allowed bounds
//   - ObjectNotFoundError: for when an object cannot be found
//   - NotificationDeliveryError: for when a notification cannot be delivered
//
// Each error type follows a consistent pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel for errors.Is classification
//
// The HTTP layer classifies errors via the sentinels: required/invalid/
// out-of-range map to 400 responses, not-found maps to 404, and notification
// delivery failures are logged only.
package errs
