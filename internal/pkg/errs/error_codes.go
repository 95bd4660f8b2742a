/*
Package errs provides custom error types and application-level error code constants.

These codes identify specific business or system failures both inside the
server and in responses to clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body is not valid JSON.
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates trailing content after the JSON document.
	ErrExtraContentInBody = 1004

	// ErrRateLimitExceeded indicates that the request rate exceeded the configured limit.
	ErrRateLimitExceeded = 1005
)

// 2xxx: Matchmaking and Messaging Business Logic Errors
const (
	// ErrEmptyMessage indicates a send attempt with empty or whitespace-only text.
	ErrEmptyMessage = 2101

	// ErrNotMatched indicates a send attempt by a user who has no active partner.
	ErrNotMatched = 2102
)

// 3xxx: Authentication Errors
const (
	// ErrMissingAuthToken indicates the Authorization header is absent or malformed.
	ErrMissingAuthToken = 3001

	// ErrInvalidAuthToken indicates the presented bearer token does not match.
	ErrInvalidAuthToken = 3002
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified internal server error.
	ErrUnknown = 5000

	// ErrProfileStoreFailed indicates a profile directory read or write failed.
	ErrProfileStoreFailed = 5001
)
