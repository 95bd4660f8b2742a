/*
Package errs provides custom error types and application-level error code constants.

This file maps every error code to its CustomError template, standardizing
the HTTP status and client-facing message per code.
*/
package errs

import "net/http"

// errorMap holds the CustomError template for every application error code.
// A zero Status defaults to 400 Bad Request when the error is constructed.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters."},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format."},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format."},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data."},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Matchmaking and Messaging Business Logic Errors
	ErrEmptyMessage: {Code: ErrEmptyMessage, Message: "Empty message"},
	ErrNotMatched:   {Code: ErrNotMatched, Message: "You are not matched"},

	// 3xxx: Authentication Errors
	ErrMissingAuthToken: {Code: ErrMissingAuthToken, Message: "Missing or invalid Authorization header", Status: http.StatusUnauthorized},
	ErrInvalidAuthToken: {Code: ErrInvalidAuthToken, Message: "Invalid token", Status: http.StatusForbidden},

	// 5xxx: Internal System Errors
	ErrUnknown:            {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrProfileStoreFailed: {Code: ErrProfileStoreFailed, Message: "Profile service is unavailable. Please try again later.", Status: http.StatusInternalServerError},
}
