/*
Package errs provides custom error types and application-level error code constants.

This file defines CustomError, which implements the error interface and
carries a business code, a client-facing message, and an HTTP status so the
response layer can report failures uniformly.
*/
package errs

import (
	"fmt"
	"net/http"
	"strings"

	"puchmatch/internal/pkg/logx"
)

// CustomError is the error type used across the application.
type CustomError struct {
	// Code is the business error code (see error_codes.go).
	Code int

	// Message is the client-facing error description.
	Message string

	// Status is the HTTP status code reported alongside this error.
	Status int
}

// Error implements the error interface.
func (e CustomError) Error() string {
	return fmt.Sprintf("Error Code %d (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// NewError builds a *CustomError from a predefined code. Optional details are
// applied printf-style when the template message contains placeholders.
// An unknown code falls back to ErrUnknown.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]

	if !ok {
		logx.Error(
			fmt.Errorf("attempted to create an error with a code missing from errorMap"),
			"Unknown error code requested",
			"requested_code", code,
		)

		unknownErr := errorMap[ErrUnknown]
		return &CustomError{
			Code:    unknownErr.Code,
			Message: unknownErr.Message,
			Status:  unknownErr.Status,
		}
	}

	customErr := templateErr

	if customErr.Status == 0 {
		customErr.Status = http.StatusBadRequest
	}

	if code == ErrUnknown && len(details) > 0 {
		if originalErr, ok := details[0].(error); ok {
			logx.Error(originalErr, "Handling ErrUnknown with underlying error")
		}
	} else if len(details) > 0 {
		if strings.Contains(customErr.Message, "%") {
			customErr.Message = fmt.Sprintf(customErr.Message, details...)
		} else {
			logx.Warn("Details provided for error, but message template has no formatting placeholders. Details ignored.")
		}
	}

	return &customErr
}
