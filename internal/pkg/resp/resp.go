/*
Package resp builds and sends standardized HTTP JSON responses.

Every response uses one envelope holding a business code, a message, and an
optional data payload, with wrappers for the success and error cases.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"puchmatch/internal/pkg/errs"
	"puchmatch/internal/pkg/logx"
)

// JSONResponse is the envelope returned to clients on every route.
type JSONResponse struct {
	// Code is the business status code (0 on success, see the errs package otherwise).
	Code int `json:"code"`

	// Message is the client-facing status description or error message.
	Message string `json:"message"`

	// Data is the optional response payload.
	Data any `json:"data,omitempty"`
}

// RespondJSON sets content-type headers and writes the payload as JSON.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.Error(err, "Error encoding JSON response", "http_status", httpStatus)

		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	w.Write(response)
}

// RespondSuccess sends an HTTP 200 envelope wrapping data.
func RespondSuccess(w http.ResponseWriter, r *http.Request, data any) {
	res := JSONResponse{
		Code:    0,
		Message: "success",
		Data:    data,
	}
	RespondJSON(w, r, http.StatusOK, res)
}

// RespondError sends the envelope for a CustomError using its HTTP status.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	res := JSONResponse{
		Code:    customErr.Code,
		Message: customErr.Message,
		Data:    nil,
	}
	RespondJSON(w, r, customErr.Status, res)
}
