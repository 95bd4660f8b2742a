/*
Package req provides helpers for HTTP request parsing and data binding.

It binds JSON request bodies strictly (unknown fields and trailing content
are rejected) so malformed payloads surface as typed errors before any
business logic runs.
*/
package req

import (
	"encoding/json"
	"net/http"
	"strings"

	"puchmatch/internal/pkg/errs"
)

// BindJSON decodes the request body into dst. The Content-Type must be
// application/json and the body must contain exactly one JSON document with
// no unknown fields.
func BindJSON(r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrExtraContentInBody)
	}

	return nil
}
