/*
Package auth provides the static bearer-token middleware guarding the API.

Every caller presents the single shared service token in the Authorization
header; there are no per-user credentials because participants are anonymous.
*/
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"puchmatch/internal/pkg/errs"
	"puchmatch/internal/pkg/logx"
	"puchmatch/internal/pkg/resp"
)

// BearerTokenMiddleware rejects any request that does not carry
// "Authorization: Bearer <token>" with the configured service token.
// A missing or malformed header answers 401; a wrong token answers 403.
func BearerTokenMiddleware(token string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				resp.RespondError(w, r, errs.NewError(errs.ErrMissingAuthToken))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				resp.RespondError(w, r, errs.NewError(errs.ErrMissingAuthToken))
				return
			}

			// Constant-time comparison; the token is a long-lived shared secret.
			if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(token)) != 1 {
				logx.Warn("Request rejected: invalid bearer token", "path", r.URL.Path)
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidAuthToken))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
