/*
Package handler provides the HTTP handlers and routing for the PuchMatch server.

This file holds the profile-directory endpoints: updating a user's stored
interests and fetching ranked partner suggestions. Both run outside the
engine and never influence pairing.
*/
package handler

import (
	"net/http"
	"strings"

	"puchmatch/internal/app/profile"
	"puchmatch/internal/pkg/errs"
	"puchmatch/internal/pkg/logx"
	"puchmatch/internal/pkg/req"
	"puchmatch/internal/pkg/resp"
)

type UpdateProfileInput struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name,omitempty"`
	Interests string `json:"interests,omitempty"`
}

// HandleUpdateProfile upserts the caller's profile row (display name and
// comma-separated interests).
func HandleUpdateProfile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input UpdateProfileInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		userID := strings.TrimSpace(input.UserID)
		if userID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		p := profile.Profile{
			UserID:    userID,
			Name:      strings.TrimSpace(input.Name),
			Interests: strings.TrimSpace(input.Interests),
		}

		if err := deps.Profiles.Upsert(r.Context(), p); err != nil {
			logx.Error(err, "Profile upsert failed", "user_id", userID)
			resp.RespondError(w, r, errs.NewError(errs.ErrProfileStoreFailed))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"profile": p,
		})
	}
}

// HandleSuggestions returns partner candidates ranked by shared interests.
func HandleSuggestions(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
		if userID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		candidates, err := deps.Profiles.FindCandidates(r.Context(), userID)
		if err != nil {
			logx.Error(err, "Candidate lookup failed", "user_id", userID)
			resp.RespondError(w, r, errs.NewError(errs.ErrProfileStoreFailed))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"candidates": candidates,
		})
	}
}
