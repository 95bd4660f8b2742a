/*
Package handler provides the HTTP handlers and routing for the PuchMatch server.

This file binds the matchmaking engine's six operations to their endpoints.
Each handler is a thin translation layer: bind input, call one atomic engine
operation, write the envelope. No matchmaking logic lives here.
*/
package handler

import (
	"net/http"
	"strings"

	"puchmatch/internal/pkg/errs"
	"puchmatch/internal/pkg/req"
	"puchmatch/internal/pkg/resp"
)

type JoinChatInput struct {
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname,omitempty"`
}

// HandleJoinChat enters the caller into matchmaking: pairing with the
// longest-waiting user, or queueing them when nobody is available.
func HandleJoinChat(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input JoinChatInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		userID := strings.TrimSpace(input.UserID)
		if userID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		result := deps.Engine.Join(userID, strings.TrimSpace(input.Nickname))
		resp.RespondSuccess(w, r, result)
	}
}

type SendMessageInput struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

// HandleSendMessage relays a text message to the caller's current partner.
func HandleSendMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input SendMessageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		userID := strings.TrimSpace(input.UserID)
		if userID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		result, customErr := deps.Engine.SendMessage(userID, input.Text)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, result)
	}
}

// HandleGetMessages drains and returns the caller's pending messages.
func HandleGetMessages(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
		if userID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		messages := deps.Engine.GetMessages(userID)
		resp.RespondSuccess(w, r, map[string]any{
			"messages": messages,
		})
	}
}

type SimpleUserInput struct {
	UserID string `json:"user_id"`
}

// HandleSkip abandons the caller's current pair and retries matchmaking.
func HandleSkip(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input SimpleUserInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		userID := strings.TrimSpace(input.UserID)
		if userID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		result := deps.Engine.Skip(userID)
		resp.RespondSuccess(w, r, result)
	}
}

// HandleLeave removes the caller from matchmaking entirely.
func HandleLeave(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input SimpleUserInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		userID := strings.TrimSpace(input.UserID)
		if userID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		result := deps.Engine.Leave(userID)
		resp.RespondSuccess(w, r, result)
	}
}

// HandleStatus reports the caller's connection state. Read-only.
func HandleStatus(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
		if userID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		result := deps.Engine.Status(userID)
		resp.RespondSuccess(w, r, result)
	}
}
