/*
Package handler provides the HTTP handlers and routing for the PuchMatch server.

This file defines the Router: middleware (CORS, request ID, logging,
recovery), per-IP rate limits on the write-heavy routes, the shared
bearer-token guard, and the canonical /mcp route table fronting the engine.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"puchmatch/internal/pkg/auth"
	"puchmatch/internal/pkg/limiter"
	"puchmatch/internal/pkg/logx"
	"puchmatch/internal/pkg/resp"
)

const (
	JoinRate  = 0.2
	JoinBurst = 5
	SendRate  = 1
	SendBurst = 10
)

// Router builds the application's routing table. Engine operations are
// exposed once, under /mcp; there is deliberately no second unprefixed copy
// of these routes.
func Router(deps *AppDeps) http.Handler {
	joinLimiter := limiter.NewIPRateLimiter(rate.Limit(JoinRate), JoinBurst)
	sendLimiter := limiter.NewIPRateLimiter(rate.Limit(SendRate), SendBurst)

	r := chi.NewRouter()

	allowedOrigins := make(map[string]struct{})
	for _, origin := range deps.Config.AllowedOrigins {
		allowedOrigins[origin] = struct{}{}
	}

	wsUpgrader := websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			if deps.Config.Environment == "development" {
				return true
			}

			origin := r.Header.Get("Origin")
			if _, ok := allowedOrigins[origin]; ok {
				return true
			}

			logx.Warn("WebSocket connection rejected: Origin not allowed.", "origin", origin)
			return false
		},
	}

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "PuchMatch Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Group(func(g chi.Router) {
		g.Use(auth.BearerTokenMiddleware(deps.Config.AuthToken))

		g.Post("/validate", func(w http.ResponseWriter, r *http.Request) {
			if deps.Config.OwnerPhone == "" {
				resp.RespondSuccess(w, r, map[string]string{
					"phone_number": "UNKNOWN",
					"message":      "Set OWNER_PHONE env var to your phone",
				})
				return
			}
			resp.RespondSuccess(w, r, map[string]string{
				"phone_number": deps.Config.OwnerPhone,
			})
		})

		g.Route("/mcp", func(mcp chi.Router) {
			mcp.With(joinLimiter.Middleware).Post("/join_chat", HandleJoinChat(deps))
			mcp.With(sendLimiter.Middleware).Post("/send_message", HandleSendMessage(deps))
			mcp.Get("/get_messages", HandleGetMessages(deps))
			mcp.Post("/skip", HandleSkip(deps))
			mcp.Post("/leave", HandleLeave(deps))
			mcp.Get("/status", HandleStatus(deps))

			mcp.Post("/profile", HandleUpdateProfile(deps))
			mcp.Get("/suggestions", HandleSuggestions(deps))
		})

		g.Get("/ws", HandleInboxSocket(wsUpgrader, deps))
	})

	return r
}
