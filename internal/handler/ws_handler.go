/*
Package handler provides the HTTP handlers and routing for the PuchMatch server.

This file upgrades an inbox-watch request to a WebSocket. The socket is a
push channel only: whenever the engine signals new mail for the user, the
handler drains the inbox through GetMessages and writes the batch to the
socket, so a socket delivery counts as the one delivery each message gets.
*/
package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"puchmatch/internal/app/match"
	"puchmatch/internal/pkg/errs"
	"puchmatch/internal/pkg/logx"
	"puchmatch/internal/pkg/resp"
)

const (
	// timeout for a single write to the socket.
	wsWriteWait = 10 * time.Second

	// maximum wait for a Pong before the connection is considered dead.
	wsPongWait = 60 * time.Second

	// how often the server pings the client.
	wsPingPeriod = (wsPongWait * 9) / 10

	// inbound frames carry no payload the server uses; keep the limit small.
	wsMaxInboundSize = 512
)

// inboxBatch is the frame pushed to the client for each inbox drain.
type inboxBatch struct {
	Messages []match.Message `json:"messages"`
}

// HandleInboxSocket upgrades the connection and streams inbox drains to the
// identified user until the client disconnects, the watcher is replaced by a
// newer connection, or the engine shuts down.
func HandleInboxSocket(upgrader websocket.Upgrader, deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
		if userID == "" {
			logx.Warn("WebSocket request rejected: missing user_id")
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logx.Error(err, "Failed to upgrade connection to WebSocket", "user_id", userID)
			return
		}
		defer conn.Close()

		watch, cancel := deps.Engine.Watch(userID)
		defer cancel()

		logx.Info("Inbox socket established", "user_id", userID)

		// Reader goroutine: the client sends nothing meaningful, but reads
		// must run to process Pong frames and detect disconnects.
		go func() {
			conn.SetReadLimit(wsMaxInboundSize)
			if err := conn.SetReadDeadline(time.Now().Add(wsPongWait)); err != nil {
				cancel()
				return
			}
			conn.SetPongHandler(func(string) error {
				return conn.SetReadDeadline(time.Now().Add(wsPongWait))
			})
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					cancel()
					return
				}
			}
		}()

		ticker := time.NewTicker(wsPingPeriod)
		defer ticker.Stop()

		for {
			select {
			case _, ok := <-watch:
				if !ok {
					// Watcher cancelled: client gone, replaced, or shutdown.
					deadline := time.Now().Add(wsWriteWait)
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
					logx.Info("Inbox socket closed", "user_id", userID)
					return
				}

				messages := deps.Engine.GetMessages(userID)
				if len(messages) == 0 {
					continue
				}

				if err := conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(inboxBatch{Messages: messages}); err != nil {
					logx.Warn("Inbox socket write failed", "user_id", userID, "error", err)
					return
				}

			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}
}
