package handler

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInboxSocketDeliversMail(t *testing.T) {
	deps, _ := newTestDeps()
	deps.Engine.Join("A", "")
	deps.Engine.Join("B", "")

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(HandleInboxSocket(upgrader, deps))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?user_id=A"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	_, customErr := deps.Engine.SendMessage("B", "over the wire")
	require.Nil(t, customErr)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var batch inboxBatch
	require.NoError(t, conn.ReadJSON(&batch))

	require.Len(t, batch.Messages, 1)
	assert.Equal(t, "B", batch.Messages[0].From)
	assert.Equal(t, "over the wire", batch.Messages[0].Text)

	// The socket delivery was the one delivery; a direct drain finds nothing.
	assert.Empty(t, deps.Engine.GetMessages("A"))
}

func TestInboxSocketDeliversPendingMailOnConnect(t *testing.T) {
	deps, _ := newTestDeps()
	deps.Engine.Join("A", "")
	deps.Engine.Join("B", "")

	_, customErr := deps.Engine.SendMessage("B", "sent before connect")
	require.Nil(t, customErr)

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(HandleInboxSocket(upgrader, deps))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?user_id=A"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	defer conn.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var batch inboxBatch
	require.NoError(t, conn.ReadJSON(&batch))

	require.Len(t, batch.Messages, 1)
	assert.Equal(t, "sent before connect", batch.Messages[0].Text)
}

func TestInboxSocketRequiresUserID(t *testing.T) {
	deps, _ := newTestDeps()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(HandleInboxSocket(upgrader, deps))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	if resp != nil {
		defer resp.Body.Close()
		assert.Equal(t, 400, resp.StatusCode)
	}
}
