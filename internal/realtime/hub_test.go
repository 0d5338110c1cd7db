package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func dial(t *testing.T, hub *Hub, userID uuid.UUID) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(r.Context(), userID, conn)
	}))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestHub_PublishReachesRecipientOnly(t *testing.T) {
	hub, _ := newTestHub(t)
	alice := uuid.New()
	bob := uuid.New()

	aliceConn := dial(t, hub, alice)
	bobConn := dial(t, hub, bob)

	require.Eventually(t, func() bool {
		return hub.ConnectionCount(alice) == 1 && hub.ConnectionCount(bob) == 1
	}, time.Second, 10*time.Millisecond)

	hub.Publish(alice, "notification", map[string]string{"kind": "follow"})

	require.NoError(t, aliceConn.SetReadDeadline(time.Now().Add(time.Second)))
	_, payload, err := aliceConn.ReadMessage()
	require.NoError(t, err)

	var envelope struct {
		Type string            `json:"type"`
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(payload, &envelope))
	assert.Equal(t, "notification", envelope.Type)
	assert.Equal(t, "follow", envelope.Data["kind"])

	require.NoError(t, bobConn.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err = bobConn.ReadMessage()
	assert.Error(t, err)
}

func TestHub_UnregistersOnClientClose(t *testing.T) {
	hub, _ := newTestHub(t)
	userID := uuid.New()

	conn := dial(t, hub, userID)
	require.Eventually(t, func() bool { return hub.ConnectionCount(userID) == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return hub.ConnectionCount(userID) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_PublishWithoutConnectionsIsNoop(t *testing.T) {
	hub, _ := newTestHub(t)

	assert.NotPanics(t, func() {
		hub.Publish(uuid.New(), "notification", nil)
	})
}

func TestHub_ShutdownClosesConnections(t *testing.T) {
	hub, cancel := newTestHub(t)
	userID := uuid.New()

	conn := dial(t, hub, userID)
	require.Eventually(t, func() bool { return hub.ConnectionCount(userID) == 1 }, time.Second, 10*time.Millisecond)

	cancel()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
	assert.Eventually(t, func() bool { return hub.ConnectionCount(userID) == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_ObserveConnections(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	var total atomic.Int64
	hub.ObserveConnections(func(n int) { total.Store(int64(n)) })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	first := dial(t, hub, uuid.New())
	dial(t, hub, uuid.New())
	require.Eventually(t, func() bool { return total.Load() == 2 }, time.Second, 10*time.Millisecond)

	require.NoError(t, first.Close())
	assert.Eventually(t, func() bool { return total.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
}
