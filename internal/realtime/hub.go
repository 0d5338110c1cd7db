package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	sendBuffer = 16
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Conn is the part of *websocket.Conn the hub uses.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (messageType int, p []byte, err error)
	SetWriteDeadline(t time.Time) error
	SetReadDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

// Envelope is the frame pushed to clients.
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type client struct {
	userID uuid.UUID
	conn   Conn
	send   chan []byte
}

type delivery struct {
	userID  uuid.UUID
	payload []byte
}

// Hub fans notifications out to every open connection of their recipient.
// Delivery is best effort: a client whose buffer is full is dropped.
type Hub struct {
	logger *slog.Logger

	register   chan *client
	unregister chan *client
	deliver    chan delivery
	done       chan struct{}

	mu      sync.RWMutex
	clients map[uuid.UUID]map[*client]struct{}
	total   int

	observe func(total int)
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:     logger,
		register:   make(chan *client),
		unregister: make(chan *client),
		deliver:    make(chan delivery, 64),
		done:       make(chan struct{}),
		clients:    make(map[uuid.UUID]map[*client]struct{}),
	}
}

// ObserveConnections registers fn to receive the open connection count after
// every change. Call it before Run.
func (h *Hub) ObserveConnections(fn func(total int)) {
	h.observe = fn
}

func (h *Hub) notify(total int) {
	if h.observe != nil {
		h.observe(total)
	}
}

// Run owns the client set until ctx is cancelled, then closes every connection.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			close(h.done)
			return
		case c := <-h.register:
			h.mu.Lock()
			if h.clients[c.userID] == nil {
				h.clients[c.userID] = make(map[*client]struct{})
			}
			h.clients[c.userID][c] = struct{}{}
			h.total++
			total := h.total
			h.mu.Unlock()
			h.notify(total)
			h.logger.Debug("websocket client connected", "user_id", c.userID, "connections", h.ConnectionCount(c.userID))
		case c := <-h.unregister:
			h.remove(c)
		case d := <-h.deliver:
			h.mu.RLock()
			var stale []*client
			for c := range h.clients[d.userID] {
				select {
				case c.send <- d.payload:
				default:
					stale = append(stale, c)
				}
			}
			h.mu.RUnlock()
			for _, c := range stale {
				h.logger.Warn("dropping slow websocket client", "user_id", c.userID)
				h.remove(c)
			}
		}
	}
}

// Publish queues a message for userID. It never blocks the caller for long;
// when the hub is saturated the message is dropped and logged.
func (h *Hub) Publish(userID uuid.UUID, kind string, data interface{}) {
	payload, err := json.Marshal(Envelope{Type: kind, Data: data})
	if err != nil {
		h.logger.Error("failed to marshal websocket payload", "error", err, "type", kind)
		return
	}

	select {
	case h.deliver <- delivery{userID: userID, payload: payload}:
	default:
		h.logger.Warn("websocket hub saturated, dropping message", "user_id", userID, "type", kind)
	}
}

// Serve registers conn for userID and blocks until the connection closes.
func (h *Hub) Serve(ctx context.Context, userID uuid.UUID, conn Conn) {
	c := &client{userID: userID, conn: conn, send: make(chan []byte, sendBuffer)}

	select {
	case h.register <- c:
	case <-ctx.Done():
		conn.Close()
		return
	case <-h.done:
		conn.Close()
		return
	}

	stop := make(chan struct{})
	go h.writePump(c, stop)
	h.readPump(c)
	close(stop)

	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) ConnectionCount(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// readPump discards client frames; it exists to observe close and pong.
func (h *Hub) readPump(c *client) {
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client, stop <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.logger.Debug("websocket write failed", "user_id", c.userID, "error", err)
				c.conn.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.conn.Close()
				return
			}
		}
	}
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	set, ok := h.clients[c.userID]
	if !ok {
		h.mu.Unlock()
		return
	}
	if _, ok := set[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
	h.total--
	total := h.total
	close(c.send)
	c.conn.Close()
	h.mu.Unlock()

	h.notify(total)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for userID, set := range h.clients {
		for c := range set {
			close(c.send)
			c.conn.Close()
		}
		delete(h.clients, userID)
	}
	h.total = 0
}
