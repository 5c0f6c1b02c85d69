package stream

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	logger "github.com/sirupsen/logrus"

	"fraudapi/src/model"
)

// Hub pushes newly appended prediction log entries to connected
// dashboard clients over WebSocket.
type Hub struct {
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Same open policy as the HTTP CORS surface.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// Handler upgrades the request and keeps the connection registered until
// the client goes away.
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.WithError(err).Warn("log stream upgrade failed")
			return
		}

		h.mu.Lock()
		h.conns[conn] = struct{}{}
		subscribers := len(h.conns)
		h.mu.Unlock()

		logger.WithField("subscribers", subscribers).Debug("log stream client connected")

		// Drain incoming frames to notice the close handshake.
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					h.drop(conn)
					return
				}
			}
		}()
	}
}

// Publish sends one entry to every subscriber. Dead connections are
// dropped; a write failure never affects the request that produced the
// entry.
func (h *Hub) Publish(entry model.PredictionLog) {
	payload, err := json.Marshal(entry)
	if err != nil {
		logger.WithError(err).Error("failed to encode log stream entry")
		return
	}

	// Writes stay under the lock: gorilla connections do not support
	// concurrent writers.
	h.mu.Lock()
	var dead []*websocket.Conn
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			dead = append(dead, conn)
		}
	}
	for _, conn := range dead {
		delete(h.conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range dead {
		_ = conn.Close()
	}
}

// Subscribers returns the current connection count.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	_, present := h.conns[conn]
	delete(h.conns, conn)
	h.mu.Unlock()

	if present {
		_ = conn.Close()
	}
}
