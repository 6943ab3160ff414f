// Package websocket pushes the dashboard's live clock to connected pages.
// File: websocket/hub.go
package websocket

import (
	"sync"

	"github.com/gorilla/websocket"

	"ticket-office/logger"
)

// Hub tracks connected dashboard pages and fans messages out to them.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

// NewHub builds an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]bool)}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = true
	count := len(h.conns)
	h.mu.Unlock()
	logger.Debug.Printf("add: dashboard connected (%d active)", count)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	count := len(h.conns)
	h.mu.Unlock()
	_ = conn.Close()
	logger.Debug.Printf("remove: dashboard disconnected (%d active)", count)
}

// Count returns the number of connected pages.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast writes a message to every connected page. Connections that
// fail to take the write are dropped.
func (h *Hub) Broadcast(message []byte) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn.Printf("Broadcast: dropping connection %v: %v", conn.RemoteAddr(), err)
			h.remove(conn)
		}
	}
}
