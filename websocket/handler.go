// Package websocket file: websocket/handler.go
package websocket

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"ticket-office/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// same-origin page; the session cookie already gated the route
		return true
	},
}

// Serve upgrades the request and keeps the connection registered until the
// page closes it. The first clock message goes out immediately so a fresh
// dashboard does not sit blank for up to a minute.
func (h *Hub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn.Printf("Serve: upgrade failed: %v", err)
		return
	}

	// the greeting must go out before the hub knows the connection; once
	// registered, the broadcaster owns all writes on it
	if msg := clockPayload(time.Now()); msg != nil {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			_ = conn.Close()
			return
		}
	}
	h.add(conn)

	// read loop only to notice the close; the page never sends data
	go func() {
		defer h.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
