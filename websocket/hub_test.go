// file: websocket/hub_test.go
package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialTestHub serves the hub on an httptest server and dials it.
func dialTestHub(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/clock", hub.Serve)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/clock"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestServeSendsClockImmediately(t *testing.T) {
	hub := NewHub()
	conn := dialTestHub(t, hub)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)

	var decoded clockMessage
	require.NoError(t, json.Unmarshal(msg, &decoded))
	assert.Equal(t, "clock", decoded.Type)
	assert.NotEmpty(t, decoded.Time)
}

func TestBroadcastReachesConnectedPages(t *testing.T) {
	hub := NewHub()
	conn := dialTestHub(t, hub)

	// drain the greeting frame first
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	require.NoError(t, err)

	hub.Broadcast([]byte(`{"type":"clock","time":"2026-09-01 12:00"}`))

	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(msg), "2026-09-01 12:00")
}

func TestRemoveOnClientClose(t *testing.T) {
	hub := NewHub()
	conn := dialTestHub(t, hub)

	require.Eventually(t, func() bool { return hub.Count() == 1 },
		2*time.Second, 10*time.Millisecond)

	_ = conn.Close()

	assert.Eventually(t, func() bool { return hub.Count() == 0 },
		2*time.Second, 10*time.Millisecond, "connection should be dropped after close")
}

func TestClockPayloadFormat(t *testing.T) {
	msg := clockPayload(time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC))

	var decoded clockMessage
	require.NoError(t, json.Unmarshal(msg, &decoded))
	assert.Equal(t, "clock", decoded.Type)
	assert.Equal(t, "2026-09-01 08:30", decoded.Time)
}

func TestConnectDuringBroadcastKeepsFramesIntact(t *testing.T) {
	hub := NewHub()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/clock", hub.Serve)
	server := httptest.NewServer(router)
	defer server.Close()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/clock"

	stop := make(chan struct{})
	go hub.RunClock(50*time.Microsecond, stop)
	defer close(stop)

	// pages connecting while the clock hammers Broadcast must still get
	// their greeting and subsequent ticks as well-formed frames
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
			if err != nil {
				t.Errorf("dial: %v", err)
				return
			}
			defer func() { _ = conn.Close() }()

			_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
			for n := 0; n < 3; n++ {
				_, msg, err := conn.ReadMessage()
				if err != nil {
					t.Errorf("read %d: %v", n, err)
					return
				}
				var decoded clockMessage
				if err := json.Unmarshal(msg, &decoded); err != nil {
					t.Errorf("frame %d corrupted: %v (%q)", n, err, msg)
					return
				}
				if decoded.Type != "clock" {
					t.Errorf("frame %d has type %q", n, decoded.Type)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestRunClockStops(t *testing.T) {
	hub := NewHub()
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		hub.RunClock(10*time.Millisecond, stop)
		close(done)
	}()

	close(stop)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunClock did not stop")
	}
}
