// Package websocket file: websocket/clock.go
package websocket

import (
	"encoding/json"
	"time"

	"ticket-office/logger"
)

// ClockInterval is how often the dashboard clock is refreshed. The clock
// is the only thing pushed on a timer; page data is never polled.
const ClockInterval = time.Minute

// clockMessage is what the dashboard's clock script receives.
type clockMessage struct {
	Type string `json:"type"`
	Time string `json:"time"`
}

// clockPayload renders the current wall time as a broadcast message.
func clockPayload(now time.Time) []byte {
	msg, err := json.Marshal(clockMessage{
		Type: "clock",
		Time: now.Format("2006-01-02 15:04"),
	})
	if err != nil {
		logger.Error.Printf("clockPayload: %v", err)
		return nil
	}
	return msg
}

// RunClock broadcasts the wall time once per interval until stop closes.
// Run it in its own goroutine from main.
func (h *Hub) RunClock(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			if msg := clockPayload(now); msg != nil {
				h.Broadcast(msg)
			}
		case <-stop:
			logger.Info.Println("RunClock: clock feed stopped")
			return
		}
	}
}
