package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn

	mu sync.Mutex // serializes writes; gorilla allows one writer at a time
}

// WriteMessage is the only path that may write to Conn. Broadcasts and
// the ping loop run on different goroutines, so writes must take the lock.
func (c *WSClient) WriteMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(messageType, data)
}

// RealtimeHub pushes summary refreshes to a user's open sessions after
// meal and water writes, so the dashboard can patch its totals without
// re-polling.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[uint]map[*WSClient]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[uint]map[*WSClient]struct{})}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

type summaryEvent struct {
	Event   string       `json:"event"` // "summary:meal" | "summary:water"
	Summary DailySummary `json:"summary"`
}

// BroadcastSummary sends the recomputed day summary to every session of
// the user. Write errors are ignored; the read loop notices dead peers.
func (h *RealtimeHub) BroadcastSummary(userID uint, event string, sum DailySummary) {
	msg, _ := json.Marshal(summaryEvent{Event: event, Summary: sum})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		_ = c.WriteMessage(websocket.TextMessage, msg)
	}
}
