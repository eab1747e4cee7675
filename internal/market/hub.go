package market

import (
	"sync"

	"github.com/gorilla/websocket"
)

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) writeJSON(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

// Hub fans quote snapshots out to websocket subscribers.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]*subscriber
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]*subscriber)}
}

// Add registers conn and sends it v as its first message.
func (h *Hub) Add(conn *websocket.Conn, v any) {
	sub := &subscriber{conn: conn}
	h.mu.Lock()
	h.clients[conn] = sub
	h.mu.Unlock()

	if err := sub.writeJSON(v); err != nil {
		h.Remove(conn)
	}
}

// Remove unregisters and closes conn.
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	if ok {
		_ = conn.Close()
	}
}

// Len returns the number of connected subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast writes v to every subscriber, dropping the ones that fail.
func (h *Hub) Broadcast(v any) {
	h.mu.RLock()
	subs := make([]*subscriber, 0, len(h.clients))
	for _, s := range h.clients {
		subs = append(subs, s)
	}
	h.mu.RUnlock()

	for _, s := range subs {
		if err := s.writeJSON(v); err != nil {
			h.Remove(s.conn)
		}
	}
}
