// Package events streams catalog change notifications to connected admin
// clients over websockets.
package events

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event describes one entity lifecycle change.
type Event struct {
	Entity string `json:"entity"` // category, album, episode, content
	Action string `json:"action"` // created, updated, deleted
	UUID   string `json:"uuid,omitempty"`
	At     string `json:"at"`
}

// Publisher is what services see; the hub implements it. A nil-safe no-op
// keeps services testable without a hub.
type Publisher interface {
	Publish(entity, action, uuid string)
}

// subscriber pairs a connection with its write lock. Writes on one
// websocket connection must never run concurrently, and Publish is called
// from arbitrary request goroutines.
type subscriber struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *subscriber) write(event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(event)
}

// Hub fans events out to every connected subscriber.
type Hub struct {
	mu     sync.RWMutex
	nextID int64
	subs   map[int64]*subscriber
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int64]*subscriber)}
}

func (h *Hub) Register(conn *websocket.Conn) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	h.subs[h.nextID] = &subscriber{conn: conn}
	return h.nextID
}

func (h *Hub) Unregister(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if sub, ok := h.subs[id]; ok {
		_ = sub.conn.Close()
		delete(h.subs, id)
	}
}

// Publish sends the event to every subscriber. Each connection's write is
// serialized through its own lock; dead connections are dropped on write
// failure.
func (h *Hub) Publish(entity, action, uuid string) {
	event := Event{
		Entity: entity,
		Action: action,
		UUID:   uuid,
		At:     time.Now().UTC().Truncate(time.Second).Format(time.RFC3339),
	}

	h.mu.RLock()
	targets := make(map[int64]*subscriber, len(h.subs))
	for id, sub := range h.subs {
		targets[id] = sub
	}
	h.mu.RUnlock()

	for id, sub := range targets {
		if err := sub.write(event); err != nil {
			h.Unregister(id)
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, sub := range h.subs {
		_ = sub.conn.Close()
		delete(h.subs, id)
	}
}

// Noop satisfies Publisher without doing anything.
type Noop struct{}

func (Noop) Publish(string, string, string) {}
