package events

import (
	"sync"
	"time"
)

// Event types published by the booking and catalog services.
const (
	TypeBookingCreated = "booking.created"
	TypeBookingUpdated = "booking.updated"
	TypeCatalogChanged = "catalog.changed"
)

// Event is a change notification fanned out to admin dashboard streams.
type Event struct {
	Type       string      `json:"type"`
	Collection string      `json:"collection"`
	ID         string      `json:"id"`
	At         time.Time   `json:"at"`
	Payload    interface{} `json:"payload,omitempty"`
}

// Hub is an in-process publish/subscribe fan-out. Subscribers receive every
// event published after they subscribe; slow subscribers drop events rather
// than block publishers.
type Hub struct {
	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

// NewHub returns an empty Hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan Event)}
}

// Subscribe registers a listener and returns its channel together with a
// disposer that unsubscribes and closes the channel. The disposer is safe to
// call more than once.
func (h *Hub) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	h.mu.Lock()
	id := h.next
	h.next++
	ch := make(chan Event, buffer)
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	dispose := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, dispose
}

// Publish delivers an event to every current subscriber. Events for
// subscribers with full buffers are dropped.
func (h *Hub) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// SubscriberCount reports the number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
