// Package realtime is the in-process change-notification channel. It is an
// explicit publish/subscribe object handed to services through the API
// wiring, with subscription lifetime bound to the consuming request.
package realtime

import "sync"

// Event kinds published on a user's channel. Subscribers do not
// discriminate payloads: every event means "re-fetch that resource".
const (
	EventProgress    = "progress"
	EventPartnership = "partnership"
	EventMessages    = "messages"
)

// Event names the resource that changed for the subscribed user.
type Event struct {
	Kind string `json:"kind"`
}

// Hub fans events out to per-user subscribers.
type Hub struct {
	mu     sync.Mutex
	next   int
	topics map[string]map[int]chan Event
}

// NewHub constructs an empty hub.
func NewHub() *Hub {
	return &Hub{topics: make(map[string]map[int]chan Event)}
}

// Subscribe registers a listener for userID. The returned cancel func must
// be called on teardown; after it returns the channel is closed.
func (h *Hub) Subscribe(userID string) (<-chan Event, func()) {
	ch := make(chan Event, 8)

	h.mu.Lock()
	h.next++
	id := h.next
	if h.topics[userID] == nil {
		h.topics[userID] = make(map[int]chan Event)
	}
	h.topics[userID][id] = ch
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if subs, ok := h.topics[userID]; ok {
			if sub, ok := subs[id]; ok {
				delete(subs, id)
				close(sub)
			}
			if len(subs) == 0 {
				delete(h.topics, userID)
			}
		}
		h.mu.Unlock()
	}

	return ch, cancel
}

// Publish notifies every subscriber of userID. Slow subscribers lose the
// event rather than block the publisher; they re-fetch on the next one.
func (h *Hub) Publish(userID, kind string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.topics[userID] {
		select {
		case ch <- Event{Kind: kind}:
		default:
		}
	}
}

// Subscribers reports the listener count for userID.
func (h *Hub) Subscribers(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.topics[userID])
}
