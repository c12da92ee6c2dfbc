package sse

import "sync"

// Per-subscriber buffer. Slow consumers lose events past this depth
// rather than blocking publishers.
const subscriberBuffer = 10

// Event is one server-sent notification addressed to a user.
type Event struct {
	UserID string
	Event  string
	Data   interface{}
}

// Hub fans events out to the open notification streams of each user.
// A user may hold several streams (multiple tabs); every stream gets
// its own channel.
type Hub struct {
	mu      sync.RWMutex
	streams map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		streams: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe opens a stream for userID. The returned cleanup must be
// called when the client disconnects; it closes the channel.
func (h *Hub) Subscribe(userID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if h.streams[userID] == nil {
		h.streams[userID] = make(map[chan Event]struct{})
	}
	h.streams[userID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.streams[userID], ch)
		close(ch)
		if len(h.streams[userID]) == 0 {
			delete(h.streams, userID)
		}
	}

	return ch, cleanup
}

// Publish delivers an event to every open stream of userID. Sends are
// non-blocking; a full stream drops the event.
func (h *Hub) Publish(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.streams[userID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// PublishToMany delivers the event to each user, stamping the
// recipient on every copy.
func (h *Hub) PublishToMany(userIDs []string, event Event) {
	for _, userID := range userIDs {
		copied := event
		copied.UserID = userID
		h.Publish(userID, copied)
	}
}

// SubscriberCount returns the number of open streams for userID.
func (h *Hub) SubscriberCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.streams[userID])
}
