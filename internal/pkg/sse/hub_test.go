package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesSubscriber(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ch, cleanup := hub.Subscribe("user_a")
	defer cleanup()

	hub.Publish("user_a", Event{UserID: "user_a", Event: "request_decided", Data: "payload"})

	select {
	case got := <-ch:
		assert.Equal(t, "request_decided", got.Event)
		assert.Equal(t, "payload", got.Data)
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestHub_PublishIgnoresOtherUsers(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ch, cleanup := hub.Subscribe("user_a")
	defer cleanup()

	hub.Publish("user_b", Event{UserID: "user_b", Event: "request_decided"})

	assert.Empty(t, ch)
}

func TestHub_PublishToManyStampsUserID(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	chA, cleanupA := hub.Subscribe("user_a")
	defer cleanupA()
	chB, cleanupB := hub.Subscribe("user_b")
	defer cleanupB()

	hub.PublishToMany([]string{"user_a", "user_b"}, Event{Event: "request_submitted"})

	gotA := <-chA
	gotB := <-chB
	assert.Equal(t, "user_a", gotA.UserID)
	assert.Equal(t, "user_b", gotB.UserID)
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	_, cleanup := hub.Subscribe("user_a")
	require.Equal(t, 1, hub.SubscriberCount("user_a"))

	cleanup()
	assert.Equal(t, 0, hub.SubscriberCount("user_a"))

	// Publishing after cleanup must not panic.
	hub.Publish("user_a", Event{Event: "request_decided"})
}

func TestHub_FullChannelDoesNotBlock(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ch, cleanup := hub.Subscribe("user_a")
	defer cleanup()

	// Overflow the buffer; sends past capacity are dropped.
	for i := 0; i < 20; i++ {
		hub.Publish("user_a", Event{Event: "request_submitted"})
	}

	assert.Equal(t, cap(ch), len(ch))
}
