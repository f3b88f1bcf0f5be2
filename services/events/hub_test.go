package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeReceivesPublishedEvents(t *testing.T) {
	hub := NewHub()
	ch, dispose := hub.Subscribe(4)
	defer dispose()

	hub.Publish(Event{Type: TypeBookingCreated, Collection: "bookings", ID: "bk-1"})

	select {
	case e := <-ch:
		assert.Equal(t, TypeBookingCreated, e.Type)
		assert.Equal(t, "bk-1", e.ID)
		assert.False(t, e.At.IsZero())
	case <-time.After(time.Second):
		t.Fatal("expected an event")
	}
}

func TestDisposeUnsubscribesAndClosesChannel(t *testing.T) {
	hub := NewHub()
	ch, dispose := hub.Subscribe(1)
	require.Equal(t, 1, hub.SubscriberCount())

	dispose()
	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-ch
	assert.False(t, open)

	// Calling the disposer again is harmless.
	dispose()
}

func TestPublishFansOutToAllSubscribers(t *testing.T) {
	hub := NewHub()
	ch1, dispose1 := hub.Subscribe(1)
	ch2, dispose2 := hub.Subscribe(1)
	defer dispose1()
	defer dispose2()

	hub.Publish(Event{Type: TypeCatalogChanged, Collection: "services", ID: "svc-1"})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case e := <-ch:
			assert.Equal(t, TypeCatalogChanged, e.Type)
		case <-time.After(time.Second):
			t.Fatal("subscriber missed the event")
		}
	}
}

func TestPublishDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	ch, dispose := hub.Subscribe(1)
	defer dispose()

	hub.Publish(Event{Type: TypeBookingUpdated, ID: "bk-1"})
	hub.Publish(Event{Type: TypeBookingUpdated, ID: "bk-2"}) // dropped, never blocks

	e := <-ch
	assert.Equal(t, "bk-1", e.ID)
	select {
	case e := <-ch:
		t.Fatalf("unexpected buffered event %q", e.ID)
	default:
	}
}

func TestPublishAfterDisposeDoesNotPanic(t *testing.T) {
	hub := NewHub()
	_, dispose := hub.Subscribe(1)
	dispose()

	assert.NotPanics(t, func() {
		hub.Publish(Event{Type: TypeBookingCreated, ID: "bk-1"})
	})
}
