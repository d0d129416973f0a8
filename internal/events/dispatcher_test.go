package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []EventType
	dispatcher.Subscribe(EventBookingCreated, func(_ context.Context, evt Event) error {
		seen = append(seen, evt.Type)
		return nil
	})
	dispatcher.Subscribe(EventBookingCreated, func(_ context.Context, evt Event) error {
		seen = append(seen, evt.Type)
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{Type: EventBookingCreated, EntityID: "evt-1"})
	require.NoError(t, err)
	assert.Len(t, seen, 2)
}

func TestDispatcherIgnoresOtherTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(EventPaymentRecorded, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventBookingDeleted}))
	assert.False(t, called)
}

func TestDispatcherContinuesAfterHandlerError(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var order []string
	dispatcher.Subscribe(EventGuestAdded, func(_ context.Context, _ Event) error {
		order = append(order, "first")
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventGuestAdded, func(_ context.Context, _ Event) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventGuestAdded}))
	assert.Equal(t, []string{"first", "second"}, order)
}
