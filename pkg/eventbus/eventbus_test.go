package eventbus_test

import (
	"testing"
	"time"

	"github.com/roffe/plotpad/pkg/eventbus"
	"github.com/roffe/plotpad/pkg/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recv(t *testing.T, ch chan eventbus.Event) eventbus.Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed")
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for event")
	}
	return eventbus.Event{}
}

func TestPublishSubscribe(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	ch := bus.Subscribe(eventbus.TopicPointAdded)
	other := bus.Subscribe(eventbus.TopicCleared)
	require.NoError(t, bus.Publish(eventbus.TopicPointAdded, graph.Pt(10, 20), 1))

	ev := recv(t, ch)
	assert.Equal(t, eventbus.Event{Topic: eventbus.TopicPointAdded, Point: graph.Pt(10, 20), Count: 1}, ev)
	select {
	case <-other:
		t.Fatal("unexpected event on other topic")
	default:
	}
}

func TestLastValueReplayed(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	require.NoError(t, bus.Publish(eventbus.TopicPointAdded, graph.Pt(1, 2), 3))
	require.Eventually(t, func() bool {
		_, ok := bus.Last(eventbus.TopicPointAdded)
		return ok
	}, 2*time.Second, 5*time.Millisecond)

	ev := recv(t, bus.Subscribe(eventbus.TopicPointAdded))
	assert.Equal(t, graph.Pt(1, 2), ev.Point)
	assert.Equal(t, 3, ev.Count)
}

func TestSubscribeFuncAndCancel(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	got := make(chan eventbus.Event, 1)
	cancel := bus.SubscribeFunc(eventbus.TopicCleared, func(ev eventbus.Event) { got <- ev })
	require.NoError(t, bus.Publish(eventbus.TopicCleared, graph.Point{}, 0))
	ev := recv(t, got)
	assert.Equal(t, eventbus.TopicCleared, ev.Topic)
	cancel()
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	ch := bus.Subscribe(eventbus.TopicHover)
	bus.Unsubscribe(ch)
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed")
	}
}

func TestUnsubscribeRightAfterSubscribe(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	for i := range 200 {
		ch := bus.Subscribe(eventbus.TopicPointAdded)
		bus.Unsubscribe(ch)
		select {
		case _, ok := <-ch:
			require.False(t, ok, "iteration %d", i)
		case <-time.After(2 * time.Second):
			t.Fatalf("channel %d not closed", i)
		}
	}
}

func TestPublishAfterClose(t *testing.T) {
	bus := eventbus.New(nil)
	bus.Close()
	assert.ErrorIs(t, bus.Publish(eventbus.TopicPointAdded, graph.Point{}, 0), eventbus.ErrClosed)
	_, ok := bus.Last(eventbus.TopicPointAdded)
	assert.False(t, ok)
}

func TestOnMessageSeesEverything(t *testing.T) {
	bus := eventbus.New(&eventbus.Config{
		IncomingBuffer:  4,
		SubscribeBuffer: 4,
		ChannelBuffer:   4,
		CacheTTL:        time.Second,
	})
	seen := make(chan string, 2)
	bus.SetOnMessage(func(ev eventbus.Event) { seen <- ev.Topic })
	defer bus.Close()

	require.NoError(t, bus.Publish(eventbus.TopicHover, graph.Pt(1, 1), 0))
	select {
	case topic := <-seen:
		assert.Equal(t, eventbus.TopicHover, topic)
	case <-time.After(2 * time.Second):
		t.Fatal("hook not called")
	}
}

func TestPublishHover(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	ch := bus.Subscribe(eventbus.TopicHover)
	require.NoError(t, bus.PublishHover(graph.Pt(2, 3), true))
	ev := recv(t, ch)
	assert.True(t, ev.Inside)
	assert.Equal(t, graph.Pt(2, 3), ev.Point)

	require.NoError(t, bus.PublishHover(graph.Point{}, false))
	assert.False(t, recv(t, ch).Inside)
}
