package event

import (
	"sync"
	"testing"
)

func TestBus_Subscribe(t *testing.T) {
	bus := NewBus()

	called := false
	id := bus.Subscribe("test.event", func(e Event) {
		called = true
	})

	if id == "" {
		t.Error("Subscribe should return a non-empty ID")
	}

	if bus.SubscriptionCount() != 1 {
		t.Errorf("Expected 1 subscription, got %d", bus.SubscriptionCount())
	}

	if called {
		t.Error("Handler should not be called until an event is published")
	}
}

func TestBus_Publish(t *testing.T) {
	bus := NewBus()

	var receivedEvent Event
	bus.Subscribe(TypeViewportResized, func(e Event) {
		receivedEvent = e
	})

	bus.Publish(NewViewportResizedEvent(120, 40))

	if receivedEvent == nil {
		t.Fatal("Handler should have received the event")
	}

	if receivedEvent.EventType() != TypeViewportResized {
		t.Errorf("Expected event type %q, got %q", TypeViewportResized, receivedEvent.EventType())
	}

	resized := receivedEvent.(ViewportResizedEvent)
	if resized.Width != 120 || resized.Height != 40 {
		t.Errorf("Expected 120x40, got %dx%d", resized.Width, resized.Height)
	}
}

func TestBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewBus()

	callCount := 0
	bus.Subscribe("test.event", func(e Event) {
		callCount++
	})
	bus.Subscribe("test.event", func(e Event) {
		callCount++
	})

	bus.Publish(newBaseEvent("test.event"))

	if callCount != 2 {
		t.Errorf("Expected both handlers to be called, got %d calls", callCount)
	}
}

func TestBus_PublishNoMatchingHandlers(t *testing.T) {
	bus := NewBus()

	bus.Subscribe("other.event", func(e Event) {
		t.Error("Handler for other.event should not be called")
	})

	// Should not panic or call the handler.
	bus.Publish(newBaseEvent("test.event"))
}

func TestBus_SubscribeAll(t *testing.T) {
	bus := NewBus()

	var received []string
	bus.SubscribeAll(func(e Event) {
		received = append(received, e.EventType())
	})

	bus.Publish(NewViewportResizedEvent(80, 24))
	bus.Publish(NewStepChangedEvent(-1, 0, "sidebar"))

	if len(received) != 2 {
		t.Fatalf("Expected wildcard handler to see 2 events, got %d", len(received))
	}
	if received[0] != TypeViewportResized || received[1] != "walkthrough.step_changed" {
		t.Errorf("Unexpected event order: %v", received)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus()

	called := false
	id := bus.Subscribe("test.event", func(e Event) {
		called = true
	})

	if !bus.Unsubscribe(id) {
		t.Error("Unsubscribe should return true for a known ID")
	}

	bus.Publish(newBaseEvent("test.event"))

	if called {
		t.Error("Handler should not be called after unsubscribe")
	}

	if bus.Unsubscribe(id) {
		t.Error("Unsubscribe should return false for an already-removed ID")
	}
}

func TestBus_UnsubscribeUnknownID(t *testing.T) {
	bus := NewBus()
	if bus.Unsubscribe("no-such-id") {
		t.Error("Unsubscribe should return false for an unknown ID")
	}
}

func TestBus_HandlerPanicDoesNotBlockOthers(t *testing.T) {
	bus := NewBus()

	secondCalled := false
	bus.Subscribe("test.event", func(e Event) {
		panic("boom")
	})
	bus.Subscribe("test.event", func(e Event) {
		secondCalled = true
	})

	bus.Publish(newBaseEvent("test.event"))

	if !secondCalled {
		t.Error("Second handler should run even when the first panics")
	}
}

func TestBus_Clear(t *testing.T) {
	bus := NewBus()

	bus.Subscribe("a", func(Event) {})
	bus.Subscribe("b", func(Event) {})
	bus.Clear()

	if bus.SubscriptionCount() != 0 {
		t.Errorf("Expected 0 subscriptions after Clear, got %d", bus.SubscriptionCount())
	}
}

func TestBus_ConcurrentPublishSubscribe(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			id := bus.Subscribe("test.event", func(Event) {})
			bus.Unsubscribe(id)
		}()
		go func() {
			defer wg.Done()
			bus.Publish(newBaseEvent("test.event"))
		}()
	}
	wg.Wait()
}

func TestResizeNotifier_SubscribeAndCancel(t *testing.T) {
	bus := NewBus()
	notifier := NewResizeNotifier(bus)

	calls := 0
	cancel := notifier.Subscribe(func() { calls++ })

	bus.Publish(NewViewportResizedEvent(100, 30))
	bus.Publish(NewViewportResizedEvent(90, 28))

	if calls != 2 {
		t.Fatalf("Expected 2 notifications, got %d", calls)
	}

	cancel()
	bus.Publish(NewViewportResizedEvent(80, 24))

	if calls != 2 {
		t.Errorf("Expected no notifications after cancel, got %d", calls)
	}

	// Cancel must be idempotent.
	cancel()

	if bus.SubscriptionCount() != 0 {
		t.Errorf("Expected 0 subscriptions after cancel, got %d", bus.SubscriptionCount())
	}
}

func TestResizeNotifier_IgnoresOtherEvents(t *testing.T) {
	bus := NewBus()
	notifier := NewResizeNotifier(bus)

	calls := 0
	cancel := notifier.Subscribe(func() { calls++ })
	defer cancel()

	bus.Publish(NewStepChangedEvent(-1, 0, "header"))

	if calls != 0 {
		t.Errorf("Notifier should only fire on viewport.resized, got %d calls", calls)
	}
}
