package event

import "testing"

func TestSubscribePublish(t *testing.T) {
	bus := NewBus()

	var got Event
	bus.Subscribe("turn.completed", func(e Event) { got = e })

	published := NewTurnCompletedEvent("run-1", 3, "Scientist", "an argument")
	bus.Publish(published)

	if got == nil {
		t.Fatal("handler was not called")
	}
	turn, ok := got.(TurnCompletedEvent)
	if !ok {
		t.Fatalf("handler received %T, want TurnCompletedEvent", got)
	}
	if turn.RunID != "run-1" || turn.Round != 3 || turn.Speaker != "Scientist" {
		t.Errorf("received %+v, want published fields", turn)
	}
	if turn.Timestamp().IsZero() {
		t.Error("event timestamp should be set")
	}
}

func TestPublishIgnoresOtherTypes(t *testing.T) {
	bus := NewBus()

	called := false
	bus.Subscribe("judge.completed", func(Event) { called = true })

	bus.Publish(NewDebateStartedEvent("run-1", "topic"))
	if called {
		t.Error("handler for judge.completed ran for debate.started")
	}
}

func TestSubscribeAll(t *testing.T) {
	bus := NewBus()

	var types []string
	bus.SubscribeAll(func(e Event) { types = append(types, e.EventType()) })

	bus.Publish(NewDebateStartedEvent("r", "t"))
	bus.Publish(NewTurnCompletedEvent("r", 1, "Scientist", "x"))
	bus.Publish(NewJudgeCompletedEvent("r", "s", "w", "j"))
	bus.Publish(NewDebateAbortedEvent("r", "reason"))

	want := []string{"debate.started", "turn.completed", "judge.completed", "debate.aborted"}
	if len(types) != len(want) {
		t.Fatalf("got %d events, want %d", len(types), len(want))
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %q, want %q", i, types[i], want[i])
		}
	}
}

func TestSpecificHandlersRunBeforeWildcard(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.SubscribeAll(func(Event) { order = append(order, "wildcard") })
	bus.Subscribe("debate.started", func(Event) { order = append(order, "specific") })

	bus.Publish(NewDebateStartedEvent("r", "t"))

	if len(order) != 2 || order[0] != "specific" || order[1] != "wildcard" {
		t.Errorf("dispatch order = %v, want [specific wildcard]", order)
	}
}

func TestPanickingHandlerDoesNotBlockDelivery(t *testing.T) {
	bus := NewBus()

	bus.Subscribe("debate.started", func(Event) { panic("bad handler") })

	delivered := false
	bus.Subscribe("debate.started", func(Event) { delivered = true })

	bus.Publish(NewDebateStartedEvent("r", "t"))
	if !delivered {
		t.Error("second handler should still run after the first panicked")
	}
}
