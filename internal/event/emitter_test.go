package event

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestEmitter_OnEvent(t *testing.T) {
	var e Emitter[Event]

	var received []Event
	e.OnEvent(func(ev Event) {
		received = append(received, ev)
	})

	ev, _ := Decode([]byte(`{"type":"item.completed"}`))
	e.Emit(ev)

	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	if received[0].Type() != "item.completed" {
		t.Errorf("expected type item.completed, got %q", received[0].Type())
	}
}

func TestEmitter_MultipleHandlers(t *testing.T) {
	var e Emitter[Event]

	var count1, count2 int
	e.OnEvent(func(_ Event) { count1++ })
	e.OnEvent(func(_ Event) { count2++ })

	e.Emit(Event{})

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected each handler called once, got %d and %d", count1, count2)
	}
}

func TestEmitter_EmitWithNoHandlers(t *testing.T) {
	var e Emitter[Event]

	// Must not panic.
	e.Emit(Event{})
}

func TestEmitter_HandlersAddedDuringEmitDeferred(t *testing.T) {
	var e Emitter[Event]

	var calls []int
	e.OnEvent(func(_ Event) {
		calls = append(calls, 1)
		e.OnEvent(func(_ Event) {
			calls = append(calls, 3)
		})
	})
	e.OnEvent(func(_ Event) {
		calls = append(calls, 2)
	})

	e.Emit(Event{})
	if len(calls) != 2 {
		t.Fatalf("handler added mid-emit should wait for the next emit, got %v", calls)
	}

	calls = nil
	e.Emit(Event{})
	if len(calls) != 3 {
		t.Errorf("expected 3 calls on second emit, got %v", calls)
	}
}

func TestEmitter_ConcurrentRegistrationAndEmission(t *testing.T) {
	var e Emitter[Event]

	var callCount atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			e.OnEvent(func(_ Event) { callCount.Add(1) })
		}()
		go func() {
			defer wg.Done()
			e.Emit(Event{})
		}()
	}
	wg.Wait()

	// One more emit with all handlers registered.
	before := callCount.Load()
	e.Emit(Event{})
	if callCount.Load()-before != 50 {
		t.Errorf("expected 50 handler calls on final emit, got %d", callCount.Load()-before)
	}
}
