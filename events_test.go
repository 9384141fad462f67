package gobble

import "testing"

func TestEmitterOnAndEmit(t *testing.T) {
	e := NewEventEmitter()
	var got []any
	e.On(EventClick, func(d any) { got = append(got, d) })
	e.On(EventClick, func(d any) { got = append(got, d) })

	e.Emit(EventClick, 3)
	e.Emit(EventSound, "ignored")

	if len(got) != 2 || got[0] != 3 || got[1] != 3 {
		t.Fatalf("got %v, want [3 3]", got)
	}
}

func TestEmitterRemoveListener(t *testing.T) {
	e := NewEventEmitter()
	calls := 0
	id := e.On(EventClick, func(any) { calls++ })
	e.On(EventClick, func(any) {})

	if !e.RemoveListener(EventClick, id) {
		t.Fatal("RemoveListener = false for a registered listener")
	}
	if e.RemoveListener(EventClick, id) {
		t.Fatal("RemoveListener = true twice")
	}
	e.Emit(EventClick, nil)
	if calls != 0 {
		t.Fatalf("removed listener called %d times", calls)
	}
}

func TestEmitterOnce(t *testing.T) {
	e := NewEventEmitter()
	calls := 0
	id := e.Once(EventGameOver, func(any) { calls++ })

	e.Emit(EventGameOver, nil)
	e.Emit(EventGameOver, nil)

	if calls != 1 {
		t.Fatalf("Once handler called %d times, want 1", calls)
	}
	if e.RemoveListener(EventGameOver, id) {
		t.Fatal("Once handler still registered after it fired")
	}
}

func TestEmitterHandlerAddsListener(t *testing.T) {
	e := NewEventEmitter()
	late := 0
	e.On(EventClick, func(any) {
		e.On(EventClick, func(any) { late++ })
	})

	e.Emit(EventClick, nil)
	if late != 0 {
		t.Fatalf("listener added during Emit ran in the same Emit")
	}
	e.Emit(EventClick, nil)
	if late != 1 {
		t.Fatalf("late = %d, want 1", late)
	}
}
