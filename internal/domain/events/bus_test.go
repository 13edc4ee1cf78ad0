package events

import (
	"testing"

	"github.com/blackroad/shell/internal/infrastructure/logging"
)

func TestEmitOrder(t *testing.T) {
	b := New(logging.NewNop())

	var got []int
	b.On("test:order", func(any) { got = append(got, 1) })
	b.On("test:order", func(any) { got = append(got, 2) })
	b.On("test:order", func(any) { got = append(got, 3) })

	b.Emit("test:order", nil)

	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("expected listeners in registration order, got %v", got)
	}
}

func TestListenerIsolation(t *testing.T) {
	b := New(logging.NewNop())

	second := false
	b.On(WindowClosed, func(any) { panic("listener bug") })
	b.On(WindowClosed, func(any) { second = true })

	b.Emit(WindowClosed, nil)

	if !second {
		t.Error("second listener should run after first panics")
	}
}

func TestCancel(t *testing.T) {
	b := New(logging.NewNop())

	calls := 0
	sub := b.On("test:cancel", func(any) { calls++ })

	b.Emit("test:cancel", nil)
	sub.Cancel()
	b.Emit("test:cancel", nil)
	sub.Cancel() // second cancel is harmless

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if b.ListenerCount("test:cancel") != 0 {
		t.Error("listener should be removed")
	}
}

func TestRemoveAll(t *testing.T) {
	b := New(logging.NewNop())

	b.On("a", func(any) {})
	b.On("a", func(any) {})
	b.On("b", func(any) {})

	b.RemoveAll("a")
	if b.ListenerCount("a") != 0 {
		t.Error("listeners for a should be cleared")
	}
	if b.ListenerCount("b") != 1 {
		t.Error("listeners for b should survive")
	}

	b.RemoveAll()
	if b.ListenerCount("b") != 0 {
		t.Error("all listeners should be cleared")
	}
}

func TestSubscribeTyped(t *testing.T) {
	b := New(logging.NewNop())

	var got string
	SubscribeTyped(b, ThemeChanged, func(theme string) { got = theme })

	b.Emit(ThemeChanged, 42) // wrong type, skipped
	if got != "" {
		t.Error("mismatched payload should not invoke listener")
	}

	b.Emit(ThemeChanged, "midnight")
	if got != "midnight" {
		t.Errorf("expected midnight, got %q", got)
	}
}

func TestEmitWithoutListeners(t *testing.T) {
	b := New(logging.NewNop())
	b.Emit("nobody:home", "payload") // must not panic
}
