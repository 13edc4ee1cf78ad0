package window

import (
	"reflect"
	"testing"
	"time"

	"github.com/blackroad/shell/internal/shared/types"
)

func TestTaskbarSyncIdempotent(t *testing.T) {
	r := NewRegistry()
	now := time.Now()
	r.Register(&types.Window{ID: "a", Title: "A", Focused: true, CreatedAt: now})
	r.Register(&types.Window{ID: "b", Title: "B", Minimized: true, CreatedAt: now.Add(time.Second)})

	var tb Taskbar
	tb.Sync(r)
	once := tb.Entries()
	tb.Sync(r)
	twice := tb.Entries()

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("redundant sync changed entries: %v vs %v", once, twice)
	}
	if len(once) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(once))
	}
	if !once[0].Active || once[0].WindowID != "a" {
		t.Error("entry for a should be active and first (older window)")
	}
	if !once[1].Minimized {
		t.Error("entry for b should be dimmed")
	}
}

func TestTaskbarDropsRemovedWindows(t *testing.T) {
	r := NewRegistry()
	r.Register(&types.Window{ID: "a", CreatedAt: time.Now()})
	r.Register(&types.Window{ID: "b", CreatedAt: time.Now().Add(time.Second)})

	var tb Taskbar
	tb.Sync(r)

	r.Remove("a")
	tb.Sync(r)

	entries := tb.Entries()
	if len(entries) != 1 || entries[0].WindowID != "b" {
		t.Errorf("expected only b to remain, got %v", entries)
	}
}

func TestTaskbarTracksFocusChange(t *testing.T) {
	r := NewRegistry()
	a := &types.Window{ID: "a", Focused: true, CreatedAt: time.Now()}
	b := &types.Window{ID: "b", CreatedAt: time.Now().Add(time.Second)}
	r.Register(a)
	r.Register(b)

	var tb Taskbar
	tb.Sync(r)

	a.Focused = false
	b.Focused = true
	tb.Sync(r)

	entries := tb.Entries()
	if entries[0].Active || !entries[1].Active {
		t.Errorf("pressed state should mirror focus, got %v", entries)
	}
}
