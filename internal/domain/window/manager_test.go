package window

import (
	"testing"

	"github.com/blackroad/shell/internal/domain/events"
	"github.com/blackroad/shell/internal/infrastructure/config"
	"github.com/blackroad/shell/internal/infrastructure/logging"
	"github.com/blackroad/shell/internal/shared/types"
)

type recordingView struct {
	rendered []string
	removed  []string
	taskbar  []types.TaskbarEntry
}

func (v *recordingView) RenderWindow(win types.Window, content string) {
	v.rendered = append(v.rendered, win.ID)
}
func (v *recordingView) UpdateWindow(types.Window) {}
func (v *recordingView) RemoveWindow(id string) {
	v.removed = append(v.removed, id)
}
func (v *recordingView) SyncTaskbar(entries []types.TaskbarEntry) {
	v.taskbar = entries
}

func newTestManager(cfg *config.Config) (*Manager, *events.Bus, *recordingView) {
	if cfg == nil {
		cfg = config.Default()
	}
	bus := events.New(logging.NewNop())
	view := &recordingView{}
	m := NewManager(cfg, NewRegistry(), bus, view, logging.NewNop())
	return m, bus, view
}

func TestCreateWindowDedup(t *testing.T) {
	m, _, _ := newTestManager(nil)

	first := m.CreateWindow(CreateOptions{ID: "x", Title: "One"})
	second := m.CreateWindow(CreateOptions{ID: "x", Title: "One again"})

	if first != "x" || second != "x" {
		t.Errorf("expected both calls to return x, got %q and %q", first, second)
	}
	if m.Size() != 1 {
		t.Errorf("expected exactly one window, got %d", m.Size())
	}
}

func TestCreateDuplicateRestoresMinimized(t *testing.T) {
	m, _, _ := newTestManager(nil)

	m.CreateWindow(CreateOptions{ID: "x", Title: "One"})
	m.MinimizeWindow("x")

	m.CreateWindow(CreateOptions{ID: "x"})

	win, _ := m.GetWindow("x")
	if win.Minimized {
		t.Error("duplicate create should restore a minimized window")
	}
	if !win.Focused {
		t.Error("restored window should be focused")
	}
}

func TestSingleFocus(t *testing.T) {
	m, _, _ := newTestManager(nil)

	a := m.CreateWindow(CreateOptions{Title: "A"})
	b := m.CreateWindow(CreateOptions{Title: "B"})
	c := m.CreateWindow(CreateOptions{Title: "C"})

	m.FocusWindow(a)
	m.FocusWindow(c)
	m.FocusWindow(b)

	focused := 0
	for _, win := range m.Windows() {
		if win.Focused {
			focused++
			if win.ID != b {
				t.Errorf("expected %s focused, got %s", b, win.ID)
			}
		}
	}
	if focused != 1 {
		t.Errorf("expected exactly one focused window, got %d", focused)
	}
}

func TestFocusUnknownIsNoOp(t *testing.T) {
	m, _, _ := newTestManager(nil)

	if m.FocusWindow("ghost") {
		t.Error("focusing an unknown window should report false")
	}
	if m.MinimizeWindow("ghost") || m.RestoreWindow("ghost") || m.CloseWindow("ghost") {
		t.Error("operations on unknown windows should report false")
	}
}

func TestZIndexMonotonicWithinBound(t *testing.T) {
	cfg := config.Default()
	cfg.ZOrder = config.ZOrderConfig{Base: 100, Max: 120}
	m, _, _ := newTestManager(cfg)

	prev := m.NextZIndex()
	for i := 0; i < 20; i++ {
		z := m.NextZIndex()
		if z <= prev {
			t.Fatalf("z-index not strictly increasing: %d after %d", z, prev)
		}
		prev = z
	}
}

func TestReindexPreservesOrder(t *testing.T) {
	cfg := config.Default()
	cfg.ZOrder = config.ZOrderConfig{Base: 100, Max: 110}
	m, _, _ := newTestManager(cfg)

	w1 := m.CreateWindow(CreateOptions{Title: "W1"}) // z 100
	w2 := m.CreateWindow(CreateOptions{Title: "W2"}) // z 101
	w3 := m.CreateWindow(CreateOptions{Title: "W3"}) // z 102

	m.FocusWindow(w1) // z 103; order now w2 < w3 < w1

	// Burn through the remaining range, then force the overflow.
	for {
		if m.NextZIndex() == cfg.ZOrder.Max {
			break
		}
	}
	overflow := m.NextZIndex() // triggers reindex first

	a, _ := m.GetWindow(w2)
	b, _ := m.GetWindow(w3)
	c, _ := m.GetWindow(w1)

	if !(a.ZIndex < b.ZIndex && b.ZIndex < c.ZIndex) {
		t.Errorf("relative order changed after reindex: %d %d %d", a.ZIndex, b.ZIndex, c.ZIndex)
	}
	if a.ZIndex != cfg.ZOrder.Base {
		t.Errorf("lowest window should hold the base value %d, got %d", cfg.ZOrder.Base, a.ZIndex)
	}
	if overflow != cfg.ZOrder.Base+3 {
		t.Errorf("counter should resume at base+count=%d, got %d", cfg.ZOrder.Base+3, overflow)
	}
}

func TestCloseIsAtomic(t *testing.T) {
	m, _, view := newTestManager(nil)

	m.CreateWindow(CreateOptions{ID: "x", Title: "Doomed"})
	m.CloseWindow("x")

	if _, ok := m.GetWindow("x"); ok {
		t.Error("window should be gone from the registry")
	}
	for _, e := range m.TaskbarEntries() {
		if e.WindowID == "x" {
			t.Error("taskbar entry should be gone")
		}
	}
	if len(view.removed) != 1 || view.removed[0] != "x" {
		t.Errorf("view should have removed x, got %v", view.removed)
	}
}

func TestCloseEmitsBeforeRemoval(t *testing.T) {
	m, bus, _ := newTestManager(nil)

	m.CreateWindow(CreateOptions{ID: "x", Title: "Teardown"})

	var sawTitle string
	stillRegistered := false
	bus.On(events.WindowClosed, func(payload any) {
		win := payload.(types.Window)
		sawTitle = win.Title
		_, stillRegistered = m.GetWindow(win.ID)
	})

	m.CloseWindow("x")

	if sawTitle != "Teardown" {
		t.Errorf("closed event should carry window metadata, got %q", sawTitle)
	}
	if !stillRegistered {
		t.Error("subscribers must be able to read window state during teardown")
	}
}

func TestDragClamping(t *testing.T) {
	m, _, _ := newTestManager(nil) // screen 1920x1080, margin 100

	x, y := 200, 200
	id := m.CreateWindow(CreateOptions{Title: "Drag me", Width: 800, Height: 600, X: &x, Y: &y})

	win, _ := m.GetWindow(id)
	if !m.DragStart(id, win.Position.X, win.Position.Y) {
		t.Fatal("drag start failed")
	}

	m.DragMove(-5000, -5000)
	win, _ = m.GetWindow(id)
	if win.Position.X != 100-800 {
		t.Errorf("expected left clamp at %d, got %d", 100-800, win.Position.X)
	}
	if win.Position.Y != 0 {
		t.Errorf("title bar must not leave the top edge, got y=%d", win.Position.Y)
	}

	m.DragMove(5000, 5000)
	win, _ = m.GetWindow(id)
	if win.Position.X != 1920-100 {
		t.Errorf("expected right clamp at %d, got %d", 1920-100, win.Position.X)
	}
	if win.Position.Y != 1080-100 {
		t.Errorf("expected bottom clamp at %d, got %d", 1080-100, win.Position.Y)
	}

	m.DragEnd()
	if _, active := m.Dragging(); active {
		t.Error("drag should be over")
	}
}

func TestDragStartFocuses(t *testing.T) {
	m, _, _ := newTestManager(nil)

	a := m.CreateWindow(CreateOptions{Title: "A"})
	b := m.CreateWindow(CreateOptions{Title: "B"})

	wa, _ := m.GetWindow(a)
	m.DragStart(a, wa.Position.X, wa.Position.Y)

	wa, _ = m.GetWindow(a)
	wb, _ := m.GetWindow(b)
	if !wa.Focused || wb.Focused {
		t.Error("dragging should focus the dragged window")
	}
	if wa.ZIndex <= wb.ZIndex {
		t.Error("dragged window should be on top")
	}
}

func TestMinimizeRestore(t *testing.T) {
	m, bus, _ := newTestManager(nil)

	var fired []events.Name
	for _, ev := range []events.Name{events.WindowMinimized, events.WindowRestored, events.WindowFocused} {
		ev := ev
		bus.On(ev, func(any) { fired = append(fired, ev) })
	}

	id := m.CreateWindow(CreateOptions{Title: "Toggling"})
	fired = nil

	m.MinimizeWindow(id)
	win, _ := m.GetWindow(id)
	if !win.Minimized || win.Focused {
		t.Error("minimized window should be hidden and unfocused")
	}

	m.RestoreWindow(id)
	win, _ = m.GetWindow(id)
	if win.Minimized || !win.Focused {
		t.Error("restored window should be visible and focused")
	}

	if len(fired) < 3 || fired[0] != events.WindowMinimized || fired[1] != events.WindowRestored {
		t.Errorf("unexpected event sequence: %v", fired)
	}
}

func TestCloseFocused(t *testing.T) {
	m, _, _ := newTestManager(nil)

	m.CreateWindow(CreateOptions{ID: "a", Title: "A"})
	m.CreateWindow(CreateOptions{ID: "b", Title: "B"})

	if !m.CloseFocused() {
		t.Fatal("expected focused window to close")
	}
	if _, ok := m.GetWindow("b"); ok {
		t.Error("the focused window b should be gone")
	}
	if _, ok := m.GetWindow("a"); !ok {
		t.Error("a should survive")
	}

	m.CloseWindow("a")
	if m.CloseFocused() {
		t.Error("with no windows left, CloseFocused should report false")
	}
}

func TestCascadeOffset(t *testing.T) {
	m, _, _ := newTestManager(nil)

	a := m.CreateWindow(CreateOptions{Title: "A"})
	b := m.CreateWindow(CreateOptions{Title: "B"})

	wa, _ := m.GetWindow(a)
	wb, _ := m.GetWindow(b)
	if wb.Position.X-wa.Position.X != 30 || wb.Position.Y-wa.Position.Y != 30 {
		t.Errorf("second window should cascade by 30px, got dx=%d dy=%d",
			wb.Position.X-wa.Position.X, wb.Position.Y-wa.Position.Y)
	}
}
