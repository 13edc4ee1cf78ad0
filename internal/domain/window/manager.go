package window

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/blackroad/shell/internal/domain/events"
	"github.com/blackroad/shell/internal/infrastructure/config"
	"github.com/blackroad/shell/internal/infrastructure/logging"
	"github.com/blackroad/shell/internal/infrastructure/monitoring"
	sharedid "github.com/blackroad/shell/internal/shared/id"
	"github.com/blackroad/shell/internal/shared/types"
)

// CreateOptions are the inputs to CreateWindow. An empty ID means the
// shell mints one; a reused ID means "reuse this window".
type CreateOptions struct {
	ID        string
	Title     string
	Icon      string
	Content   string
	Width     int
	Height    int
	X         *int
	Y         *int
	Toolbar   bool
	StatusBar bool
	NoPadding bool
}

// Manager orchestrates window lifecycle. It is the registry's single
// writer; every mutation happens under one mutex with no async gap, so
// z-order and focus stay globally consistent. Events are emitted after
// the lock is released, which lets listeners read window state through
// the public accessors without deadlocking.
type Manager struct {
	registry *Registry
	taskbar  Taskbar
	bus      *events.Bus
	view     View
	log      *logging.Logger
	metrics  *monitoring.Metrics

	screen config.ScreenConfig
	zorder config.ZOrderConfig
	wincfg config.WindowConfig

	mu       sync.Mutex
	zCounter int
	drag     *dragState
}

type dragState struct {
	id      string
	offsetX int
	offsetY int
}

type pendingEvent struct {
	name events.Name
	win  types.Window
}

// NewManager creates a window manager.
func NewManager(cfg *config.Config, reg *Registry, bus *events.Bus, view View, log *logging.Logger) *Manager {
	return &Manager{
		registry: reg,
		bus:      bus,
		view:     view,
		log:      log,
		screen:   cfg.Screen,
		zorder:   cfg.ZOrder,
		wincfg:   cfg.Windows,
		zCounter: cfg.ZOrder.Base,
	}
}

// WithMetrics adds metrics tracking to the manager.
func (m *Manager) WithMetrics(metrics *monitoring.Metrics) *Manager {
	m.metrics = metrics
	return m
}

// CreateWindow creates a window and returns its ID. If opts.ID names an
// existing window this is a no-op creation: the window is restored if
// minimized, focused otherwise, and the existing ID returned; a second
// window is never allocated.
func (m *Manager) CreateWindow(opts CreateOptions) string {
	m.mu.Lock()

	if opts.ID != "" {
		if win, ok := m.registry.Get(opts.ID); ok {
			var pending []pendingEvent
			if win.Minimized {
				pending = m.restoreLocked(win)
			} else {
				pending = m.focusLocked(win, true)
			}
			m.syncTaskbarLocked()
			m.mu.Unlock()
			m.countOp("reuse")
			m.emitAll(pending)
			return opts.ID
		}
	}

	id := opts.ID
	if id == "" {
		id = sharedid.NewWindowID()
	}

	width := opts.Width
	if width <= 0 {
		width = m.wincfg.DefaultWidth
	}
	height := opts.Height
	if height <= 0 {
		height = m.wincfg.DefaultHeight
	}

	var pos types.Position
	if opts.X != nil && opts.Y != nil {
		pos = types.Position{X: *opts.X, Y: *opts.Y}
	} else {
		// Center, then cascade so stacked creations don't overlap
		// perfectly.
		offset := (m.registry.Size() * m.wincfg.CascadeStep) % m.wincfg.CascadeWrap
		pos = types.Position{
			X: (m.screen.Width-width)/2 + offset,
			Y: (m.screen.Height-height)/2 + offset,
		}
	}

	win := &types.Window{
		ID:        id,
		Title:     opts.Title,
		Icon:      opts.Icon,
		ZIndex:    m.nextZLocked(),
		Position:  pos,
		Size:      types.Size{Width: width, Height: height},
		Chrome:    types.DefaultChrome(),
		Toolbar:   opts.Toolbar,
		StatusBar: opts.StatusBar,
		NoPadding: opts.NoPadding,
		CreatedAt: time.Now(),
	}
	m.registry.Register(win)

	pending := m.focusLocked(win, false)
	m.view.RenderWindow(*win, opts.Content)
	m.syncTaskbarLocked()
	created := *win
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.WindowsCreated.Inc()
		m.metrics.WindowsOpen.Set(float64(m.registry.Size()))
	}
	m.countOp("create")
	m.emitAll(pending)
	m.bus.Emit(events.WindowCreated, created)
	return id
}

// FocusWindow brings a window to the front and gives it focus. Unknown
// IDs are logged and ignored.
func (m *Manager) FocusWindow(id string) bool {
	m.mu.Lock()
	win, ok := m.registry.Get(id)
	if !ok {
		m.mu.Unlock()
		m.log.Warn("focus: unknown window", zap.String("window_id", id))
		return false
	}

	pending := m.focusLocked(win, true)
	m.syncTaskbarLocked()
	m.mu.Unlock()

	m.countOp("focus")
	m.emitAll(pending)
	return true
}

// MinimizeWindow hides a window without closing it. A minimized window
// keeps its taskbar entry, dimmed.
func (m *Manager) MinimizeWindow(id string) bool {
	m.mu.Lock()
	win, ok := m.registry.Get(id)
	if !ok {
		m.mu.Unlock()
		m.log.Warn("minimize: unknown window", zap.String("window_id", id))
		return false
	}

	win.Minimized = true
	win.Focused = false
	m.view.UpdateWindow(*win)
	m.syncTaskbarLocked()
	minimized := *win
	m.mu.Unlock()

	m.countOp("minimize")
	m.bus.Emit(events.WindowMinimized, minimized)
	return true
}

// RestoreWindow un-minimizes a window and focuses it.
func (m *Manager) RestoreWindow(id string) bool {
	m.mu.Lock()
	win, ok := m.registry.Get(id)
	if !ok {
		m.mu.Unlock()
		m.log.Warn("restore: unknown window", zap.String("window_id", id))
		return false
	}

	pending := m.restoreLocked(win)
	m.syncTaskbarLocked()
	m.mu.Unlock()

	m.countOp("restore")
	m.emitAll(pending)
	return true
}

// CloseWindow destroys a window. The closed event fires before state is
// removed so subscribers can still read the window's metadata during
// teardown; registry entry and taskbar button are then removed
// together.
func (m *Manager) CloseWindow(id string) bool {
	m.mu.Lock()
	win, ok := m.registry.Get(id)
	if !ok {
		m.mu.Unlock()
		m.log.Warn("close: unknown window", zap.String("window_id", id))
		return false
	}
	closing := *win
	m.mu.Unlock()

	m.bus.Emit(events.WindowClosed, closing)

	m.mu.Lock()
	if _, still := m.registry.Get(id); still {
		m.registry.Remove(id)
		m.view.RemoveWindow(id)
		m.syncTaskbarLocked()
	}
	if m.drag != nil && m.drag.id == id {
		m.drag = nil
	}
	m.mu.Unlock()

	if m.metrics != nil {
		m.metrics.WindowsOpen.Set(float64(m.registry.Size()))
	}
	m.countOp("close")
	return true
}

// CloseFocused closes the currently focused window, if any. This backs
// the Escape key.
func (m *Manager) CloseFocused() bool {
	m.mu.Lock()
	var target string
	m.registry.ForEach(func(win *types.Window) {
		if win.Focused {
			target = win.ID
		}
	})
	m.mu.Unlock()

	if target == "" {
		return false
	}
	return m.CloseWindow(target)
}

// NextZIndex returns the current z-index counter value and increments
// it. When the value would exceed the configured maximum, all windows
// are reindexed from the base value first, preserving relative order.
func (m *Manager) NextZIndex() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nextZLocked()
}

func (m *Manager) nextZLocked() int {
	if m.zCounter > m.zorder.Max {
		m.reindexLocked()
	}
	z := m.zCounter
	m.zCounter++
	return z
}

// reindexLocked reassigns sequential z-indices from the base value in
// ascending z order. Relative stacking never changes.
func (m *Manager) reindexLocked() {
	var wins []*types.Window
	m.registry.ForEach(func(win *types.Window) {
		wins = append(wins, win)
	})
	sort.Slice(wins, func(i, j int) bool {
		return wins[i].ZIndex < wins[j].ZIndex
	})

	for i, win := range wins {
		win.ZIndex = m.zorder.Base + i
		m.view.UpdateWindow(*win)
	}
	m.zCounter = m.zorder.Base + len(wins)

	m.log.Info("z-index counter overflowed, windows reindexed",
		zap.Int("count", len(wins)),
		zap.Int("counter", m.zCounter),
	)
	if m.metrics != nil {
		m.metrics.Reindexes.Inc()
	}
}

// focusLocked gives win focus, clears focus on all other windows, and
// optionally assigns a fresh top z-index. Callers emit the returned
// events after unlocking.
func (m *Manager) focusLocked(win *types.Window, allocZ bool) []pendingEvent {
	if allocZ {
		win.ZIndex = m.nextZLocked()
	}
	m.registry.ForEach(func(other *types.Window) {
		was := other.Focused
		other.Focused = other.ID == win.ID
		if other.Focused != was {
			m.view.UpdateWindow(*other)
		}
	})
	m.view.UpdateWindow(*win)
	return []pendingEvent{{events.WindowFocused, *win}}
}

func (m *Manager) restoreLocked(win *types.Window) []pendingEvent {
	win.Minimized = false
	pending := m.focusLocked(win, true)
	return append([]pendingEvent{{events.WindowRestored, *win}}, pending...)
}

func (m *Manager) syncTaskbarLocked() {
	m.taskbar.Sync(m.registry)
	m.view.SyncTaskbar(m.taskbar.Entries())
}

func (m *Manager) emitAll(pending []pendingEvent) {
	for _, p := range pending {
		m.bus.Emit(p.name, p.win)
	}
}

func (m *Manager) countOp(op string) {
	if m.metrics != nil {
		m.metrics.WindowOps.WithLabelValues(op).Inc()
	}
}

// SetScreenSize updates the logical desktop dimensions, typically from
// a client viewport report.
func (m *Manager) SetScreenSize(width, height int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if width > 0 {
		m.screen.Width = width
	}
	if height > 0 {
		m.screen.Height = height
	}
}

// GetWindow returns a copy of the window for id.
func (m *Manager) GetWindow(id string) (types.Window, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	win, ok := m.registry.Get(id)
	if !ok {
		return types.Window{}, false
	}
	return *win, true
}

// Windows returns copies of every window, ordered by creation time.
func (m *Manager) Windows() []types.Window {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]types.Window, 0, m.registry.Size())
	m.registry.ForEach(func(win *types.Window) {
		out = append(out, *win)
	})
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// FocusedWindow returns a copy of the focused window, if one exists.
func (m *Manager) FocusedWindow() (types.Window, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var found *types.Window
	m.registry.ForEach(func(win *types.Window) {
		if win.Focused {
			found = win
		}
	})
	if found == nil {
		return types.Window{}, false
	}
	return *found, true
}

// TaskbarEntries returns the current taskbar state.
func (m *Manager) TaskbarEntries() []types.TaskbarEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.taskbar.Entries()
}

// Size reports the number of open windows.
func (m *Manager) Size() int {
	return m.registry.Size()
}
