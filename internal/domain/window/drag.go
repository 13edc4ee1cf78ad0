package window

import (
	"go.uber.org/zap"

	"github.com/blackroad/shell/internal/shared/types"
)

// DragStart begins dragging a window from a title-bar pointer-down.
// The transport filters out hits on the control buttons before calling
// this. Dragging always focuses the window first. Starting a drag
// while one is active replaces it.
func (m *Manager) DragStart(id string, pointerX, pointerY int) bool {
	m.mu.Lock()
	win, ok := m.registry.Get(id)
	if !ok {
		m.mu.Unlock()
		m.log.Warn("drag: unknown window", zap.String("window_id", id))
		return false
	}

	pending := m.focusLocked(win, true)
	m.syncTaskbarLocked()
	m.drag = &dragState{
		id:      id,
		offsetX: pointerX - win.Position.X,
		offsetY: pointerY - win.Position.Y,
	}
	m.mu.Unlock()

	m.emitAll(pending)
	return true
}

// DragMove updates the dragged window's position from the current
// pointer location. The position is clamped so at least the configured
// margin of the window remains on-screen in each axis. A move with no
// active drag is ignored.
func (m *Manager) DragMove(pointerX, pointerY int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.drag == nil {
		return
	}
	win, ok := m.registry.Get(m.drag.id)
	if !ok {
		m.drag = nil
		return
	}

	win.Position = m.clamp(types.Position{
		X: pointerX - m.drag.offsetX,
		Y: pointerY - m.drag.offsetY,
	}, win.Size)
	m.view.UpdateWindow(*win)
}

// DragEnd finishes the active drag, if any.
func (m *Manager) DragEnd() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drag = nil
}

// Dragging reports the ID of the window being dragged.
func (m *Manager) Dragging() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.drag == nil {
		return "", false
	}
	return m.drag.id, true
}

// clamp keeps at least DragMargin pixels of the window visible per
// axis. The title bar can never leave the top edge.
func (m *Manager) clamp(pos types.Position, size types.Size) types.Position {
	margin := m.wincfg.DragMargin

	minX := margin - size.Width
	maxX := m.screen.Width - margin
	if pos.X < minX {
		pos.X = minX
	}
	if pos.X > maxX {
		pos.X = maxX
	}

	maxY := m.screen.Height - margin
	if pos.Y < 0 {
		pos.Y = 0
	}
	if pos.Y > maxY {
		pos.Y = maxY
	}
	return pos
}
