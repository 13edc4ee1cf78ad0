package window

import "github.com/blackroad/shell/internal/shared/types"

// View is the rendering port. The manager drives it on every visible
// state change; it never reads back from it. The WebSocket hub
// implements View for connected browsers, and tests substitute a fake,
// which keeps the state machine independent of any UI toolkit.
type View interface {
	// RenderWindow draws chrome and content for a newly created window.
	RenderWindow(win types.Window, content string)
	// UpdateWindow applies position, stacking, focus, and minimized
	// state for an existing window.
	UpdateWindow(win types.Window)
	// RemoveWindow tears down a window's representation.
	RemoveWindow(id string)
	// SyncTaskbar replaces the rendered taskbar with entries.
	SyncTaskbar(entries []types.TaskbarEntry)
}

// NopView discards all rendering. Used headless and in tests that do
// not assert on view traffic.
type NopView struct{}

func (NopView) RenderWindow(types.Window, string) {}
func (NopView) UpdateWindow(types.Window)         {}
func (NopView) RemoveWindow(string)               {}
func (NopView) SyncTaskbar([]types.TaskbarEntry)  {}
