package window

import (
	"sync"

	"github.com/blackroad/shell/internal/shared/types"
)

// Registry owns the canonical map of window ID to window state.
// It is storage only: every business rule lives in the Manager, and
// the Manager is the registry's single writer.
type Registry struct {
	mu      sync.RWMutex
	windows map[string]*types.Window
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{windows: make(map[string]*types.Window)}
}

// Register stores a window under its ID, replacing any previous entry.
func (r *Registry) Register(win *types.Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.windows[win.ID] = win
}

// Get returns the window for id.
func (r *Registry) Get(id string) (*types.Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	win, ok := r.windows[id]
	return win, ok
}

// Remove deletes the window for id. Removing an unknown id is a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.windows, id)
}

// ForEach calls fn for every registered window. Iteration order is not
// defined; callers needing order sort by z-index or creation time.
func (r *Registry) ForEach(fn func(*types.Window)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, win := range r.windows {
		fn(win)
	}
}

// Size reports the number of registered windows.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.windows)
}
