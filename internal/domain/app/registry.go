// Package app hosts the app manifest registry, the launch dispatcher,
// and the shell Context handed to every app entry point. Apps receive
// their collaborators through the Context instead of reaching into
// process globals.
package app

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/blackroad/shell/internal/infrastructure/logging"
	"github.com/blackroad/shell/internal/shared/types"
)

// EntryFunc is an app's entry point, invoked on launch with the shell
// context.
type EntryFunc func(ctx *Context) error

// Manifest describes one registrable app.
type Manifest struct {
	ID          string
	Name        string
	Icon        string
	Description string
	Entry       EntryFunc
}

// Registry holds registered app manifests in registration order.
type Registry struct {
	mu        sync.RWMutex
	manifests map[string]Manifest
	order     []string
	ctx       *Context
	log       *logging.Logger
}

// NewRegistry creates an empty app registry.
func NewRegistry(log *logging.Logger) *Registry {
	return &Registry{
		manifests: make(map[string]Manifest),
		log:       log,
	}
}

// Bind attaches the shell context that Launch passes to entry points.
// Called once during boot, after the context is fully wired.
func (r *Registry) Bind(ctx *Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ctx = ctx
}

// Register adds an app manifest. Re-registering an ID replaces the
// manifest but keeps its position.
func (r *Registry) Register(m Manifest) error {
	if m.ID == "" {
		return fmt.Errorf("app ID is required")
	}
	if m.Entry == nil {
		return fmt.Errorf("app %s has no entry point", m.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.manifests[m.ID]; !exists {
		r.order = append(r.order, m.ID)
	}
	r.manifests[m.ID] = m
	return nil
}

// Get retrieves a manifest by ID.
func (r *Registry) Get(id string) (Manifest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.manifests[id]
	return m, ok
}

// List returns app descriptions in registration order.
func (r *Registry) List() []types.AppInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.AppInfo, 0, len(r.order))
	for _, id := range r.order {
		m := r.manifests[id]
		out = append(out, types.AppInfo{ID: m.ID, Name: m.Name, Icon: m.Icon, Description: m.Description})
	}
	return out
}

// Apps satisfies the palette's app index.
func (r *Registry) Apps() []types.AppInfo {
	return r.List()
}

// Launch invokes the entry point for id. Unknown IDs are logged and
// reported, never fatal.
func (r *Registry) Launch(id string) error {
	r.mu.RLock()
	m, ok := r.manifests[id]
	ctx := r.ctx
	r.mu.RUnlock()

	if !ok {
		r.log.Warn("launch: unknown app", zap.String("app_id", id))
		return fmt.Errorf("unknown app: %s", id)
	}
	if ctx == nil {
		return fmt.Errorf("app registry not bound to a shell context")
	}

	if err := m.Entry(ctx); err != nil {
		r.log.Error("app entry failed", zap.String("app_id", id), zap.Error(err))
		return err
	}
	return nil
}

// Size reports the number of registered apps.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.manifests)
}
