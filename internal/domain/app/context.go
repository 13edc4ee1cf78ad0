package app

import (
	"sync"

	"github.com/blackroad/shell/internal/domain/events"
	"github.com/blackroad/shell/internal/domain/notify"
	"github.com/blackroad/shell/internal/domain/palette"
	"github.com/blackroad/shell/internal/domain/window"
	"github.com/blackroad/shell/internal/infrastructure/config"
	"github.com/blackroad/shell/internal/infrastructure/logging"
)

// Context is the shell surface passed into app entry points. One
// context exists per shell process; apps never construct their own.
type Context struct {
	Windows       *window.Manager
	Bus           *events.Bus
	Notifications *notify.Center
	Palette       *palette.Palette
	Apps          *Registry
	Config        *config.Config
	Log           *logging.Logger

	themeMu sync.Mutex
	theme   string
}

// LaunchApp satisfies the palette Runner.
func (c *Context) LaunchApp(id string) error {
	return c.Apps.Launch(id)
}

// OpenDocument opens a read-only content window for a palette result.
// The document ID doubles as the window ID, so reselecting an already
// open document focuses its window instead of opening another.
func (c *Context) OpenDocument(id, title, body string) error {
	c.Windows.CreateWindow(window.CreateOptions{
		ID:      id,
		Title:   title,
		Icon:    "📄",
		Content: body,
		Width:   520,
		Height:  420,
	})
	return nil
}

// SetTheme switches the active theme and announces it on the bus.
func (c *Context) SetTheme(name string) {
	c.themeMu.Lock()
	c.theme = name
	c.themeMu.Unlock()
	c.Bus.Emit(events.ThemeChanged, name)
}

// Theme returns the active theme name.
func (c *Context) Theme() string {
	c.themeMu.Lock()
	defer c.themeMu.Unlock()
	if c.theme == "" {
		return "dark"
	}
	return c.theme
}
