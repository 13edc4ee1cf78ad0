// Package http exposes the shell core's REST surface. Unknown-id
// operations map to 404; the domain itself treats them as warned
// no-ops.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blackroad/shell/internal/domain/app"
	"github.com/blackroad/shell/internal/domain/palette"
	"github.com/blackroad/shell/internal/domain/window"
	"github.com/blackroad/shell/internal/shared/types"
)

// Handlers bundles the REST handlers over the shell context.
type Handlers struct {
	ctx *app.Context
}

// NewHandlers creates the handler set.
func NewHandlers(ctx *app.Context) *Handlers {
	return &Handlers{ctx: ctx}
}

// Health reports liveness and a few shell stats.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"windows": h.ctx.Windows.Size(),
		"apps":    h.ctx.Apps.Size(),
		"theme":   h.ctx.Theme(),
	})
}

// ListWindows returns every window, oldest first.
func (h *Handlers) ListWindows(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"windows": h.ctx.Windows.Windows()})
}

// CreateWindow creates (or reuses) a window.
func (h *Handlers) CreateWindow(c *gin.Context) {
	var req types.CreateWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := h.ctx.Windows.CreateWindow(window.CreateOptions{
		ID:        req.ID,
		Title:     req.Title,
		Icon:      req.Icon,
		Content:   req.Content,
		Width:     req.Width,
		Height:    req.Height,
		X:         req.X,
		Y:         req.Y,
		Toolbar:   req.Toolbar,
		StatusBar: req.StatusBar,
		NoPadding: req.NoPadding,
	})
	win, _ := h.ctx.Windows.GetWindow(id)
	c.JSON(http.StatusOK, gin.H{"window_id": id, "window": win})
}

// FocusWindow brings a window to the front.
func (h *Handlers) FocusWindow(c *gin.Context) {
	h.windowOp(c, h.ctx.Windows.FocusWindow)
}

// MinimizeWindow hides a window.
func (h *Handlers) MinimizeWindow(c *gin.Context) {
	h.windowOp(c, h.ctx.Windows.MinimizeWindow)
}

// RestoreWindow un-minimizes and focuses a window.
func (h *Handlers) RestoreWindow(c *gin.Context) {
	h.windowOp(c, h.ctx.Windows.RestoreWindow)
}

// CloseWindow destroys a window.
func (h *Handlers) CloseWindow(c *gin.Context) {
	h.windowOp(c, h.ctx.Windows.CloseWindow)
}

func (h *Handlers) windowOp(c *gin.Context, op func(string) bool) {
	id := c.Param("id")
	if !op(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "window not found", "window_id": id})
		return
	}
	win, ok := h.ctx.Windows.GetWindow(id)
	if !ok {
		// Closed: nothing left to return.
		c.JSON(http.StatusOK, gin.H{"window_id": id})
		return
	}
	c.JSON(http.StatusOK, gin.H{"window": win})
}

// Taskbar returns the reconciled taskbar entries.
func (h *Handlers) Taskbar(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entries": h.ctx.Windows.TaskbarEntries()})
}

// ListApps returns registered app descriptions.
func (h *Handlers) ListApps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"apps": h.ctx.Apps.List()})
}

// LaunchApp runs an app's entry point.
func (h *Handlers) LaunchApp(c *gin.Context) {
	id := c.Param("id")
	if err := h.ctx.Apps.Launch(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"launched": id})
}

// ShowNotification displays a toast.
func (h *Handlers) ShowNotification(c *gin.Context) {
	var opts types.NotificationOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := h.ctx.Notifications.Show(opts)
	c.JSON(http.StatusOK, gin.H{"notification_id": id})
}

// ListNotifications returns live toasts.
func (h *Handlers) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.ctx.Notifications.Active()})
}

// DismissNotification removes a toast.
func (h *Handlers) DismissNotification(c *gin.Context) {
	id := c.Param("id")
	if !h.ctx.Notifications.Dismiss(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dismissed": id})
}

// PaletteSearch runs a palette query.
func (h *Handlers) PaletteSearch(c *gin.Context) {
	results := h.ctx.Palette.Search(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// PaletteExecute runs a selected palette result.
func (h *Handlers) PaletteExecute(c *gin.Context) {
	var req struct {
		Kind palette.Kind `json:"kind"`
		ID   string       `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.ctx.Palette.Execute(req.Kind, req.ID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"executed": req.ID})
}

// SetTheme switches the active theme.
func (h *Handlers) SetTheme(c *gin.Context) {
	var req struct {
		Theme string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.ctx.SetTheme(req.Theme)
	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}
