package types

import "time"

// Position is a window's top-left corner in screen coordinates.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a window's outer dimensions in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Chrome describes which title-bar controls a window renders.
// Maximize is always present but disabled; there is no operation
// that enables it.
type Chrome struct {
	Minimize bool `json:"minimize"`
	Maximize bool `json:"maximize"`
	Close    bool `json:"close"`
}

// DefaultChrome returns the standard control set.
func DefaultChrome() Chrome {
	return Chrome{Minimize: true, Maximize: false, Close: true}
}

// Window represents one managed application surface.
// It is owned exclusively by the window registry; all mutation goes
// through the window manager.
type Window struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Icon      string    `json:"icon"`
	Minimized bool      `json:"minimized"`
	Focused   bool      `json:"focused"`
	ZIndex    int       `json:"z_index"`
	Position  Position  `json:"position"`
	Size      Size      `json:"size"`
	Chrome    Chrome    `json:"chrome"`
	Toolbar   bool      `json:"toolbar"`
	StatusBar bool      `json:"status_bar"`
	NoPadding bool      `json:"no_padding"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskbarEntry mirrors one window's existence on the taskbar.
type TaskbarEntry struct {
	WindowID  string `json:"window_id"`
	Title     string `json:"title"`
	Icon      string `json:"icon"`
	Active    bool   `json:"active"`
	Minimized bool   `json:"minimized"`
}
