package types

// CreateWindowRequest is the wire form of a window creation call.
// X and Y are pointers so "unset" is distinguishable from the origin;
// unset means centered with a cascade offset.
type CreateWindowRequest struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Icon      string `json:"icon"`
	Content   string `json:"content"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
	X         *int   `json:"x,omitempty"`
	Y         *int   `json:"y,omitempty"`
	Toolbar   bool   `json:"toolbar,omitempty"`
	StatusBar bool   `json:"status_bar,omitempty"`
	NoPadding bool   `json:"no_padding,omitempty"`
}

// WSMessage is the envelope for client-to-shell WebSocket traffic.
type WSMessage struct {
	Type     string `json:"type"`
	WindowID string `json:"window_id,omitempty"`
	X        int    `json:"x,omitempty"`
	Y        int    `json:"y,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Key      string `json:"key,omitempty"`
	Query    string `json:"query,omitempty"`
	Kind     string `json:"kind,omitempty"`
	TargetID string `json:"target_id,omitempty"`

	Create *CreateWindowRequest `json:"create,omitempty"`
	Notify *NotificationOptions `json:"notify,omitempty"`
}
