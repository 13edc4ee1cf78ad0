package types

import "time"

// NotificationType classifies a toast for styling.
type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyError   NotificationType = "error"
)

// NotificationOptions is the payload of a show-notification request.
// DurationMs nil means "use the configured default"; 0 means the toast
// is persistent and must be dismissed manually.
type NotificationOptions struct {
	Type       NotificationType `json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	DurationMs *int             `json:"duration,omitempty"`
}

// Notification is a live toast.
type Notification struct {
	ID         string           `json:"id"`
	Type       NotificationType `json:"type"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	DurationMs int              `json:"duration"`
	CreatedAt  time.Time        `json:"created_at"`
}
