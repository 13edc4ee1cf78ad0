package events

// Name identifies an event on the bus.
type Name string

// Event names apps may rely on. Apps can also emit their own names;
// the bus does not restrict the namespace.
const (
	OSBoot            Name = "os:boot"
	OSReady           Name = "os:ready"
	WindowCreated     Name = "window:created"
	WindowFocused     Name = "window:focused"
	WindowMinimized   Name = "window:minimized"
	WindowRestored    Name = "window:restored"
	WindowClosed      Name = "window:closed"
	ThemeChanged      Name = "theme:changed"
	NotificationShown Name = "notification:shown"
)
