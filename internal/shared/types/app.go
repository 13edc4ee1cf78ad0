package types

// AppInfo is the public description of a registered app, as exposed to
// the taskbar launcher, the palette, and the REST surface. The entry
// function itself lives with the app registry and is never serialized.
type AppInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}
