// Package window implements the shell core's window state machine:
// the registry holding canonical window state, the manager that owns
// every mutation (create/dedup, focus, minimize/restore, close,
// pointer dragging with clamping, bounded z-index allocation with
// reindexing), and the taskbar reconciler.
//
// Rendering is behind the View interface so the state machine runs
// headlessly; the WebSocket hub is the production View and tests use
// a recording fake.
package window
