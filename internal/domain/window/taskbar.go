package window

import (
	"sort"

	"github.com/blackroad/shell/internal/shared/types"
)

// Taskbar mirrors the registry onto an ordered list of buttons.
// Sync reconciles rather than rebuilds so existing entries keep their
// position; it is idempotent and safe to call redundantly.
type Taskbar struct {
	entries []types.TaskbarEntry
}

// Sync reconciles the entry list against the registry: entries whose
// window no longer exists are dropped, surviving entries get their
// active/minimized state refreshed, and windows without an entry are
// appended in creation order.
func (t *Taskbar) Sync(reg *Registry) {
	kept := t.entries[:0]
	seen := make(map[string]bool, len(t.entries))

	for _, e := range t.entries {
		win, ok := reg.Get(e.WindowID)
		if !ok {
			continue
		}
		e.Title = win.Title
		e.Icon = win.Icon
		e.Active = win.Focused
		e.Minimized = win.Minimized
		kept = append(kept, e)
		seen[e.WindowID] = true
	}

	var missing []*types.Window
	reg.ForEach(func(win *types.Window) {
		if !seen[win.ID] {
			missing = append(missing, win)
		}
	})
	sort.Slice(missing, func(i, j int) bool {
		return missing[i].CreatedAt.Before(missing[j].CreatedAt)
	})
	for _, win := range missing {
		kept = append(kept, types.TaskbarEntry{
			WindowID:  win.ID,
			Title:     win.Title,
			Icon:      win.Icon,
			Active:    win.Focused,
			Minimized: win.Minimized,
		})
	}

	t.entries = kept
}

// Entries returns a copy of the current entry list.
func (t *Taskbar) Entries() []types.TaskbarEntry {
	out := make([]types.TaskbarEntry, len(t.entries))
	copy(out, t.entries)
	return out
}
