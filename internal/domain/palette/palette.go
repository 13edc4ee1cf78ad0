// Package palette implements the global command palette: a fuzzy
// launcher over registered apps plus two searchable content
// collections (captured notes and creative project titles).
package palette

import (
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sahilm/fuzzy"

	"github.com/blackroad/shell/internal/infrastructure/logging"
	"github.com/blackroad/shell/internal/infrastructure/monitoring"
	"github.com/blackroad/shell/internal/shared/types"
)

// Non-app result groups are capped so apps stay prominent.
const groupCap = 5

const recentsSize = 16

// Kind classifies a palette result.
type Kind string

const (
	KindApp     Kind = "app"
	KindNote    Kind = "note"
	KindProject Kind = "project"
)

// Result is one selectable palette row.
type Result struct {
	Kind     Kind   `json:"kind"`
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	Icon     string `json:"icon,omitempty"`
}

// Index lists the apps the palette can launch.
type Index interface {
	Apps() []types.AppInfo
}

// Runner executes a selected result.
type Runner interface {
	LaunchApp(id string) error
	OpenDocument(id, title, body string) error
}

// Palette is the search surface. Collections load lazily on first use,
// so a shell that never opens the palette never reads them.
type Palette struct {
	mu      sync.Mutex
	open    bool
	built   bool
	index   Index
	runner  Runner
	log     *logging.Logger
	metrics *monitoring.Metrics

	collectionsPath string
	notes           []Note
	projects        []Project
	recents         *lru.Cache[string, struct{}]
}

// New creates a palette over the given app index and runner.
func New(index Index, runner Runner, collectionsPath string, log *logging.Logger) *Palette {
	recents, _ := lru.New[string, struct{}](recentsSize)
	return &Palette{
		index:           index,
		runner:          runner,
		log:             log,
		collectionsPath: collectionsPath,
		recents:         recents,
	}
}

// WithMetrics adds metrics tracking to the palette.
func (p *Palette) WithMetrics(metrics *monitoring.Metrics) *Palette {
	p.metrics = metrics
	return p
}

// Toggle opens the palette if closed and closes it if open, returning
// the new state.
func (p *Palette) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.buildLocked()
	p.open = !p.open
	return p.open
}

// Close closes the palette with no other side effects. Backs Escape.
func (p *Palette) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.open = false
}

// IsOpen reports whether the palette is showing.
func (p *Palette) IsOpen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.open
}

// buildLocked loads the searchable collections once.
func (p *Palette) buildLocked() {
	if p.built {
		return
	}
	p.notes, p.projects = LoadCollections(p.collectionsPath, p.log)
	p.built = true
}

// Search recomputes results for query. Matching is case-insensitive;
// an empty query lists every app, recently launched first. Note and
// project groups are capped and omitted for the empty query.
func (p *Palette) Search(query string) []Result {
	p.mu.Lock()
	p.buildLocked()
	apps := p.index.Apps()
	notes := p.notes
	projects := p.projects
	recent := func(id string) bool { _, ok := p.recents.Get(id); return ok }
	p.mu.Unlock()

	if p.metrics != nil {
		p.metrics.PaletteSearches.Inc()
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return p.allApps(apps, recent)
	}

	var results []Result
	results = append(results, matchGroup(query, apps, func(a types.AppInfo) (string, Result) {
		return a.Name + " " + a.Description, Result{Kind: KindApp, ID: a.ID, Title: a.Name, Subtitle: a.Description, Icon: a.Icon}
	}, len(apps))...)
	results = append(results, matchGroup(query, notes, func(n Note) (string, Result) {
		return n.Title, Result{Kind: KindNote, ID: n.ID, Title: n.Title, Icon: "📝"}
	}, groupCap)...)
	results = append(results, matchGroup(query, projects, func(pr Project) (string, Result) {
		return pr.Title, Result{Kind: KindProject, ID: pr.ID, Title: pr.Title, Subtitle: pr.Summary, Icon: "🎨"}
	}, groupCap)...)
	return results
}

func (p *Palette) allApps(apps []types.AppInfo, recent func(string) bool) []Result {
	sorted := make([]types.AppInfo, len(apps))
	copy(sorted, apps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return recent(sorted[i].ID) && !recent(sorted[j].ID)
	})

	results := make([]Result, 0, len(sorted))
	for _, a := range sorted {
		results = append(results, Result{Kind: KindApp, ID: a.ID, Title: a.Name, Subtitle: a.Description, Icon: a.Icon})
	}
	return results
}

// matchGroup fuzzy-matches query against one candidate group, keeping
// fuzzy's rank order and capping the result count.
func matchGroup[T any](query string, items []T, describe func(T) (string, Result), limit int) []Result {
	haystack := make([]string, len(items))
	rows := make([]Result, len(items))
	for i, item := range items {
		text, row := describe(item)
		haystack[i] = strings.ToLower(text)
		rows[i] = row
	}

	matches := fuzzy.Find(strings.ToLower(query), haystack)
	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		if len(results) >= limit {
			break
		}
		results = append(results, rows[m.Index])
	}
	return results
}

// Execute runs a selected result and closes the palette. Launched apps
// are remembered so the empty-query listing surfaces them first.
func (p *Palette) Execute(kind Kind, id string) error {
	p.mu.Lock()
	p.buildLocked()
	notes := p.notes
	projects := p.projects
	p.mu.Unlock()

	var err error
	switch kind {
	case KindApp:
		err = p.runner.LaunchApp(id)
		if err == nil {
			p.mu.Lock()
			p.recents.Add(id, struct{}{})
			p.mu.Unlock()
		}
	case KindNote:
		for _, n := range notes {
			if n.ID == id {
				err = p.runner.OpenDocument("note-"+n.ID, n.Title, n.Body)
				break
			}
		}
	case KindProject:
		for _, pr := range projects {
			if pr.ID == id {
				err = p.runner.OpenDocument("project-"+pr.ID, pr.Title, pr.Summary)
				break
			}
		}
	}

	if p.metrics != nil && err == nil {
		p.metrics.PaletteLaunches.Inc()
	}
	p.Close()
	return err
}
