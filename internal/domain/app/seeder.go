package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/blackroad/shell/internal/domain/window"
)

// seedManifest is the on-disk form of a declarative app: metadata plus
// the window it opens. Entry points for seeded apps are generated.
type seedManifest struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
	Window      struct {
		Width     int    `yaml:"width"`
		Height    int    `yaml:"height"`
		Content   string `yaml:"content"`
		Toolbar   bool   `yaml:"toolbar"`
		StatusBar bool   `yaml:"status_bar"`
		NoPadding bool   `yaml:"no_padding"`
	} `yaml:"window"`
}

// Seeder loads declarative app manifests from a directory.
type Seeder struct {
	registry *Registry
	appsDir  string
}

// NewSeeder creates a seeder over appsDir.
func NewSeeder(registry *Registry, appsDir string) *Seeder {
	return &Seeder{registry: registry, appsDir: appsDir}
}

// Seed registers every *.yaml manifest under the apps directory. A
// missing directory is fine; a bad manifest is skipped with a log
// line, it never aborts the boot.
func (s *Seeder) Seed() error {
	if _, err := os.Stat(s.appsDir); os.IsNotExist(err) {
		s.registry.log.Info("no apps directory, skipping seed",
			zap.String("dir", s.appsDir))
		return nil
	}

	var loaded, failed int
	err := filepath.Walk(s.appsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(info.Name(), ".yaml") {
			return nil
		}
		if err := s.loadManifest(path); err != nil {
			s.registry.log.Warn("skipping app manifest",
				zap.String("path", path), zap.Error(err))
			failed++
			return nil
		}
		loaded++
		return nil
	})
	if err != nil {
		return err
	}

	s.registry.log.Info("app seeding complete",
		zap.Int("loaded", loaded), zap.Int("failed", failed))
	return nil
}

func (s *Seeder) loadManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var seed seedManifest
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return err
	}

	return s.registry.Register(Manifest{
		ID:          seed.ID,
		Name:        seed.Name,
		Icon:        seed.Icon,
		Description: seed.Description,
		Entry:       seededEntry(seed),
	})
}

// seededEntry opens the manifest's window. The window reuses the app
// ID, so relaunching a seeded app focuses the window it already has.
func seededEntry(seed seedManifest) EntryFunc {
	return func(ctx *Context) error {
		ctx.Windows.CreateWindow(window.CreateOptions{
			ID:        "app-" + seed.ID,
			Title:     seed.Name,
			Icon:      seed.Icon,
			Content:   seed.Window.Content,
			Width:     seed.Window.Width,
			Height:    seed.Window.Height,
			Toolbar:   seed.Window.Toolbar,
			StatusBar: seed.Window.StatusBar,
			NoPadding: seed.Window.NoPadding,
		})
		return nil
	}
}
