package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackroad/shell/internal/domain/events"
	"github.com/blackroad/shell/internal/domain/window"
	"github.com/blackroad/shell/internal/infrastructure/config"
	"github.com/blackroad/shell/internal/infrastructure/logging"
)

func newTestContext() *Context {
	cfg := config.Default()
	bus := events.New(logging.NewNop())
	wm := window.NewManager(cfg, window.NewRegistry(), bus, window.NopView{}, logging.NewNop())
	reg := NewRegistry(logging.NewNop())

	ctx := &Context{
		Windows: wm,
		Bus:     bus,
		Apps:    reg,
		Config:  cfg,
		Log:     logging.NewNop(),
	}
	reg.Bind(ctx)
	return ctx
}

func TestRegisterAndLaunch(t *testing.T) {
	ctx := newTestContext()

	launched := false
	err := ctx.Apps.Register(Manifest{
		ID:   "prism",
		Name: "Prism Console",
		Entry: func(c *Context) error {
			launched = true
			c.Windows.CreateWindow(window.CreateOptions{ID: "app-prism", Title: "Prism Console"})
			return nil
		},
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := ctx.Apps.Launch("prism"); err != nil {
		t.Fatalf("launch failed: %v", err)
	}
	if !launched {
		t.Error("entry point should run")
	}
	if _, ok := ctx.Windows.GetWindow("app-prism"); !ok {
		t.Error("entry should have opened a window")
	}
}

func TestLaunchUnknownApp(t *testing.T) {
	ctx := newTestContext()

	if err := ctx.Apps.Launch("ghost"); err == nil {
		t.Error("launching an unknown app should report an error")
	}
}

func TestRegisterValidation(t *testing.T) {
	reg := NewRegistry(logging.NewNop())

	if err := reg.Register(Manifest{Name: "No ID", Entry: func(*Context) error { return nil }}); err == nil {
		t.Error("empty ID should be rejected")
	}
	if err := reg.Register(Manifest{ID: "no-entry"}); err == nil {
		t.Error("missing entry should be rejected")
	}
}

func TestListPreservesOrder(t *testing.T) {
	reg := NewRegistry(logging.NewNop())
	noop := func(*Context) error { return nil }

	reg.Register(Manifest{ID: "b", Name: "B", Entry: noop})
	reg.Register(Manifest{ID: "a", Name: "A", Entry: noop})
	reg.Register(Manifest{ID: "b", Name: "B2", Entry: noop}) // replace keeps position

	list := reg.List()
	if len(list) != 2 || list[0].ID != "b" || list[1].ID != "a" {
		t.Errorf("expected registration order [b a], got %v", list)
	}
	if list[0].Name != "B2" {
		t.Error("re-registration should replace the manifest")
	}
}

func TestSeeder(t *testing.T) {
	ctx := newTestContext()

	dir := t.TempDir()
	manifest := `
id: miners
name: Miners Dashboard
icon: "⛏"
description: Hashrate overview
window:
  width: 900
  height: 620
  content: "<h1>Miners</h1>"
`
	if err := os.WriteFile(filepath.Join(dir, "miners.yaml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("{unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := NewSeeder(ctx.Apps, dir).Seed(); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if ctx.Apps.Size() != 1 {
		t.Errorf("expected 1 seeded app, got %d", ctx.Apps.Size())
	}

	if err := ctx.Apps.Launch("miners"); err != nil {
		t.Fatalf("launching seeded app failed: %v", err)
	}
	win, ok := ctx.Windows.GetWindow("app-miners")
	if !ok {
		t.Fatal("seeded app should open its window")
	}
	if win.Size.Width != 900 || win.Size.Height != 620 {
		t.Errorf("manifest window size not applied: %+v", win.Size)
	}

	// Relaunch reuses the window.
	ctx.Apps.Launch("miners")
	if ctx.Windows.Size() != 1 {
		t.Errorf("relaunch should reuse the window, got %d windows", ctx.Windows.Size())
	}
}

func TestSeederMissingDir(t *testing.T) {
	ctx := newTestContext()
	if err := NewSeeder(ctx.Apps, "/nonexistent/apps").Seed(); err != nil {
		t.Errorf("missing apps dir should not be an error, got %v", err)
	}
}

func TestSetTheme(t *testing.T) {
	ctx := newTestContext()

	var got string
	events.SubscribeTyped(ctx.Bus, events.ThemeChanged, func(name string) { got = name })

	ctx.SetTheme("light")
	if got != "light" {
		t.Errorf("theme change should be announced, got %q", got)
	}
	if ctx.Theme() != "light" {
		t.Errorf("theme should be stored, got %q", ctx.Theme())
	}
}
