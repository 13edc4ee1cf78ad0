package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all shell configuration.
type Config struct {
	Server    ServerConfig
	Screen    ScreenConfig
	ZOrder    ZOrderConfig
	Windows   WindowConfig
	Notify    NotifyConfig
	Seed      SeedConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// ScreenConfig holds the logical desktop dimensions used for window
// centering and drag clamping. Clients report their real viewport over
// the WebSocket; these are the pre-connect defaults.
type ScreenConfig struct {
	Width  int `envconfig:"SCREEN_WIDTH" default:"1920"`
	Height int `envconfig:"SCREEN_HEIGHT" default:"1080"`
}

// ZOrderConfig bounds the z-index counter. When the counter would pass
// Max, open windows are reindexed from Base in their existing order.
type ZOrderConfig struct {
	Base int `envconfig:"ZINDEX_BASE" default:"100"`
	Max  int `envconfig:"ZINDEX_MAX" default:"9999"`
}

// WindowConfig holds window placement and drag defaults.
type WindowConfig struct {
	DefaultWidth  int `envconfig:"WINDOW_DEFAULT_WIDTH" default:"800"`
	DefaultHeight int `envconfig:"WINDOW_DEFAULT_HEIGHT" default:"600"`
	CascadeStep   int `envconfig:"WINDOW_CASCADE_STEP" default:"30"`
	CascadeWrap   int `envconfig:"WINDOW_CASCADE_WRAP" default:"100"`
	DragMargin    int `envconfig:"WINDOW_DRAG_MARGIN" default:"100"`
}

// NotifyConfig holds notification defaults.
type NotifyConfig struct {
	DefaultDuration time.Duration `envconfig:"TOAST_DURATION" default:"5s"`
}

// SeedConfig points at on-disk seed content: declarative app manifests
// and the palette's searchable collections.
type SeedConfig struct {
	AppsDir         string `envconfig:"APPS_DIR" default:"./apps"`
	CollectionsPath string `envconfig:"COLLECTIONS_PATH" default:"./collections.toml"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns defaults.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Port: "8080", Host: "0.0.0.0"},
		Screen:    ScreenConfig{Width: 1920, Height: 1080},
		ZOrder:    ZOrderConfig{Base: 100, Max: 9999},
		Windows:   WindowConfig{DefaultWidth: 800, DefaultHeight: 600, CascadeStep: 30, CascadeWrap: 100, DragMargin: 100},
		Notify:    NotifyConfig{DefaultDuration: 5 * time.Second},
		Seed:      SeedConfig{AppsDir: "./apps", CollectionsPath: "./collections.toml"},
		Logging:   LogConfig{Level: "info", Development: false},
		RateLimit: RateLimitConfig{RequestsPerSecond: 100, Burst: 200, Enabled: true},
	}
}
