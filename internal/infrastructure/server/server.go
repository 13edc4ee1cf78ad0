// Package server wires the shell core together: domain managers, the
// WebSocket hub acting as the render view, the REST surface, and
// middleware. One Server is one shell instance.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/blackroad/shell/internal/api/http"
	"github.com/blackroad/shell/internal/api/middleware"
	"github.com/blackroad/shell/internal/api/ws"
	"github.com/blackroad/shell/internal/domain/app"
	"github.com/blackroad/shell/internal/domain/events"
	"github.com/blackroad/shell/internal/domain/notify"
	"github.com/blackroad/shell/internal/domain/palette"
	"github.com/blackroad/shell/internal/domain/window"
	"github.com/blackroad/shell/internal/infrastructure/config"
	"github.com/blackroad/shell/internal/infrastructure/logging"
	"github.com/blackroad/shell/internal/infrastructure/monitoring"
)

// Server hosts one shell instance.
type Server struct {
	router  *gin.Engine
	httpSrv *http.Server
	ctx     *app.Context
	bus     *events.Bus
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// NewServer builds and wires a shell instance from configuration.
func NewServer(cfg *config.Config) (*Server, error) {
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("initializing BlackRoad OS shell",
		zap.String("port", cfg.Server.Port),
		zap.Int("screen_width", cfg.Screen.Width),
		zap.Int("screen_height", cfg.Screen.Height),
	)

	metrics := monitoring.NewMetrics()
	bus := events.New(logger).WithMetrics(metrics)
	bus.Emit(events.OSBoot, nil)

	hub := ws.NewHub(logger).WithMetrics(metrics)
	hub.ForwardBus(bus)

	windows := window.NewManager(cfg, window.NewRegistry(), bus, hub, logger).WithMetrics(metrics)
	notifications := notify.NewCenter(bus, cfg.Notify.DefaultDuration, logger).WithMetrics(metrics)
	apps := app.NewRegistry(logger)

	shellCtx := &app.Context{
		Windows:       windows,
		Bus:           bus,
		Notifications: notifications,
		Apps:          apps,
		Config:        cfg,
		Log:           logger,
	}
	apps.Bind(shellCtx)

	pal := palette.New(apps, shellCtx, cfg.Seed.CollectionsPath, logger).WithMetrics(metrics)
	shellCtx.Palette = pal

	if err := app.NewSeeder(apps, cfg.Seed.AppsDir).Seed(); err != nil {
		return nil, fmt.Errorf("failed to seed apps: %w", err)
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(monitoring.Middleware(metrics))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit))
	}

	s := &Server{
		router:  router,
		ctx:     shellCtx,
		bus:     bus,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}
	s.registerRoutes(hub)

	bus.Emit(events.OSReady, nil)
	logger.Info("shell ready", zap.Int("apps", apps.Size()))
	return s, nil
}

func (s *Server) registerRoutes(hub *ws.Hub) {
	h := apihttp.NewHandlers(s.ctx)
	wsHandler := ws.NewHandler(hub, s.ctx)

	s.router.GET("/health", h.Health)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/ws", wsHandler.HandleConnection)

	s.router.GET("/windows", h.ListWindows)
	s.router.POST("/windows", h.CreateWindow)
	s.router.POST("/windows/:id/focus", h.FocusWindow)
	s.router.POST("/windows/:id/minimize", h.MinimizeWindow)
	s.router.POST("/windows/:id/restore", h.RestoreWindow)
	s.router.DELETE("/windows/:id", h.CloseWindow)
	s.router.GET("/taskbar", h.Taskbar)

	s.router.GET("/apps", h.ListApps)
	s.router.POST("/apps/:id/launch", h.LaunchApp)

	s.router.POST("/notifications", h.ShowNotification)
	s.router.GET("/notifications", h.ListNotifications)
	s.router.DELETE("/notifications/:id", h.DismissNotification)

	s.router.GET("/palette/search", h.PaletteSearch)
	s.router.POST("/palette/execute", h.PaletteExecute)

	s.router.POST("/theme", h.SetTheme)
}

// Context returns the shell context, used to register built-in apps
// before Run.
func (s *Server) Context() *app.Context {
	return s.ctx
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.httpSrv = &http.Server{Addr: addr, Handler: s.router}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	return s.httpSrv.Shutdown(shutdownCtx)
}

// Close releases resources.
func (s *Server) Close() error {
	s.bus.RemoveAll()
	return s.logger.Sync()
}
