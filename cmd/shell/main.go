// Command shell runs the BlackRoad OS shell core: the window manager,
// event bus, notification center, and command palette behind a REST +
// WebSocket surface for the browser frontend.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/blackroad/shell/internal/infrastructure/config"
	"github.com/blackroad/shell/internal/infrastructure/server"
)

func main() {
	cfg := config.LoadOrDefault()

	srv, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("failed to start shell: %v", err)
	}
	defer srv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("shell exited: %v", err)
	}
}
