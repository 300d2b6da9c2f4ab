package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/unicafe/internal/infra/config"
	"github.com/yanqian/unicafe/internal/interface/cli"
)

const serveCommand = "serve"

// App dispatches between one-shot CLI lookups and the long running HTTP server.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	cli    *cli.App
	server *http.Server
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, cliApp *cli.App, server *http.Server) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), cli: cliApp, server: server}
}

// Run executes one invocation and returns the process exit status.
func (a *App) Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && args[0] == serveCommand {
		if len(args) > 1 {
			fmt.Fprintf(stderr, "error: serve takes no arguments\n")
			return cli.ExitUsage
		}
		if err := a.Serve(ctx); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return cli.ExitFailure
		}
		return cli.ExitOK
	}
	return a.cli.Run(ctx, args, stdout, stderr)
}

// Serve starts the HTTP server and blocks until shutdown.
func (a *App) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		return a.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
