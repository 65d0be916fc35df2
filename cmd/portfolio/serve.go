package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"portfolio/internal/web"
)

func newServeCmd(rt *runtime) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Long: `Serve a read-only HTML rendition of the portfolio.

The page state lives in the query string (screen, theme, expanded), so the
server keeps no session. GET /state returns the decoded state as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = rt.cfg.ListenAddr
			}
			return rt.serve(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	return cmd
}

func (rt *runtime) serve(ctx context.Context, addr string) error {
	gin.SetMode(gin.ReleaseMode)
	logger := rt.logger.With("component", "web")

	router, err := web.NewRouter(
		web.WithLogger(logger),
		web.WithTracer(rt.tracing.Tracer()),
	)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := web.NewServer(addr, router, logger)
	if err := srv.Start(); err != nil {
		return err
	}
	return waitServer(ctx, srv, logger)
}

type runningServer interface {
	Err() <-chan error
	Stop(ctx context.Context) error
}

// waitServer blocks until ctx is done or the server stops on its own.
func waitServer(ctx context.Context, srv runningServer, logger *slog.Logger) error {
	select {
	case err := <-srv.Err():
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}
