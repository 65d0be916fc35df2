package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"portfolio/internal/config"
	"portfolio/internal/content"
	"portfolio/internal/launch"
	"portfolio/internal/logging"
	"portfolio/internal/state"
	"portfolio/internal/trace"
	"portfolio/internal/ui"
)

// runtime holds the process-wide services built before any command runs.
type runtime struct {
	fs     *afero.Afero
	getenv func(string) string

	cfg       config.Config
	logger    *slog.Logger
	logCloser io.Closer
	tracing   *trace.Provider

	newTracing func(context.Context, trace.Config) (*trace.Provider, error)
}

func newRootCmd(fs *afero.Afero, getenv func(string) string) *cobra.Command {
	return (&runtime{fs: fs, getenv: getenv, newTracing: trace.NewProvider}).rootCmd()
}

func (rt *runtime) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "portfolio",
		Short:         content.Profile().Name + "'s portfolio in the terminal",
		Long:          figure.NewFigure("portfolio", "standard", true).String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The TUI owns the terminal, so only subcommands log to stderr.
			return rt.setup(cmd.Context(), cmd, cmd == cmd.Root())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return rt.teardown()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.runTUI(cmd.Context())
		},
	}

	cmd.AddCommand(newServeCmd(rt))
	cmd.AddCommand(newPrintCmd(rt))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (rt *runtime) setup(ctx context.Context, cmd *cobra.Command, tui bool) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}
	cfg, err := config.Loader{FS: rt.fs, Getenv: rt.getenv, Home: home}.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	rt.cfg = cfg

	var stderr io.Writer
	if !tui {
		stderr = cmd.ErrOrStderr()
	}
	logger, closer, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel, Stderr: stderr})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	rt.logger, rt.logCloser = logger, closer

	tp, err := rt.newTracing(ctx, trace.Config{
		Endpoint:    cfg.OTLPEndpoint,
		ServiceName: cfg.ServiceName,
		Insecure:    cfg.OTLPInsecure,
	})
	if err != nil {
		// Cobra skips PersistentPostRunE when setup fails.
		closer.Close()
		rt.logger, rt.logCloser = nil, nil
		return fmt.Errorf("init tracing: %w", err)
	}
	rt.tracing = tp
	logger.Debug("started", "command", cmd.Name(), "tracing", tp.Enabled())
	return nil
}

func (rt *runtime) teardown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rt.tracing.Shutdown(ctx); err != nil && rt.logger != nil {
		rt.logger.Warn("trace shutdown failed", "error", err)
	}
	if rt.logCloser != nil {
		return rt.logCloser.Close()
	}
	return nil
}

// newStore creates a session store that traces and logs every event.
func (rt *runtime) newStore() *state.Store {
	return state.NewStore(
		state.WithTracer(rt.tracing.Tracer()),
		state.WithLogger(rt.logger.With("component", "state")),
	)
}

func (rt *runtime) runTUI(ctx context.Context) error {
	m := ui.NewAppModel(
		ui.WithStore(rt.newStore()),
		ui.WithOpener(launch.BrowserOpener{}),
		ui.WithLogger(rt.logger.With("component", "ui")),
		ui.WithContext(ctx),
	)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if rt.cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if rt.cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m.AsTeaModel(), opts...)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
