package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/content"
	"portfolio/internal/state"
	"portfolio/internal/trace"
)

func newTestRoot(t *testing.T, args ...string) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	env := map[string]string{"PORTFOLIO_DIR": t.TempDir()}
	fs := &afero.Afero{Fs: afero.NewMemMapFs()}
	root := newRootCmd(fs, func(k string) string { return env[k] })

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	return root, out
}

func TestVersion(t *testing.T) {
	root, out := newTestRoot(t, "version")
	require.NoError(t, root.Execute())
	assert.Equal(t, "portfolio version dev\n", out.String())
}

func TestPrint_PlainHome(t *testing.T) {
	root, out := newTestRoot(t, "print", "--plain")
	require.NoError(t, root.Execute())

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "# "+content.Profile().Name+"\n"))
	assert.Contains(t, got, "[Email]("+content.MailTarget+")")
	assert.Contains(t, got, "### Skills")
	assert.Contains(t, got, "**Home** | Experience | Resume")
}

func TestPrint_PlainExperienceExpanded(t *testing.T) {
	root, out := newTestRoot(t, "print", "--plain", "--screen", "experience", "--expand", "1001")
	require.NoError(t, root.Execute())

	got := out.String()
	assert.Equal(t, 1, strings.Count(got, "_Show less_"))
	assert.Equal(t, 1, strings.Count(got, "_Show more_"))
	assert.Equal(t, 7+3, strings.Count(got, "\n- "))
	assert.Contains(t, got, "Home | **Experience** | Resume")
}

func TestPrint_StyledDark(t *testing.T) {
	root, out := newTestRoot(t, "print", "--screen", "resume", "--theme", "dark", "--width", "60")
	require.NoError(t, root.Execute())

	got := out.String()
	assert.Contains(t, got, "Education")
	assert.Contains(t, got, "Rockstar")
}

func TestPrint_InvalidFlags(t *testing.T) {
	tests := []struct {
		args []string
		is   error
	}{
		{[]string{"print", "--screen", "settings"}, state.ErrUnknownScreen},
		{[]string{"print", "--theme", "sepia"}, state.ErrUnknownTheme},
		{[]string{"print", "--expand", "42"}, content.ErrUnknownExperience},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			root, out := newTestRoot(t, tt.args...)
			err := root.Execute()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.is), "got %v", err)
			assert.Empty(t, out.String())
		})
	}
}

func TestConfigErrorStopsCommand(t *testing.T) {
	env := map[string]string{
		"PORTFOLIO_DIR":   t.TempDir(),
		"PORTFOLIO_MOUSE": "sometimes",
	}
	root := newRootCmd(&afero.Afero{Fs: afero.NewMemMapFs()}, func(k string) string { return env[k] })
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"print"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORTFOLIO_MOUSE")
}

func TestRootRejectsArgs(t *testing.T) {
	root, _ := newTestRoot(t, "bogus")
	require.Error(t, root.Execute())
}

func TestTracingErrorReleasesLog(t *testing.T) {
	env := map[string]string{"PORTFOLIO_DIR": t.TempDir()}
	rt := &runtime{
		fs:     &afero.Afero{Fs: afero.NewMemMapFs()},
		getenv: func(k string) string { return env[k] },
		newTracing: func(context.Context, trace.Config) (*trace.Provider, error) {
			return nil, errors.New("collector down")
		},
	}
	root := rt.rootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"print"})

	err := root.Execute()
	require.ErrorContains(t, err, "init tracing")
	assert.Nil(t, rt.logCloser)
	assert.Nil(t, rt.logger)
}

type fakeServer struct {
	errc    chan error
	stopped bool
}

func (f *fakeServer) Err() <-chan error { return f.errc }

func (f *fakeServer) Stop(context.Context) error {
	f.stopped = true
	return nil
}

func TestWaitServer(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("serve failure", func(t *testing.T) {
		srv := &fakeServer{errc: make(chan error, 1)}
		srv.errc <- errors.New("accept failed")
		err := waitServer(context.Background(), srv, logger)
		require.ErrorContains(t, err, "accept failed")
		assert.False(t, srv.stopped)
	})

	t.Run("shutdown", func(t *testing.T) {
		srv := &fakeServer{errc: make(chan error)}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.NoError(t, waitServer(ctx, srv, logger))
		assert.True(t, srv.stopped)
	})
}
