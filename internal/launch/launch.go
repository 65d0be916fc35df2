// Package launch hands external actions (mail composer, browser) to the host.
package launch

import (
	"context"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"portfolio/internal/content"
)

// Opener asks the host environment to open a target such as a mailto: or
// https: URL.
type Opener interface {
	Open(ctx context.Context, target string) error
}

// ResultMsg reports the outcome of an Open. The shell only logs it; a
// missing handler is the host's concern, not a UI error state.
type ResultMsg struct {
	Action content.Action
	Err    error
}

// OpenCmd returns a fire-and-forget command that opens the action's target.
func OpenCmd(ctx context.Context, o Opener, a content.Action) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Action: a, Err: o.Open(ctx, a.Target)}
	}
}

// BrowserOpener opens targets with the platform handler (xdg-open, open,
// rundll32). The handler's own output is discarded so it cannot draw over
// the terminal UI.
type BrowserOpener struct{}

var quietOnce sync.Once

// Open implements Opener.
func (BrowserOpener) Open(ctx context.Context, target string) error {
	quietOnce.Do(func() {
		browser.Stdout = io.Discard
		browser.Stderr = io.Discard
	})
	if err := ctx.Err(); err != nil {
		return err
	}
	return browser.OpenURL(target)
}

// RecordingOpener records targets instead of opening them.
type RecordingOpener struct {
	mu      sync.Mutex
	Targets []string
	Err     error // returned from every Open
}

// Open implements Opener.
func (r *RecordingOpener) Open(_ context.Context, target string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Targets = append(r.Targets, target)
	return r.Err
}

// Opened returns a copy of the recorded targets.
func (r *RecordingOpener) Opened() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.Targets...)
}
