package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"portfolio/internal/content"
	"portfolio/internal/render"
	"portfolio/internal/state"
)

type printOptions struct {
	Screen string
	Theme  string
	Expand int
	Plain  bool
	Width  int
}

func newPrintCmd(rt *runtime) *cobra.Command {
	opts := printOptions{}

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print one screen without starting the UI",
		Example: `  portfolio print
  portfolio print --screen experience --expand 1001
  portfolio print --screen resume --theme dark --plain`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := rt.printState(cmd.Context(), opts)
			if err != nil {
				return err
			}
			out := render.Markdown(s)
			if !opts.Plain {
				if out, err = render.Terminal(s, opts.Width); err != nil {
					return err
				}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.Screen, "screen", "home", "screen to print: home, experience or resume")
	cmd.Flags().StringVar(&opts.Theme, "theme", "light", "theme: light or dark")
	cmd.Flags().IntVar(&opts.Expand, "expand", 0, "id of the experience card to expand")
	cmd.Flags().BoolVar(&opts.Plain, "plain", false, "print markdown without terminal styling")
	cmd.Flags().IntVar(&opts.Width, "width", 80, "word wrap width")
	return cmd
}

// printState reaches the requested state from the initial one by
// dispatching the same events the UI would.
func (rt *runtime) printState(ctx context.Context, opts printOptions) (state.AppState, error) {
	screen, err := state.ParseScreen(opts.Screen)
	if err != nil {
		return state.AppState{}, err
	}
	theme, err := state.ParseTheme(opts.Theme)
	if err != nil {
		return state.AppState{}, err
	}

	store := rt.newStore()
	store.Dispatch(ctx, state.SelectScreen{Target: screen})
	if theme != store.State().Theme {
		store.Dispatch(ctx, state.ToggleTheme{})
	}
	if opts.Expand != 0 {
		if _, err := content.ExperienceByID(opts.Expand); err != nil {
			return state.AppState{}, err
		}
		store.Dispatch(ctx, state.ToggleExpansion{ID: opts.Expand})
	}
	return store.State(), nil
}
