// Package prompt provides the interactive tool picker.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// ErrAborted is returned when the user cancels the prompt.
var ErrAborted = errors.New("selection aborted")

// ErrNotTerminal is returned when stdin cannot drive an interactive prompt.
var ErrNotTerminal = errors.New("interactive selection needs a terminal; pass tool names or --all")

// Choice is one selectable entry.
type Choice struct {
	Label       string
	Value       string
	Description string
}

// Seams for tests.
var (
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	runForm    = func(ctx context.Context, f *huh.Form) error { return f.RunWithContext(ctx) }
)

// Options converts choices to huh options, all pre-selected.
func Options(choices []Choice) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(choices))
	for _, c := range choices {
		key := c.Label
		if c.Description != "" {
			key = fmt.Sprintf("%s  %s", c.Label, c.Description)
		}
		opts = append(opts, huh.NewOption(key, c.Value).Selected(true))
	}
	return opts
}

// MultiSelect asks the user to pick any number of choices. Space toggles,
// Enter confirms. The selected values are returned in choice order.
func MultiSelect(ctx context.Context, title string, choices []Choice) ([]string, error) {
	if !isTerminal() {
		return nil, ErrNotTerminal
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(title).
				Description("Space to toggle, Enter to confirm").
				Options(Options(choices)...).
				Value(&selected),
		),
	).WithTheme(huh.ThemeCharm())

	if err := runForm(ctx, form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrAborted
		}
		return nil, fmt.Errorf("failed to run prompt: %w", err)
	}

	return inChoiceOrder(choices, selected), nil
}

func inChoiceOrder(choices []Choice, selected []string) []string {
	picked := make(map[string]bool, len(selected))
	for _, v := range selected {
		picked[v] = true
	}

	ordered := make([]string, 0, len(selected))
	for _, c := range choices {
		if picked[c.Value] {
			ordered = append(ordered, c.Value)
		}
	}
	return ordered
}
