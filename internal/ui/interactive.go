package ui

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
)

// ErrNoTerminal is returned when an interactive prompt is requested without
// a terminal attached to stdin.
var ErrNoTerminal = errors.New("interactive mode requires a terminal")

// SelectDecorations lets the user pick decoration steps interactively. The
// fancy and box arguments seed the initial selection.
func SelectDecorations(fancy, box bool) (bool, bool, error) {
	if !term.IsTerminal(os.Stdin.Fd()) {
		return false, false, ErrNoTerminal
	}

	var selected []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select decorations").
				Description("Choose which decoration steps to run").
				Options(
					huh.NewOption("Fancy icing", "fancy").Selected(fancy),
					huh.NewOption("Gift box", "box").Selected(box),
				).
				Value(&selected),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return false, false, NormalizeAbort(err)
	}

	fancy, box = false, false
	for _, choice := range selected {
		switch choice {
		case "fancy":
			fancy = true
		case "box":
			box = true
		}
	}

	return fancy, box, nil
}
