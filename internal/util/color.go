package util

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ErrorColor is used for the "error: " prefix written by Die.
var ErrorColor *color.Color = color.New(color.FgRed, color.Bold)

// SetColorMode applies --color: "auto" colors only when stderr is a
// terminal, "always" and "never" do what they say.
func SetColorMode(mode string) error {
	switch mode {
	case "", "auto":
		color.NoColor = os.Getenv("TERM") == "dumb" ||
			(!isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()))
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf(`invalid color mode %#v (must be "auto", "always" or "never")`, mode)
	}
	return nil
}
