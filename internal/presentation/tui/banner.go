package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the planner banner, coloured per tree.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	if !IsTerminal(w) {
		p = termenv.Ascii
	}
	lines := []struct {
		text  string
		color string
	}{
		{`  ___ _   _ _ _   _____`, colorConditioning},
		{` / __| |_(_) | | |_   _| _ ___ ___`, colorConditioning},
		{` \__ \ / / | | |   | || '_/ -_) -_)`, colorMobility},
		{` |___/_\_\_|_|_|   |_||_| \___\___|`, colorSurvival},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
