package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/muesli/termenv"
)

const (
	colorConditioning = "#22c55e"
	colorMobility     = "#eab308"
	colorSurvival     = "#ef4444"
	colorMuted        = "#6b7280"
)

// Styler colours planner output for one writer.
type Styler struct {
	profile termenv.Profile
}

// NewStyler detects the colour support of w. Non-terminals get plain text.
func NewStyler(w io.Writer) Styler {
	if !IsTerminal(w) {
		return Styler{profile: termenv.Ascii}
	}
	return Styler{profile: termenv.ColorProfile()}
}

// PlainStyler never emits escape sequences.
func PlainStyler() Styler {
	return Styler{profile: termenv.Ascii}
}

// TreeColor returns the accent colour of a tree.
func TreeColor(t domain.Tree) string {
	switch t {
	case domain.TreeConditioning:
		return colorConditioning
	case domain.TreeMobility:
		return colorMobility
	case domain.TreeSurvival:
		return colorSurvival
	}
	return colorMuted
}

// Tree colours s with the accent of t.
func (s Styler) Tree(t domain.Tree, text string) string {
	return s.profile.String(text).Foreground(s.profile.Color(TreeColor(t))).String()
}

// Muted renders secondary text.
func (s Styler) Muted(text string) string {
	return s.profile.String(text).Foreground(s.profile.Color(colorMuted)).String()
}

// Bold renders emphasised text.
func (s Styler) Bold(text string) string {
	return s.profile.String(text).Bold().String()
}

// Pips renders a rank as filled and empty pips, e.g. "●●○○○".
func Pips(rank, maxRank int) string {
	if rank > maxRank {
		rank = maxRank
	}
	if rank < 0 {
		rank = 0
	}
	return strings.Repeat("●", rank) + strings.Repeat("○", maxRank-rank)
}

// Bar renders a 0-100 value as a fixed-width bar.
func Bar(value float64, width int) string {
	filled := int(value/100*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Points renders "used/max", flagging an over-limit build.
func (s Styler) Points(used, maxPoints int) string {
	out := fmt.Sprintf("%d/%d", used, maxPoints)
	if used > maxPoints {
		return s.profile.String(out + " (over limit)").Foreground(s.profile.Color(colorSurvival)).String()
	}
	return out
}
