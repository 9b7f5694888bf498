package tui

import (
	"fmt"
	"strings"

	skilltree "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
)

// Report renders the full build as markdown: budget, per-tree ranks,
// summary groups and radar statistics.
func Report(p *skilltree.Planner) string {
	var sb strings.Builder

	title := "Build"
	if p.Name != "" {
		title = "Build " + p.Name
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "**Points:** %d / %d  \n", p.TotalPoints(), p.MaxPoints())
	fmt.Fprintf(&sb, "**Expedition tier:** %d  \n", p.ExpeditionTier())
	if p.OverLimit() {
		sb.WriteString("**Warning:** more points are spent than this tier allows.  \n")
	}
	sb.WriteString("\n")

	sb.WriteString(TreesMarkdown(p))
	sb.WriteString(SummaryMarkdown(p.BuildSummary()))
	sb.WriteString(RadarMarkdown(p.Radar()))
	return sb.String()
}

// TreesMarkdown renders one table per tree.
func TreesMarkdown(p *skilltree.Planner) string {
	var sb strings.Builder
	totals := p.TreeTotals()
	for _, tree := range domain.Trees() {
		fmt.Fprintf(&sb, "## %s (%d)\n\n", tree, totals[tree])
		sb.WriteString("| Skill | Rank | Requires | State |\n")
		sb.WriteString("|---|---|---|---|\n")
		for _, s := range p.Catalog().InTree(tree) {
			fmt.Fprintf(&sb, "| %s | %s %d/%d | %s | %s |\n",
				s.Name, Pips(p.Rank(s.ID), s.MaxRank), p.Rank(s.ID), s.MaxRank,
				requirements(s), skillState(p, s))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// SummaryMarkdown renders the three summary groups.
func SummaryMarkdown(summary domain.BuildSummary) string {
	var sb strings.Builder
	sb.WriteString("## Summary\n\n")
	group := func(title string, entries []domain.RankedSkill) {
		fmt.Fprintf(&sb, "**%s:** ", title)
		if len(entries) == 0 {
			sb.WriteString("none\n\n")
			return
		}
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = fmt.Sprintf("%s (%d)", e.Skill.Name, e.Rank)
		}
		sb.WriteString(strings.Join(names, ", "))
		sb.WriteString("\n\n")
	}
	group("Fully maxed", summary.FullyMaxed)
	group("Partial investment", summary.PartialInvestment)
	group("One point wonders", summary.OnePointWonders)
	return sb.String()
}

// RadarMarkdown renders the radar statistics as bars in display order.
func RadarMarkdown(radar domain.Radar) string {
	var sb strings.Builder
	sb.WriteString("## Radar\n\n```\n")
	for _, stat := range domain.Stats() {
		fmt.Fprintf(&sb, "%-10s %s %5.1f\n", stat, Bar(radar[stat], 20), radar[stat])
	}
	sb.WriteString("```\n")
	return sb.String()
}

func requirements(s domain.Skill) string {
	var parts []string
	if s.TreeRequirement > 0 {
		parts = append(parts, fmt.Sprintf("%d in tree", s.TreeRequirement))
	}
	parts = append(parts, s.Prerequisites...)
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func skillState(p *skilltree.Planner, s domain.Skill) string {
	switch {
	case p.Rank(s.ID) >= s.MaxRank:
		return "maxed"
	case p.Locked(s.ID):
		return "locked"
	case p.CanAllocate(s.ID):
		return "available"
	}
	return strings.ReplaceAll(string(p.AllocationDenial(s.ID)), "_", " ")
}
