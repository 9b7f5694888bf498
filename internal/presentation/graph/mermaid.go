package graph

import (
	"fmt"
	"strings"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/catalog"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
)

// Overlay contains build state to visualize on the graph.
type Overlay struct {
	Ranks  domain.Allocation
	Locked func(id string) bool
}

// GenerateMermaid produces a Mermaid flowchart of the catalog, one subgraph per tree.
// It applies semantic styling:
// - Scaling: [Rectangle] labelled with max rank
// - Keystone: {{Hexagon}}
// Prerequisites are drawn as solid arrows; tree requirements annotate the label.
// Overlay styles (allocated/maxed/locked) are applied if provided.
func GenerateMermaid(cat *catalog.Catalog, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, tree := range domain.Trees() {
		fmt.Fprintf(&sb, "    subgraph %s[\"%s\"]\n", sanitizeMermaidID(string(tree)), tree)
		for _, s := range cat.InTree(tree) {
			opener, closer := "[", "]"
			if s.IsKeystone() {
				opener, closer = "{{", "}}"
			}

			label := fmt.Sprintf("%s <br/> 0/%d", escapeLabel(s.Name), s.MaxRank)
			if overlay != nil {
				label = fmt.Sprintf("%s <br/> %d/%d", escapeLabel(s.Name), overlay.Ranks.Rank(s.ID), s.MaxRank)
			}
			if s.TreeRequirement > 0 {
				label += fmt.Sprintf(" <br/> needs %d", s.TreeRequirement)
			}
			fmt.Fprintf(&sb, "        %s%s\"%s\"%s\n", sanitizeMermaidID(s.ID), opener, label, closer)
		}
		sb.WriteString("    end\n")
	}

	for _, s := range cat.Skills() {
		for _, p := range s.Prerequisites {
			fmt.Fprintf(&sb, "    %s --> %s\n", sanitizeMermaidID(p), sanitizeMermaidID(s.ID))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for contrast on both light and dark themes
		sb.WriteString("    classDef allocated fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef maxed fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString("    classDef locked fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:4,color:#616161;\n")

		for _, s := range cat.Skills() {
			rank := overlay.Ranks.Rank(s.ID)
			class := ""
			switch {
			case rank >= s.MaxRank:
				class = "maxed"
			case rank > 0:
				class = "allocated"
			case overlay.Locked != nil && overlay.Locked(s.ID):
				class = "locked"
			}
			if class != "" {
				fmt.Fprintf(&sb, "    class %s %s;\n", sanitizeMermaidID(s.ID), class)
			}
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
