package domain

import (
	"fmt"
	"strings"
)

// Tree identifies one of the three disjoint skill categories.
type Tree string

const (
	TreeConditioning Tree = "Conditioning"
	TreeMobility     Tree = "Mobility"
	TreeSurvival     Tree = "Survival"
)

// Trees returns every tree in display order.
func Trees() []Tree {
	return []Tree{TreeConditioning, TreeMobility, TreeSurvival}
}

// Valid reports whether t is one of the known trees.
func (t Tree) Valid() bool {
	switch t {
	case TreeConditioning, TreeMobility, TreeSurvival:
		return true
	}
	return false
}

// ParseTree resolves a tree name case-insensitively.
func ParseTree(s string) (Tree, error) {
	clean := strings.TrimSpace(s)
	for _, t := range Trees() {
		if strings.EqualFold(clean, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tree %q (expected one of Conditioning, Mobility, Survival)", s)
}
