package dsl

import (
	"fmt"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/catalog"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
)

// Builder manages the catalog construction. Skills keep the order they were added in.
type Builder struct {
	order  []string
	skills map[string]*SkillBuilder
}

// New creates a new catalog builder.
func New() *Builder {
	return &Builder{
		skills: make(map[string]*SkillBuilder),
	}
}

// Add creates a new scaling skill with one rank.
// If the skill already exists, it returns the existing builder.
func (b *Builder) Add(id string) *SkillBuilder {
	if sb, ok := b.skills[id]; ok {
		return sb
	}
	sb := &SkillBuilder{
		skill: domain.Skill{
			ID:      id,
			Name:    id,
			Kind:    domain.KindScaling,
			MaxRank: 1,
		},
		builder: b,
	}
	b.skills[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Build validates the skills and compiles them into a Catalog.
func (b *Builder) Build() (*catalog.Catalog, error) {
	skills := make([]domain.Skill, 0, len(b.order))
	for _, id := range b.order {
		skills = append(skills, b.skills[id].skill)
	}

	cat, err := catalog.New(skills)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	return cat, nil
}

// MustBuild is like Build but panics on invalid definitions.
func (b *Builder) MustBuild() *catalog.Catalog {
	cat, err := b.Build()
	if err != nil {
		panic(err)
	}
	return cat
}
