package dsl

import "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"

// SkillBuilder provides a fluent API for configuring a skill.
type SkillBuilder struct {
	skill   domain.Skill
	builder *Builder
}

// Name sets the display name.
func (s *SkillBuilder) Name(name string) *SkillBuilder {
	s.skill.Name = name
	return s
}

// Tree places the skill in a tree.
func (s *SkillBuilder) Tree(t domain.Tree) *SkillBuilder {
	s.skill.Tree = t
	return s
}

// MaxRank marks the skill as scaling with n ranks.
func (s *SkillBuilder) MaxRank(n int) *SkillBuilder {
	s.skill.Kind = domain.KindScaling
	s.skill.MaxRank = n
	return s
}

// Keystone marks the skill as a single-point keystone.
func (s *SkillBuilder) Keystone() *SkillBuilder {
	s.skill.Kind = domain.KindKeystone
	s.skill.MaxRank = 1
	return s
}

// Needs sets the points that must be spent in the skill's tree first.
func (s *SkillBuilder) Needs(points int) *SkillBuilder {
	s.skill.TreeRequirement = points
	return s
}

// Requires appends prerequisite skill IDs.
func (s *SkillBuilder) Requires(ids ...string) *SkillBuilder {
	s.skill.Prerequisites = append(s.skill.Prerequisites, ids...)
	return s
}

// Stat sets the radar weight of one axis.
func (s *SkillBuilder) Stat(stat domain.Stat, weight float64) *SkillBuilder {
	if s.skill.Stats == nil {
		s.skill.Stats = make(map[domain.Stat]float64)
	}
	s.skill.Stats[stat] = weight
	return s
}

// Describe sets the description and the per-rank effect text.
func (s *SkillBuilder) Describe(description, effectPerRank string) *SkillBuilder {
	s.skill.Description = description
	s.skill.EffectPerRank = effectPerRank
	return s
}

// Add starts the next skill on the same builder.
func (s *SkillBuilder) Add(id string) *SkillBuilder {
	return s.builder.Add(id)
}

// Build returns the underlying domain.Skill.
func (s *SkillBuilder) Build() domain.Skill {
	return s.skill
}
