package domain

// SkillKind distinguishes rank-scaling skills from single-point keystones.
type SkillKind string

const (
	// KindScaling skills take several ranks and contribute per rank.
	KindScaling SkillKind = "scaling"
	// KindKeystone skills take exactly one rank and contribute once.
	KindKeystone SkillKind = "keystone"
)

// Stat names one axis of the radar chart.
type Stat string

const (
	StatAgility    Stat = "Agility"
	StatResilience Stat = "Resilience"
	StatEndurance  Stat = "Endurance"
	StatStealth    Stat = "Stealth"
	StatLogistics  Stat = "Logistics"
	StatUtility    Stat = "Utility"
)

// Stats returns the radar axes in display order.
func Stats() []Stat {
	return []Stat{StatAgility, StatResilience, StatEndurance, StatStealth, StatLogistics, StatUtility}
}

// Valid reports whether s is one of the six radar axes.
func (s Stat) Valid() bool {
	for _, known := range Stats() {
		if s == known {
			return true
		}
	}
	return false
}

// Skill is an immutable catalog definition.
type Skill struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Tree Tree      `json:"tree"`
	Kind SkillKind `json:"kind"`

	// MaxRank is the highest rank the skill can hold. Keystones always have 1.
	MaxRank int `json:"max_rank"`

	// TreeRequirement is the number of points that must already be invested
	// in Tree before the first rank may be granted.
	TreeRequirement int `json:"tree_requirement"`

	// Prerequisites lists skill IDs that must each hold at least one rank
	// before this skill can receive its first rank.
	Prerequisites []string `json:"prerequisites,omitempty"`

	// Stats maps radar axes to the weight this skill adds.
	Stats map[Stat]float64 `json:"stats,omitempty"`

	Description   string `json:"description,omitempty"`
	EffectPerRank string `json:"effect_per_rank,omitempty"`
}

// IsKeystone reports whether the skill is a single-point keystone.
func (s Skill) IsKeystone() bool {
	return s.Kind == KindKeystone
}

// Requires reports whether id is one of the skill's prerequisites.
func (s Skill) Requires(id string) bool {
	for _, p := range s.Prerequisites {
		if p == id {
			return true
		}
	}
	return false
}
