package domain

// RankedSkill pairs a catalog definition with the rank a build holds in it.
type RankedSkill struct {
	Skill Skill `json:"skill"`
	Rank  int   `json:"rank"`
}

// BuildSummary groups the allocated skills of a build.
// Every allocated skill appears in exactly one group.
type BuildSummary struct {
	FullyMaxed        []RankedSkill `json:"fully_maxed"`
	PartialInvestment []RankedSkill `json:"partial_investment"`
	OnePointWonders   []RankedSkill `json:"one_point_wonders"`
}

// Radar holds the normalised value (0-100) of each radar axis.
type Radar map[Stat]float64

// TreeTotals maps every tree to the points invested in it.
type TreeTotals map[Tree]int
