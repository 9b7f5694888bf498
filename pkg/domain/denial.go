package domain

// Denial explains why a mutation is currently unavailable.
// The zero value means the action is allowed.
type Denial string

const (
	DenialNone                Denial = ""
	DenialUnknownSkill        Denial = "unknown_skill"
	DenialMaxRank             Denial = "max_rank"
	DenialBudgetExhausted     Denial = "budget_exhausted"
	DenialPrerequisiteMissing Denial = "prerequisite_missing"
	DenialTreeRequirement     Denial = "tree_requirement"
	DenialNotAllocated        Denial = "not_allocated"
	DenialDependentLock       Denial = "dependent_lock"
)

// Allowed reports whether the denial is empty.
func (d Denial) Allowed() bool {
	return d == DenialNone
}

// Describe returns a short human readable sentence for the denial.
func (d Denial) Describe() string {
	switch d {
	case DenialNone:
		return "allowed"
	case DenialUnknownSkill:
		return "no such skill"
	case DenialMaxRank:
		return "already at max rank"
	case DenialBudgetExhausted:
		return "no points left"
	case DenialPrerequisiteMissing:
		return "a prerequisite skill has no points"
	case DenialTreeRequirement:
		return "not enough points invested in this tree"
	case DenialNotAllocated:
		return "no points to remove"
	case DenialDependentLock:
		return "another allocated skill depends on it"
	}
	return string(d)
}
