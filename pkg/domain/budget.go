package domain

const (
	// DefaultBasePoints is the point pool available at expedition tier 0.
	DefaultBasePoints = 75
	// DefaultTierBonus is the number of points each expedition tier adds.
	DefaultTierBonus = 5
	// MaxSelectableTier is the highest tier offered by the tier selector.
	MaxSelectableTier = 5
)

// Budget describes the size of the point pool.
type Budget struct {
	BasePoints     int `json:"base_points"`
	TierBonus      int `json:"tier_bonus"`
	ExpeditionTier int `json:"expedition_tier"`
}

// DefaultBudget returns the base-game budget at tier 0.
func DefaultBudget() Budget {
	return Budget{
		BasePoints: DefaultBasePoints,
		TierBonus:  DefaultTierBonus,
	}
}

// MaxPoints returns BasePoints + TierBonus * ExpeditionTier.
func (b Budget) MaxPoints() int {
	return b.BasePoints + b.TierBonus*b.ExpeditionTier
}
