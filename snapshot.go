package skilltree

import "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"

// SkillState is the per-skill read model shown by every surface.
type SkillState struct {
	ID            string           `json:"id" yaml:"id"`
	Name          string           `json:"name" yaml:"name"`
	Tree          domain.Tree      `json:"tree" yaml:"tree"`
	Kind          domain.SkillKind `json:"kind" yaml:"kind"`
	Rank          int              `json:"rank" yaml:"rank"`
	MaxRank       int              `json:"max_rank" yaml:"max_rank"`
	Locked        bool             `json:"locked" yaml:"locked"`
	CanAllocate   bool             `json:"can_allocate" yaml:"can_allocate"`
	CanDeallocate bool             `json:"can_deallocate" yaml:"can_deallocate"`
	// Denial explains why the next rank cannot be granted.
	Denial domain.Denial `json:"denial,omitempty" yaml:"denial,omitempty"`
}

// Snapshot is the serialisable read model of a build.
type Snapshot struct {
	Name           string            `json:"name,omitempty" yaml:"name,omitempty"`
	Ranks          domain.Allocation `json:"ranks" yaml:"ranks"`
	TotalPoints    int               `json:"total_points" yaml:"total_points"`
	MaxPoints      int               `json:"max_points" yaml:"max_points"`
	ExpeditionTier int               `json:"expedition_tier" yaml:"expedition_tier"`
	OverLimit      bool              `json:"over_limit" yaml:"over_limit"`
	CanUndo        bool              `json:"can_undo" yaml:"can_undo"`
	CanRedo        bool              `json:"can_redo" yaml:"can_redo"`
	HistoryLen     int               `json:"history_len" yaml:"history_len"`
	HistoryCursor  int               `json:"history_cursor" yaml:"history_cursor"`
	TreePoints     domain.TreeTotals `json:"tree_points" yaml:"tree_points"`
	Skills         []SkillState      `json:"skills" yaml:"skills"`
}

// Snapshot captures the current state of the build in catalog order.
func (p *Planner) Snapshot() Snapshot {
	skills := p.catalog.Skills()
	states := make([]SkillState, 0, len(skills))
	for _, s := range skills {
		denial := p.engine.AllocationDenial(s.ID)
		states = append(states, SkillState{
			ID:            s.ID,
			Name:          s.Name,
			Tree:          s.Tree,
			Kind:          s.Kind,
			Rank:          p.engine.Rank(s.ID),
			MaxRank:       s.MaxRank,
			Locked:        p.engine.Locked(s.ID),
			CanAllocate:   denial.Allowed(),
			CanDeallocate: p.engine.CanDeallocate(s.ID),
			Denial:        denial,
		})
	}

	return Snapshot{
		Name:           p.Name,
		Ranks:          p.engine.Allocation(),
		TotalPoints:    p.engine.TotalPoints(),
		MaxPoints:      p.engine.MaxPoints(),
		ExpeditionTier: p.engine.ExpeditionTier(),
		OverLimit:      p.engine.OverLimit(),
		CanUndo:        p.engine.CanUndo(),
		CanRedo:        p.engine.CanRedo(),
		HistoryLen:     p.engine.HistoryLen(),
		HistoryCursor:  p.engine.HistoryCursor(),
		TreePoints:     p.TreeTotals(),
		Skills:         states,
	}
}
