package view

import (
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/catalog"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
)

// Summarize partitions the allocated skills into disjoint groups, keeping
// catalog order within each group:
//
//   - fully maxed: rank == max rank on a multi-rank skill
//   - one point wonders: the single rank of a keystone
//   - partial investment: 0 < rank < max rank
func Summarize(cat *catalog.Catalog, alloc domain.Allocation) domain.BuildSummary {
	summary := domain.BuildSummary{
		FullyMaxed:        []domain.RankedSkill{},
		PartialInvestment: []domain.RankedSkill{},
		OnePointWonders:   []domain.RankedSkill{},
	}

	for _, s := range cat.Skills() {
		rank := alloc.Rank(s.ID)
		if rank <= 0 {
			continue
		}
		entry := domain.RankedSkill{Skill: s, Rank: rank}

		switch {
		case s.MaxRank == 1 && rank == 1:
			summary.OnePointWonders = append(summary.OnePointWonders, entry)
		case rank == s.MaxRank:
			summary.FullyMaxed = append(summary.FullyMaxed, entry)
		case rank < s.MaxRank:
			summary.PartialInvestment = append(summary.PartialInvestment, entry)
		}
	}
	return summary
}

// TreeTotals returns the points invested in every tree, including empty ones.
func TreeTotals(cat *catalog.Catalog, alloc domain.Allocation) domain.TreeTotals {
	totals := make(domain.TreeTotals, len(domain.Trees()))
	for _, t := range domain.Trees() {
		totals[t] = 0
	}
	for _, s := range cat.Skills() {
		totals[s.Tree] += alloc.Rank(s.ID)
	}
	return totals
}
