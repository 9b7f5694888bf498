package domain

import "sort"

// AllocationDiff represents the rank changes between two allocations.
// It is designed to be serialized to JSON for partial updates on the client.
type AllocationDiff struct {
	// Changed maps every skill whose rank moved to its new rank.
	// A value of 0 means the skill lost all of its points.
	Changed map[string]int `json:"changed"`

	// TotalDelta is the change in total points.
	TotalDelta int `json:"total_delta"`
}

// Diff calculates the difference between oldAlloc and newAlloc.
// It returns nil when both allocations are equal.
func Diff(oldAlloc, newAlloc Allocation) *AllocationDiff {
	changed := make(map[string]int)

	for id, r := range newAlloc {
		if oldAlloc.Rank(id) != r {
			changed[id] = r
		}
	}
	for id := range oldAlloc {
		if _, ok := newAlloc[id]; !ok && oldAlloc.Rank(id) != 0 {
			changed[id] = 0
		}
	}

	if len(changed) == 0 {
		return nil
	}

	return &AllocationDiff{
		Changed:    changed,
		TotalDelta: newAlloc.Total() - oldAlloc.Total(),
	}
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *AllocationDiff) IsEmpty() bool {
	return d == nil || len(d.Changed) == 0
}

// SkillIDs returns the changed skill IDs in lexical order.
func (d *AllocationDiff) SkillIDs() []string {
	if d.IsEmpty() {
		return nil
	}
	ids := make([]string, 0, len(d.Changed))
	for id := range d.Changed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
