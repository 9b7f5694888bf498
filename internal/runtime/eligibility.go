package runtime

import "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"

// AllocationDenial returns the first rule that prevents adding a rank to id,
// or domain.DenialNone. It is evaluated against live state on every call.
func (e *Engine) AllocationDenial(id string) domain.Denial {
	skill, ok := e.catalog.Lookup(id)
	if !ok {
		return domain.DenialUnknownSkill
	}
	if e.ranks.Rank(id) >= skill.MaxRank {
		return domain.DenialMaxRank
	}
	if e.total >= e.budget.MaxPoints() {
		return domain.DenialBudgetExhausted
	}
	for _, p := range skill.Prerequisites {
		if e.ranks.Rank(p) == 0 {
			return domain.DenialPrerequisiteMissing
		}
	}
	if e.PointsInTree(skill.Tree) < skill.TreeRequirement {
		return domain.DenialTreeRequirement
	}
	return domain.DenialNone
}

// DeallocationDenial returns the rule that prevents removing one rank from id.
// The last rank is locked while another allocated skill lists id as a prerequisite.
func (e *Engine) DeallocationDenial(id string) domain.Denial {
	if !e.catalog.Has(id) {
		return domain.DenialUnknownSkill
	}
	rank := e.ranks.Rank(id)
	if rank == 0 {
		return domain.DenialNotAllocated
	}
	if rank == 1 && e.hasAllocatedDependent(id) {
		return domain.DenialDependentLock
	}
	return domain.DenialNone
}

// ResetDenial returns the rule that prevents clearing every rank of id.
// Unlike DeallocationDenial it is blocked by any allocated dependent,
// whatever the current rank.
func (e *Engine) ResetDenial(id string) domain.Denial {
	if !e.catalog.Has(id) {
		return domain.DenialUnknownSkill
	}
	if e.ranks.Rank(id) == 0 {
		return domain.DenialNotAllocated
	}
	if e.hasAllocatedDependent(id) {
		return domain.DenialDependentLock
	}
	return domain.DenialNone
}

// CanAllocate reports whether Allocate(id) would succeed.
func (e *Engine) CanAllocate(id string) bool {
	return e.AllocationDenial(id).Allowed()
}

// CanDeallocate reports whether Deallocate(id) would succeed.
func (e *Engine) CanDeallocate(id string) bool {
	return e.DeallocationDenial(id).Allowed()
}

// CanReset reports whether ResetSkill(id) would succeed.
func (e *Engine) CanReset(id string) bool {
	return e.ResetDenial(id).Allowed()
}

// Locked reports the derived "locked" display state: no rank held and no rank grantable.
func (e *Engine) Locked(id string) bool {
	return e.ranks.Rank(id) == 0 && !e.CanAllocate(id)
}

// PointsInTree returns the sum of ranks held by the skills of one tree.
func (e *Engine) PointsInTree(t domain.Tree) int {
	sum := 0
	for _, s := range e.catalog.InTree(t) {
		sum += e.ranks.Rank(s.ID)
	}
	return sum
}

func (e *Engine) hasAllocatedDependent(id string) bool {
	for _, dep := range e.catalog.Dependents(id) {
		if e.ranks.Rank(dep) > 0 {
			return true
		}
	}
	return false
}
