/*
Package skilltree is a point allocation engine for three-tree skill builds.

A Planner owns one build: the ranks held in every catalog skill, the point
budget and a linear undo/redo history. Every mutation is validated against
the live state. An ineligible action never fails loudly; it is a no-op and
the mutating method reports false. The predicates (CanAllocate,
AllocationDenial, ...) tell callers why an action is unavailable.

# Rules

  - A skill can receive its first rank only once every prerequisite holds
    at least one rank and its tree already holds TreeRequirement points.
  - The total may not exceed BasePoints + TierBonus * ExpeditionTier.
  - The last rank of a skill cannot be removed while another allocated
    skill depends on it.
  - Lowering the tier below current usage is allowed; nothing is reclaimed
    and OverLimit reports the condition.

# Usage

	planner, err := skilltree.New(skilltree.WithExpeditionTier(2))
	if err != nil {
		log.Fatal(err)
	}

	planner.Allocate("cond_turtle_crawl")
	planner.Undo()

	summary := planner.BuildSummary()
	radar := planner.Radar()

Derived views are recomputed from the live allocation on every call.
A Planner is not safe for concurrent use; see package session for a
workbench that serialises access to many builds.
*/
package skilltree
