/*
Package domain contains the core domain models of the skill-tree planner.

It defines the immutable skill definitions, the live allocation state, the
point budget and the read-model shapes produced by the derived views. This
package is kept pure and free of external dependencies like I/O or
transports, following Hexagonal Architecture principles.

# Key Entities

  - Skill: An immutable catalog entry (tree, kind, rank bounds, gates, stat weights).
  - Allocation: The per-skill rank assignment of one build.
  - Budget: The point pool, derived from a base, a per-tier bonus and the expedition tier.
  - Denial: The reason an allocation or removal is currently unavailable.
  - LifecycleHooks: Callbacks for observing engine transitions.
*/
package domain
