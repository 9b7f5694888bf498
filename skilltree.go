package skilltree

import (
	"fmt"
	"log/slog"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/logging"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/runtime"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/catalog"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/view"
)

// Planner is the high-level entry point of the library.
// It wraps the allocation engine and exposes the derived views.
type Planner struct {
	engine  *runtime.Engine
	catalog *catalog.Catalog
	budget  domain.Budget
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	Name    string
}

// Option defines a functional option for configuring the Planner.
type Option func(*Planner)

// WithCatalog uses cat instead of the embedded default catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(p *Planner) {
		p.catalog = cat
	}
}

// WithBudget replaces the whole budget configuration.
func WithBudget(b domain.Budget) Option {
	return func(p *Planner) {
		p.budget = b
	}
}

// WithExpeditionTier sets the starting tier, keeping base and bonus.
func WithExpeditionTier(tier int) Option {
	return func(p *Planner) {
		p.budget.ExpeditionTier = tier
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(p *Planner) {
		p.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the planner.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		p.logger = logger
	}
}

// WithName labels the build in logs and lifecycle events.
func WithName(name string) Option {
	return func(p *Planner) {
		p.Name = name
	}
}

// New creates a planner holding an empty build.
// Without WithCatalog the embedded default catalog is used.
func New(opts ...Option) (*Planner, error) {
	p := &Planner{budget: domain.DefaultBudget()}
	for _, opt := range opts {
		opt(p)
	}

	if p.catalog == nil {
		cat, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load default catalog: %w", err)
		}
		p.catalog = cat
	}
	if p.budget.BasePoints < 0 || p.budget.TierBonus < 0 {
		return nil, fmt.Errorf("invalid budget: base %d, bonus %d", p.budget.BasePoints, p.budget.TierBonus)
	}

	if p.logger == nil {
		p.logger = logging.NewNop()
	}
	if p.Name != "" {
		p.logger = p.logger.With("build", p.Name)
	}

	p.engine = runtime.NewEngine(p.catalog,
		runtime.WithBudget(p.budget),
		runtime.WithLifecycleHooks(p.hooks),
		runtime.WithLogger(p.logger),
		runtime.WithName(p.Name),
	)
	return p, nil
}

// Allocate adds one rank to id. It reports false when any gate blocks it.
func (p *Planner) Allocate(id string) bool { return p.engine.Allocate(id) }

// Deallocate removes one rank from id.
func (p *Planner) Deallocate(id string) bool { return p.engine.Deallocate(id) }

// ResetSkill clears every rank of id as one history step.
func (p *Planner) ResetSkill(id string) bool { return p.engine.ResetSkill(id) }

// ResetAll clears the build as one history step.
func (p *Planner) ResetAll() bool { return p.engine.ResetAll() }

// SetExpeditionTier changes the budget tier. History is not touched.
func (p *Planner) SetExpeditionTier(tier int) bool { return p.engine.SetExpeditionTier(tier) }

// Undo steps back one history entry.
func (p *Planner) Undo() bool { return p.engine.Undo() }

// Redo steps forward one history entry.
func (p *Planner) Redo() bool { return p.engine.Redo() }

// CanUndo reports whether a history entry lies behind the cursor.
func (p *Planner) CanUndo() bool { return p.engine.CanUndo() }

// CanRedo reports whether an undone entry can be reapplied.
func (p *Planner) CanRedo() bool { return p.engine.CanRedo() }

// CanAllocate reports whether one more rank of id would be accepted.
func (p *Planner) CanAllocate(id string) bool { return p.engine.CanAllocate(id) }

// CanDeallocate reports whether one rank of id can be removed.
func (p *Planner) CanDeallocate(id string) bool { return p.engine.CanDeallocate(id) }

// CanReset reports whether id has ranks and no allocated dependents.
func (p *Planner) CanReset(id string) bool { return p.engine.CanReset(id) }

// Locked reports whether id holds no rank and none can be granted.
func (p *Planner) Locked(id string) bool { return p.engine.Locked(id) }

// PointsInTree sums the ranks allocated in t, keystones included.
func (p *Planner) PointsInTree(t domain.Tree) int { return p.engine.PointsInTree(t) }

// Rank returns the current rank of id, 0 when unallocated or unknown.
func (p *Planner) Rank(id string) int { return p.engine.Rank(id) }

// TotalPoints sums every allocated rank.
func (p *Planner) TotalPoints() int { return p.engine.TotalPoints() }

// MaxPoints returns the budget for the current expedition tier.
func (p *Planner) MaxPoints() int { return p.engine.MaxPoints() }

// ExpeditionTier returns the current tier.
func (p *Planner) ExpeditionTier() int { return p.engine.ExpeditionTier() }

// Budget returns the base points, tier bonus and current tier.
func (p *Planner) Budget() domain.Budget { return p.engine.Budget() }

// OverLimit reports whether more points are spent than the current tier allows.
func (p *Planner) OverLimit() bool { return p.engine.OverLimit() }

// Allocation returns a copy of the current ranks.
func (p *Planner) Allocation() domain.Allocation { return p.engine.Allocation() }

// Catalog returns the skill catalog the planner validates against.
func (p *Planner) Catalog() *catalog.Catalog { return p.catalog }

// HistoryLen returns the number of recorded snapshots.
func (p *Planner) HistoryLen() int { return p.engine.HistoryLen() }

// HistoryCursor returns the index of the current snapshot.
func (p *Planner) HistoryCursor() int { return p.engine.HistoryCursor() }

// AllocationDenial explains why CanAllocate(id) is false, or returns DenialNone.
func (p *Planner) AllocationDenial(id string) domain.Denial {
	return p.engine.AllocationDenial(id)
}

// DeallocationDenial explains why CanDeallocate(id) is false.
func (p *Planner) DeallocationDenial(id string) domain.Denial {
	return p.engine.DeallocationDenial(id)
}

// ResetDenial explains why CanReset(id) is false.
func (p *Planner) ResetDenial(id string) domain.Denial { return p.engine.ResetDenial(id) }

// BuildSummary groups the allocated skills.
func (p *Planner) BuildSummary() domain.BuildSummary {
	return view.Summarize(p.catalog, p.engine.Allocation())
}

// Radar returns the normalised radar statistics.
func (p *Planner) Radar() domain.Radar {
	return view.Radar(p.catalog, p.engine.Allocation())
}

// TreeTotals returns the points invested in each tree.
func (p *Planner) TreeTotals() domain.TreeTotals {
	return view.TreeTotals(p.catalog, p.engine.Allocation())
}
