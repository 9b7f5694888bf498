package runtime

import (
	"log/slog"
	"time"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/logging"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/catalog"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
)

// Engine owns the live allocation of one build and its history log.
//
// It is synchronous and performs no I/O. An ineligible call is a no-op:
// mutating methods report whether they applied and never return errors.
// Engine is not safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	ranks   domain.Allocation
	total   int
	budget  domain.Budget
	history *History

	hooks  domain.LifecycleHooks
	logger *slog.Logger
	name   string
	now    func() time.Time
}

// NewEngine creates an engine with an empty allocation over cat.
func NewEngine(cat *catalog.Catalog, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog: cat,
		ranks:   domain.Allocation{},
		budget:  domain.DefaultBudget(),
		logger:  logging.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.budget.ExpeditionTier < 0 {
		e.budget.ExpeditionTier = 0
	}
	e.history = NewHistory(e.ranks)
	return e
}

// Allocate adds one rank to id when every gate allows it.
func (e *Engine) Allocate(id string) bool {
	if d := e.AllocationDenial(id); !d.Allowed() {
		e.reject(domain.EventAllocate, id, d)
		return false
	}

	e.ranks[id]++
	e.total++
	e.commit(domain.EventAllocate, id)
	return true
}

// Deallocate removes one rank from id unless it would orphan a dependent.
func (e *Engine) Deallocate(id string) bool {
	if d := e.DeallocationDenial(id); !d.Allowed() {
		e.reject(domain.EventDeallocate, id, d)
		return false
	}

	e.setRank(id, e.ranks.Rank(id)-1)
	e.total--
	e.commit(domain.EventDeallocate, id)
	return true
}

// ResetSkill clears every rank of id in a single history entry.
// It is blocked entirely while any allocated skill depends on id.
func (e *Engine) ResetSkill(id string) bool {
	if d := e.ResetDenial(id); !d.Allowed() {
		e.reject(domain.EventResetSkill, id, d)
		return false
	}

	e.total -= e.ranks.Rank(id)
	e.setRank(id, 0)
	e.commit(domain.EventResetSkill, id)
	return true
}

// ResetAll clears the whole build. It always records a history entry.
func (e *Engine) ResetAll() bool {
	e.ranks = domain.Allocation{}
	e.total = 0
	e.commit(domain.EventResetAll, "")
	return true
}

// SetExpeditionTier changes the budget tier. Negative tiers are ignored.
// Lowering the tier below current usage is allowed and reclaims nothing;
// see OverLimit. Tier changes are not recorded in history.
func (e *Engine) SetExpeditionTier(tier int) bool {
	if tier < 0 {
		e.logger.Debug("expedition tier rejected", "tier", tier)
		return false
	}
	e.budget.ExpeditionTier = tier

	e.logger.Debug("expedition tier changed",
		"tier", tier,
		"max_points", e.budget.MaxPoints(),
		"total_points", e.total,
	)
	if e.hooks.OnTierChange != nil {
		e.hooks.OnTierChange(&domain.TierEvent{
			EventBase: e.eventBase(domain.EventTierChange),
			Tier:      tier,
			MaxPoints: e.budget.MaxPoints(),
			OverLimit: e.OverLimit(),
		})
	}
	return true
}

// Rank returns the rank currently held by id.
func (e *Engine) Rank(id string) int {
	return e.ranks.Rank(id)
}

// TotalPoints returns the number of points spent.
func (e *Engine) TotalPoints() int {
	return e.total
}

// MaxPoints returns the size of the point pool at the current tier.
func (e *Engine) MaxPoints() int {
	return e.budget.MaxPoints()
}

// ExpeditionTier returns the selected tier.
func (e *Engine) ExpeditionTier() int {
	return e.budget.ExpeditionTier
}

// Budget returns the full budget configuration.
func (e *Engine) Budget() domain.Budget {
	return e.budget
}

// OverLimit reports whether more points are spent than the current tier allows.
func (e *Engine) OverLimit() bool {
	return e.total > e.budget.MaxPoints()
}

// Allocation returns a copy of the live allocation.
func (e *Engine) Allocation() domain.Allocation {
	return e.ranks.Clone()
}

// Catalog returns the shared, read-only catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// HistoryLen returns the number of snapshots in the history log.
func (e *Engine) HistoryLen() int {
	return e.history.Len()
}

// HistoryCursor returns the position of the live state in the history log.
func (e *Engine) HistoryCursor() int {
	return e.history.Cursor()
}

func (e *Engine) setRank(id string, rank int) {
	if rank <= 0 {
		delete(e.ranks, id)
		return
	}
	e.ranks[id] = rank
}

// commit records the live allocation and notifies observers.
func (e *Engine) commit(kind domain.EventType, id string) {
	prev := e.history.Current()
	e.history.Record(e.ranks)

	e.logger.Debug("allocation changed",
		"action", kind,
		"skill", id,
		"rank", e.ranks.Rank(id),
		"total_points", e.total,
		"history_len", e.history.Len(),
	)
	e.emitMutation(kind, id, domain.Diff(prev, e.ranks))
}

func (e *Engine) reject(kind domain.EventType, id string, reason domain.Denial) {
	e.logger.Debug("action ignored", "action", kind, "skill", id, "reason", reason)
	if e.hooks.OnRejected != nil {
		e.hooks.OnRejected(&domain.RejectionEvent{
			EventBase: e.eventBase(kind),
			SkillID:   id,
			Reason:    reason,
		})
	}
}

func (e *Engine) emitMutation(kind domain.EventType, id string, diff *domain.AllocationDiff) {
	if e.hooks.OnMutation == nil {
		return
	}
	e.hooks.OnMutation(&domain.MutationEvent{
		EventBase:   e.eventBase(kind),
		SkillID:     id,
		Rank:        e.ranks.Rank(id),
		TotalPoints: e.total,
		Diff:        diff,
	})
}

func (e *Engine) eventBase(kind domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: e.now(),
		Type:      kind,
		Build:     e.name,
	}
}
