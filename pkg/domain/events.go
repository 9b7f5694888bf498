package domain

import (
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventAllocate   EventType = "allocate"
	EventDeallocate EventType = "deallocate"
	EventResetSkill EventType = "reset_skill"
	EventResetAll   EventType = "reset_all"
	EventUndo       EventType = "undo"
	EventRedo       EventType = "redo"
	EventTierChange EventType = "tier_change"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Build     string    `json:"build,omitempty"`
}

// MutationEvent is emitted after an allocation change has been applied and recorded.
type MutationEvent struct {
	EventBase
	SkillID     string          `json:"skill_id,omitempty"`
	Rank        int             `json:"rank"`
	TotalPoints int             `json:"total_points"`
	Diff        *AllocationDiff `json:"diff,omitempty"`
}

// RejectionEvent is emitted when a mutation was ignored because it is not allowed.
type RejectionEvent struct {
	EventBase
	SkillID string `json:"skill_id,omitempty"`
	Reason  Denial `json:"reason"`
}

// TierEvent is emitted when the expedition tier changes.
type TierEvent struct {
	EventBase
	Tier      int  `json:"tier"`
	MaxPoints int  `json:"max_points"`
	OverLimit bool `json:"over_limit"`
}

// LifecycleHooks defines callbacks for engine observability.
// Undo and redo are reported through OnMutation with the diff they caused.
type LifecycleHooks struct {
	OnMutation   func(*MutationEvent)
	OnRejected   func(*RejectionEvent)
	OnTierChange func(*TierEvent)
}

// Merge returns hooks that call h first and then other for every event.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnMutation: func(e *MutationEvent) {
			if h.OnMutation != nil {
				h.OnMutation(e)
			}
			if other.OnMutation != nil {
				other.OnMutation(e)
			}
		},
		OnRejected: func(e *RejectionEvent) {
			if h.OnRejected != nil {
				h.OnRejected(e)
			}
			if other.OnRejected != nil {
				other.OnRejected(e)
			}
		},
		OnTierChange: func(e *TierEvent) {
			if h.OnTierChange != nil {
				h.OnTierChange(e)
			}
			if other.OnTierChange != nil {
				other.OnTierChange(e)
			}
		},
	}
}
