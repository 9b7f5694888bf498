package runtime_test

import (
	"testing"
	"time"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/runtime"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_LifecycleHooks(t *testing.T) {
	var mutations []*domain.MutationEvent
	var rejections []*domain.RejectionEvent
	var tiers []*domain.TierEvent

	hooks := domain.LifecycleHooks{
		OnMutation:   func(e *domain.MutationEvent) { mutations = append(mutations, e) },
		OnRejected:   func(e *domain.RejectionEvent) { rejections = append(rejections, e) },
		OnTierChange: func(e *domain.TierEvent) { tiers = append(tiers, e) },
	}
	fixed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	e := newEngine(
		runtime.WithLifecycleHooks(hooks),
		runtime.WithName("build-1"),
		runtime.WithClock(func() time.Time { return fixed }),
	)

	e.Allocate("A")
	e.Allocate("B")
	e.Undo()
	e.Redo()
	e.SetExpeditionTier(2)

	require.Len(t, mutations, 3)
	assert.Equal(t, domain.EventAllocate, mutations[0].Type)
	assert.Equal(t, "A", mutations[0].SkillID)
	assert.Equal(t, 1, mutations[0].Rank)
	assert.Equal(t, 1, mutations[0].TotalPoints)
	assert.Equal(t, "build-1", mutations[0].Build)
	assert.Equal(t, fixed, mutations[0].Timestamp)
	assert.Equal(t, map[string]int{"A": 1}, mutations[0].Diff.Changed)

	assert.Equal(t, domain.EventUndo, mutations[1].Type)
	assert.Equal(t, map[string]int{"A": 0}, mutations[1].Diff.Changed)
	assert.Equal(t, -1, mutations[1].Diff.TotalDelta)

	assert.Equal(t, domain.EventRedo, mutations[2].Type)
	assert.Equal(t, 1, mutations[2].TotalPoints)

	require.Len(t, rejections, 1)
	assert.Equal(t, "B", rejections[0].SkillID)
	assert.Equal(t, domain.DenialTreeRequirement, rejections[0].Reason)

	require.Len(t, tiers, 1)
	assert.Equal(t, 2, tiers[0].Tier)
	assert.Equal(t, 85, tiers[0].MaxPoints)
	assert.False(t, tiers[0].OverLimit)
}

func TestEngine_HooksMerge(t *testing.T) {
	var order []string
	first := domain.LifecycleHooks{OnMutation: func(*domain.MutationEvent) { order = append(order, "first") }}
	second := domain.LifecycleHooks{OnMutation: func(*domain.MutationEvent) { order = append(order, "second") }}

	e := newEngine(runtime.WithLifecycleHooks(first.Merge(second)))
	e.Allocate("A")
	e.Allocate("ghost")

	assert.Equal(t, []string{"first", "second"}, order)
}
