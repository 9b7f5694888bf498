package session_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	skilltree "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/adapters/memory"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// SlowStore simulates latency to provoke race conditions if locking is missing.
type SlowStore struct {
	*memory.Store
}

func (s *SlowStore) Load(ctx context.Context, id string) (*skilltree.Planner, error) {
	time.Sleep(time.Millisecond)
	return s.Store.Load(ctx, id)
}

func TestManager_CreateUsesUUID(t *testing.T) {
	mgr := session.NewManager(memory.NewStore())
	ctx := context.Background()

	id, err := mgr.Create(ctx)
	require.NoError(t, err)

	_, err = uuid.Parse(id)
	assert.NoError(t, err)

	snap, err := mgr.Snapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, snap.Name)
	assert.Equal(t, 75, snap.MaxPoints)
}

func TestManager_PlannerOptions(t *testing.T) {
	mgr := session.NewManager(memory.NewStore(),
		session.WithPlannerOptions(skilltree.WithExpeditionTier(1)),
		session.WithIDGenerator(func() string { return "fixed" }),
	)
	ctx := context.Background()

	id, err := mgr.Create(ctx, skilltree.WithExpeditionTier(4))
	require.NoError(t, err)
	assert.Equal(t, "fixed", id)

	snap, err := mgr.Snapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 95, snap.MaxPoints)
}

func TestManager_SerialisesMutations(t *testing.T) {
	mgr := session.NewManager(&SlowStore{memory.NewStore()})
	ctx := context.Background()

	id, err := mgr.Create(ctx, skilltree.WithBudget(domain.Budget{BasePoints: 200}))
	require.NoError(t, err)

	skills := []string{"cond_turtle_crawl", "cond_sturdy_ankles", "cond_back_on_feet",
		"mob_marathon_runner", "mob_nimble_climber", "mob_effortless_roll",
		"surv_gentle_pressure", "surv_broad_shoulders", "surv_proficient_pryer"}

	var wg sync.WaitGroup
	for _, skill := range skills {
		for range 5 {
			wg.Add(1)
			go func(skill string) {
				defer wg.Done()
				err := mgr.WithBuild(ctx, id, func(_ context.Context, p *skilltree.Planner) error {
					p.Allocate(skill)
					return nil
				})
				assert.NoError(t, err)
			}(skill)
		}
	}
	wg.Wait()

	snap, err := mgr.Snapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 45, snap.TotalPoints)
	assert.Equal(t, 46, snap.HistoryLen)
}

func TestManager_NotFound(t *testing.T) {
	mgr := session.NewManager(memory.NewStore())
	ctx := context.Background()

	err := mgr.WithBuild(ctx, "missing", func(context.Context, *skilltree.Planner) error {
		t.Fatal("callback must not run")
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrBuildNotFound)
	assert.ErrorIs(t, mgr.Delete(ctx, "missing"), domain.ErrBuildNotFound)
}

func TestManager_DeleteAndList(t *testing.T) {
	mgr := session.NewManager(memory.NewStore())
	ctx := context.Background()

	a, err := mgr.Create(ctx)
	require.NoError(t, err)
	b, err := mgr.Create(ctx)
	require.NoError(t, err)

	ids, err := mgr.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b}, ids)

	require.NoError(t, mgr.Delete(ctx, a))
	ids, err = mgr.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{b}, ids)
}

func TestManager_CancelledContext(t *testing.T) {
	mgr := session.NewManager(memory.NewStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mgr.Create(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestManager_IndependentBuilds(t *testing.T) {
	mgr := session.NewManager(memory.NewStore())
	ctx := context.Background()

	ids := make([]string, 3)
	for i := range ids {
		id, err := mgr.Create(ctx)
		require.NoError(t, err)
		ids[i] = id
	}

	for i, id := range ids {
		err := mgr.WithBuild(ctx, id, func(_ context.Context, p *skilltree.Planner) error {
			for range i + 1 {
				p.Allocate("surv_broad_shoulders")
			}
			return nil
		})
		require.NoError(t, err, fmt.Sprintf("build %d", i))
	}

	for i, id := range ids {
		snap, err := mgr.Snapshot(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, i+1, snap.TotalPoints)
	}
}
