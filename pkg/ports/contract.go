package ports

import (
	"context"
	"testing"
	"time"

	skilltree "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunBuildStoreContract runs a suite of tests to verify that a BuildStore
// implementation adheres to the defined interface contract.
func RunBuildStoreContract(t *testing.T, store BuildStore) {
	ctx := context.Background()
	buildID := "contract-test-build-" + time.Now().Format("20060102150405")

	newPlanner := func(t *testing.T, id string) *skilltree.Planner {
		p, err := skilltree.New(skilltree.WithName(id))
		require.NoError(t, err)
		return p
	}

	t.Run("Save and Load", func(t *testing.T) {
		p := newPlanner(t, buildID)
		require.True(t, p.Allocate("cond_turtle_crawl"))

		err := store.Save(ctx, buildID, p)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, buildID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, 1, loaded.Rank("cond_turtle_crawl"))
		assert.Equal(t, buildID, loaded.Name)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+buildID)
		assert.ErrorIs(t, err, domain.ErrBuildNotFound)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, buildID, newPlanner(t, buildID)))

		loaded, err := store.Load(ctx, buildID)
		require.NoError(t, err)
		assert.Equal(t, 0, loaded.TotalPoints())
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, buildID, newPlanner(t, buildID)))

		err := store.Delete(ctx, buildID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, buildID)
		assert.ErrorIs(t, err, domain.ErrBuildNotFound, "Load after Delete should return ErrBuildNotFound")

		assert.NoError(t, store.Delete(ctx, buildID), "Deleting twice should be a no-op")
	})

	t.Run("List", func(t *testing.T) {
		id1 := buildID + "-1"
		id2 := buildID + "-2"
		_ = store.Save(ctx, id2, newPlanner(t, id2))
		_ = store.Save(ctx, id1, newPlanner(t, id1))

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		builds, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, builds, id1)
		assert.Contains(t, builds, id2)
		assert.IsNonDecreasing(t, builds)
	})
}
