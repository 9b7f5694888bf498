package ports

import (
	"context"

	skilltree "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder"
)

// BuildStore keeps the open builds of a workbench.
// Stored planners are live objects; callers serialise access to one build
// through session.Manager.
type BuildStore interface {
	// Save registers the planner under id, replacing any previous one.
	Save(ctx context.Context, id string, planner *skilltree.Planner) error

	// Load returns the planner registered under id.
	// Returns domain.ErrBuildNotFound if the build does not exist.
	Load(ctx context.Context, id string) (*skilltree.Planner, error)

	// Delete discards the build. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the ids of every open build in ascending order.
	List(ctx context.Context) ([]string, error)
}
