package cli

import (
	"fmt"
	"log/slog"

	skilltree "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/config"
)

// RunOptions holds the resolved settings of one CLI invocation.
type RunOptions struct {
	Config config.Config
	Name   string
	Debug  bool
	Quiet  bool
	Format string
}

// createPlanner initializes a planner from the resolved settings.
func createPlanner(opts RunOptions, logger *slog.Logger) (*skilltree.Planner, error) {
	cat, err := opts.Config.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}

	plannerOpts := []skilltree.Option{
		skilltree.WithCatalog(cat),
		skilltree.WithBudget(opts.Config.Budget()),
		skilltree.WithLogger(logger),
	}
	if opts.Debug {
		plannerOpts = append(plannerOpts, skilltree.WithLifecycleHooks(DebugHooks(logger)))
	}
	if opts.Name != "" {
		plannerOpts = append(plannerOpts, skilltree.WithName(opts.Name))
	}

	planner, err := skilltree.New(plannerOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing planner: %w", err)
	}
	return planner, nil
}
