package main

import (
	"log/slog"

	skilltree "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/config"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/adapters/memory"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/catalog"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/observability"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/session"
)

// newWorkbench creates the in-memory build manager shared by the server commands.
// Every build it creates uses the configured catalog and budget and reports to hooks.
func newWorkbench(cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) (*session.Manager, *catalog.Catalog, error) {
	cat, err := cfg.LoadCatalog()
	if err != nil {
		return nil, nil, err
	}

	hooks = hooks.Merge(observability.AuditHooks(logger))
	builds := session.NewManager(memory.NewStore(),
		session.WithLogger(logger),
		session.WithPlannerOptions(
			skilltree.WithCatalog(cat),
			skilltree.WithBudget(cfg.Budget()),
			skilltree.WithLifecycleHooks(hooks),
			skilltree.WithLogger(logger),
		),
	)
	return builds, cat, nil
}
