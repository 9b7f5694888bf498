package runtime_test

import (
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/runtime"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/catalog"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
)

func scaling(id string, tree domain.Tree, maxRank, req int, prereqs ...string) domain.Skill {
	return domain.Skill{
		ID: id, Name: id, Tree: tree, Kind: domain.KindScaling,
		MaxRank: maxRank, TreeRequirement: req, Prerequisites: prereqs,
	}
}

func keystone(id string, tree domain.Tree, req int, prereqs ...string) domain.Skill {
	return domain.Skill{
		ID: id, Name: id, Tree: tree, Kind: domain.KindKeystone,
		MaxRank: 1, TreeRequirement: req, Prerequisites: prereqs,
	}
}

// testCatalog has enough capacity (86 points) to exhaust the default budget.
func testCatalog() *catalog.Catalog {
	return catalog.MustNew([]domain.Skill{
		scaling("A", domain.TreeConditioning, 5, 0),
		scaling("B", domain.TreeConditioning, 5, 5, "A"),
		scaling("C", domain.TreeConditioning, 10, 0),
		scaling("S1", domain.TreeSurvival, 5, 0),
		scaling("S2", domain.TreeSurvival, 5, 0),
		scaling("S3", domain.TreeSurvival, 5, 0),
		keystone("K", domain.TreeSurvival, 15),
		scaling("M1", domain.TreeMobility, 10, 0),
		scaling("M2", domain.TreeMobility, 10, 0),
		scaling("M3", domain.TreeMobility, 10, 0),
		scaling("M4", domain.TreeMobility, 10, 0),
		scaling("M5", domain.TreeMobility, 10, 0),
	})
}

func newEngine(opts ...runtime.EngineOption) *runtime.Engine {
	return runtime.NewEngine(testCatalog(), opts...)
}

func allocateN(e *runtime.Engine, id string, n int) {
	for i := 0; i < n; i++ {
		e.Allocate(id)
	}
}
