package catalog

import (
	"errors"
	"fmt"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
)

// Catalog is an immutable, indexed set of skill definitions.
// Definitions returned by its methods must be treated as read-only.
type Catalog struct {
	skills     []domain.Skill
	byID       map[string]int
	byTree     map[domain.Tree][]int
	dependents map[string][]string
}

// New validates the definitions and builds the lookup indexes.
// The input slice is copied; later changes to it do not affect the catalog.
func New(skills []domain.Skill) (*Catalog, error) {
	c := &Catalog{
		skills:     make([]domain.Skill, 0, len(skills)),
		byID:       make(map[string]int, len(skills)),
		byTree:     make(map[domain.Tree][]int),
		dependents: make(map[string][]string),
	}

	var problems []error
	for _, s := range skills {
		if _, dup := c.byID[s.ID]; dup {
			problems = append(problems, fmt.Errorf("skill %q: duplicate id", s.ID))
			continue
		}
		problems = append(problems, checkSkill(s)...)

		c.byID[s.ID] = len(c.skills)
		c.byTree[s.Tree] = append(c.byTree[s.Tree], len(c.skills))
		c.skills = append(c.skills, cloneSkill(s))
	}

	for _, s := range c.skills {
		for _, p := range s.Prerequisites {
			if _, ok := c.byID[p]; !ok {
				problems = append(problems, fmt.Errorf("skill %q: prerequisite %q: %w", s.ID, p, domain.ErrUnknownSkill))
				continue
			}
			c.dependents[p] = append(c.dependents[p], s.ID)
		}
	}

	if len(problems) == 0 {
		if cycle := c.findCycle(); cycle != nil {
			problems = append(problems, fmt.Errorf("prerequisite cycle: %v", cycle))
		}
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, errors.Join(problems...))
	}
	return c, nil
}

// MustNew is like New but panics on invalid definitions.
// Intended for tests and package-level fixtures.
func MustNew(skills []domain.Skill) *Catalog {
	c, err := New(skills)
	if err != nil {
		panic(err)
	}
	return c
}

func checkSkill(s domain.Skill) []error {
	var problems []error
	if s.ID == "" {
		problems = append(problems, errors.New("skill with empty id"))
	}
	if !s.Tree.Valid() {
		problems = append(problems, fmt.Errorf("skill %q: unknown tree %q", s.ID, s.Tree))
	}
	switch s.Kind {
	case domain.KindScaling:
		if s.MaxRank < 1 {
			problems = append(problems, fmt.Errorf("skill %q: max rank must be positive, got %d", s.ID, s.MaxRank))
		}
	case domain.KindKeystone:
		if s.MaxRank != 1 {
			problems = append(problems, fmt.Errorf("skill %q: keystone max rank must be 1, got %d", s.ID, s.MaxRank))
		}
	default:
		problems = append(problems, fmt.Errorf("skill %q: unknown kind %q", s.ID, s.Kind))
	}
	if s.TreeRequirement < 0 {
		problems = append(problems, fmt.Errorf("skill %q: negative tree requirement", s.ID))
	}
	for stat := range s.Stats {
		if !stat.Valid() {
			problems = append(problems, fmt.Errorf("skill %q: unknown stat %q", s.ID, stat))
		}
	}
	if s.Requires(s.ID) {
		problems = append(problems, fmt.Errorf("skill %q: lists itself as prerequisite", s.ID))
	}
	return problems
}

// findCycle returns the IDs forming a prerequisite cycle, or nil.
func (c *Catalog) findCycle() []string {
	const (
		unvisited = iota
		visiting
		done
	)
	marks := make(map[string]int, len(c.skills))
	var path []string

	var visit func(id string) []string
	visit = func(id string) []string {
		switch marks[id] {
		case visiting:
			for i, p := range path {
				if p == id {
					return append(append([]string{}, path[i:]...), id)
				}
			}
			return []string{id}
		case done:
			return nil
		}
		marks[id] = visiting
		path = append(path, id)
		for _, p := range c.skills[c.byID[id]].Prerequisites {
			if cycle := visit(p); cycle != nil {
				return cycle
			}
		}
		path = path[:len(path)-1]
		marks[id] = done
		return nil
	}

	for _, s := range c.skills {
		if cycle := visit(s.ID); cycle != nil {
			return cycle
		}
	}
	return nil
}

func cloneSkill(s domain.Skill) domain.Skill {
	out := s
	if s.Prerequisites != nil {
		out.Prerequisites = append([]string(nil), s.Prerequisites...)
	}
	if s.Stats != nil {
		out.Stats = make(map[domain.Stat]float64, len(s.Stats))
		for k, v := range s.Stats {
			out.Stats[k] = v
		}
	}
	return out
}

// Len returns the number of skills.
func (c *Catalog) Len() int {
	return len(c.skills)
}

// Skills returns every definition in catalog order.
func (c *Catalog) Skills() []domain.Skill {
	return append([]domain.Skill(nil), c.skills...)
}

// IDs returns every skill ID in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.skills))
	for i, s := range c.skills {
		ids[i] = s.ID
	}
	return ids
}

// Lookup returns the definition for id.
func (c *Catalog) Lookup(id string) (domain.Skill, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Skill{}, false
	}
	return c.skills[i], true
}

// Has reports whether id is defined.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// InTree returns the definitions of one tree in catalog order.
func (c *Catalog) InTree(t domain.Tree) []domain.Skill {
	idx := c.byTree[t]
	out := make([]domain.Skill, len(idx))
	for i, j := range idx {
		out[i] = c.skills[j]
	}
	return out
}

// Dependents returns the IDs of skills that list id as a prerequisite.
func (c *Catalog) Dependents(id string) []string {
	return c.dependents[id]
}
