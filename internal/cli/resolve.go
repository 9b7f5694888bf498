package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/catalog"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
	"github.com/agnivade/levenshtein"
)

// Resolver maps user tokens to catalog skill IDs.
// Tokens may be IDs, display names or unique prefixes of either, in any case.
type Resolver struct {
	catalog *catalog.Catalog
	keys    map[string]string // normalised id or name -> id
}

// NewResolver indexes the IDs and names of cat.
func NewResolver(cat *catalog.Catalog) *Resolver {
	r := &Resolver{catalog: cat, keys: make(map[string]string)}
	for _, s := range cat.Skills() {
		r.keys[normalize(s.ID)] = s.ID
		if s.Name != "" {
			r.keys[normalize(s.Name)] = s.ID
		}
	}
	return r
}

// Resolve returns the skill ID for token, or an error wrapping
// domain.ErrUnknownSkill with a "did you mean" hint.
func (r *Resolver) Resolve(token string) (string, error) {
	key := normalize(token)
	if key == "" {
		return "", fmt.Errorf("%w: empty skill name", domain.ErrUnknownSkill)
	}
	if id, ok := r.keys[key]; ok {
		return id, nil
	}

	if id, ok := r.uniquePrefix(key); ok {
		return id, nil
	}

	if hint := r.Suggest(token); hint != "" {
		return "", fmt.Errorf("%w %q, did you mean %q?", domain.ErrUnknownSkill, token, hint)
	}
	return "", fmt.Errorf("%w %q", domain.ErrUnknownSkill, token)
}

func (r *Resolver) uniquePrefix(key string) (string, bool) {
	if len(key) < 3 {
		return "", false
	}
	found := ""
	for k, id := range r.keys {
		if !strings.HasPrefix(k, key) {
			continue
		}
		if found != "" && found != id {
			return "", false
		}
		found = id
	}
	return found, found != ""
}

// Suggest returns the skill ID closest to token by edit distance,
// or "" when nothing is close enough.
func (r *Resolver) Suggest(token string) string {
	key := normalize(token)
	type scored struct {
		id   string
		dist int
	}

	var results []scored
	for k, id := range r.keys {
		dist := levenshtein.ComputeDistance(key, k)
		if dist > distanceLimit(len(k)) {
			continue
		}
		results = append(results, scored{id: id, dist: dist})
	}
	if len(results) == 0 {
		return ""
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].id < results[j].id
		}
		return results[i].dist < results[j].dist
	})
	return results[0].id
}

// distanceLimit allows roughly one typo per four characters.
func distanceLimit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	}
	return n / 4
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.Join(strings.Fields(s), "_")
}
