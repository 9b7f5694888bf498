package memory

import (
	"context"
	"sort"
	"sync"

	skilltree "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
)

// Store implements ports.BuildStore in memory.
// Safe for concurrent use. Nothing outlives the process.
type Store struct {
	data map[string]*skilltree.Planner
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*skilltree.Planner),
	}
}

// Save registers the planner.
func (s *Store) Save(ctx context.Context, id string, planner *skilltree.Planner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = planner
	return nil
}

// Load retrieves the planner.
func (s *Store) Load(ctx context.Context, id string) (*skilltree.Planner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	planner, ok := s.data[id]
	if !ok {
		return nil, domain.ErrBuildNotFound
	}
	return planner, nil
}

// Delete removes the build.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns the open builds, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
