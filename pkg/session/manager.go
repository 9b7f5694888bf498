package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	skilltree "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/logging"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/ports"
	"github.com/google/uuid"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates build access, ensuring safe concurrent operations.
// It uses reference counting to garbage collect unused locks.
type Manager struct {
	store ports.BuildStore

	mu    sync.Mutex            // guards locks
	locks map[string]*lockEntry // active per-build locks

	plannerOpts []skilltree.Option
	newID       func() string
	logger      *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithPlannerOptions sets the options applied to every build the Manager creates.
func WithPlannerOptions(opts ...skilltree.Option) Option {
	return func(m *Manager) {
		m.plannerOpts = append(m.plannerOpts, opts...)
	}
}

// WithIDGenerator replaces the random UUID build ids.
func WithIDGenerator(gen func() string) Option {
	return func(m *Manager) {
		m.newID = gen
	}
}

// NewManager creates a new Manager backed by store.
func NewManager(store ports.BuildStore, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		locks:  make(map[string]*lockEntry),
		newID:  uuid.NewString,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference count.
// The caller MUST lock entry.mu, and then call release(id) after unlocking.
func (m *Manager) acquire(id string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		entry = &lockEntry{}
		m.locks[id] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry if it reaches zero.
func (m *Manager) release(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[id]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, id)
	}
}

// Create opens a new empty build and returns its id.
// opts are applied after the Manager's planner options.
func (m *Manager) Create(ctx context.Context, opts ...skilltree.Option) (string, error) {
	id := m.newID()

	all := make([]skilltree.Option, 0, len(m.plannerOpts)+len(opts)+1)
	all = append(all, m.plannerOpts...)
	all = append(all, opts...)
	all = append(all, skilltree.WithName(id))

	planner, err := skilltree.New(all...)
	if err != nil {
		return "", fmt.Errorf("failed to create build: %w", err)
	}

	err = m.WithLock(ctx, id, func(ctx context.Context) error {
		return m.store.Save(ctx, id, planner)
	})
	if err != nil {
		return "", fmt.Errorf("failed to register build %s: %w", id, err)
	}

	m.logger.Debug("build created", "build", id, "max_points", planner.MaxPoints())
	return id, nil
}

// WithBuild runs fn with exclusive access to the build.
// Returns domain.ErrBuildNotFound when id is unknown.
func (m *Manager) WithBuild(ctx context.Context, id string, fn func(ctx context.Context, p *skilltree.Planner) error) error {
	return m.WithLock(ctx, id, func(ctx context.Context) error {
		planner, err := m.store.Load(ctx, id)
		if err != nil {
			return err
		}
		return fn(ctx, planner)
	})
}

// Snapshot returns the read model of the build.
func (m *Manager) Snapshot(ctx context.Context, id string) (skilltree.Snapshot, error) {
	var snap skilltree.Snapshot
	err := m.WithBuild(ctx, id, func(_ context.Context, p *skilltree.Planner) error {
		snap = p.Snapshot()
		return nil
	})
	return snap, err
}

// Delete discards the build.
func (m *Manager) Delete(ctx context.Context, id string) error {
	return m.WithLock(ctx, id, func(ctx context.Context) error {
		if _, err := m.store.Load(ctx, id); err != nil {
			return err
		}
		m.logger.Debug("build deleted", "build", id)
		return m.store.Delete(ctx, id)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying build store.
func (m *Manager) Store() ports.BuildStore {
	return m.store
}

// WithLock executes a function while holding the lock for the build.
func (m *Manager) WithLock(ctx context.Context, id string, fn func(context.Context) error) error {
	entry := m.acquire(id)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(id)
	}()

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx)
}
