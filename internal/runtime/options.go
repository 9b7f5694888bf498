package runtime

import (
	"log/slog"
	"time"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
)

// EngineOption defines a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger used for mutation and rejection traces.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithBudget sets the point budget (base, per-tier bonus and starting tier).
func WithBudget(b domain.Budget) EngineOption {
	return func(e *Engine) {
		e.budget = b
	}
}

// WithName labels the events emitted by the engine.
func WithName(name string) EngineOption {
	return func(e *Engine) {
		e.name = name
	}
}

// WithClock overrides the time source used to stamp events.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}
