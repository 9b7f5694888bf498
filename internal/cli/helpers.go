package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/internal/logging"
	"github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	start  sync.Once
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	sc.start.Do(func() {
		signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
		go func() {
			select {
			case sig := <-sc.sigCh:
				sc.mu.Lock()
				sc.sigVal = sig
				sc.mu.Unlock()
				sc.Cancel()
			case <-sc.Context.Done():
			}
			sc.stop.Do(func() {
				signal.Stop(sc.sigCh)
			})
		}()
	})
	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// signalOf returns the signal that cancelled ctx, or nil when ctx is not a SignalContext.
func signalOf(ctx context.Context) os.Signal {
	if sc, ok := ctx.(interface{ Signal() os.Signal }); ok {
		return sc.Signal()
	}
	return nil
}

// CreateLogger configures the application logger.
// In debug mode it writes to Stderr to stay out of the shell output.
func CreateLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// DebugHooks logs every planner event at debug level.
func DebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnMutation: func(e *domain.MutationEvent) {
			logger.Debug("Mutation", "type", e.Type, "skill_id", e.SkillID, "rank", e.Rank, "total", e.TotalPoints)
		},
		OnRejected: func(e *domain.RejectionEvent) {
			logger.Debug("Rejected", "skill_id", e.SkillID, "reason", e.Reason)
		},
		OnTierChange: func(e *domain.TierEvent) {
			logger.Debug("Tier Change", "tier", e.Tier, "max_points", e.MaxPoints, "over_limit", e.OverLimit)
		},
	}
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

// logCompletion prints how an interactive session ended.
func logCompletion(w io.Writer, err error, sig os.Signal, used, maxPoints int) {
	switch {
	case sig == os.Interrupt:
		fmt.Fprintf(w, "[CTRL+C]\n")
		printSystemMessage(w, "Interrupted at %d/%d points.", used, maxPoints)
	case sig != nil:
		// SIGTERM or others
		fmt.Fprintln(w)
		printSystemMessage(w, "Terminated at %d/%d points.", used, maxPoints)
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(w)
		printSystemMessage(w, "Interrupted at %d/%d points.", used, maxPoints)
	default:
		fmt.Fprintln(w)
		printSystemMessage(w, "Final build: %d/%d points.", used, maxPoints)
	}
}

// IsInterrupted reports whether err only signals that input ended or was cancelled.
func IsInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) || errors.Is(err, ErrQuit)
}

// HandleExecutionError hides interruptions so they exit with status 0.
func HandleExecutionError(err error) error {
	if err == nil || IsInterrupted(err) {
		return nil
	}
	return err
}
