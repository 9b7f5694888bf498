package runtime

import "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"

// Undo restores the previous snapshot. It is a no-op at the start of the log.
func (e *Engine) Undo() bool {
	return e.travel(domain.EventUndo, e.history.Undo)
}

// Redo restores the next snapshot. It is a no-op at the tail of the log.
func (e *Engine) Redo() bool {
	return e.travel(domain.EventRedo, e.history.Redo)
}

// CanUndo reports whether there is an earlier snapshot.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether there is a later snapshot.
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// travel replaces the live allocation with the snapshot returned by move.
// The total is recomputed from the snapshot, never carried over.
func (e *Engine) travel(kind domain.EventType, move func() (domain.Allocation, bool)) bool {
	prev := e.ranks
	snap, ok := move()
	if !ok {
		e.logger.Debug("history boundary reached", "action", kind, "cursor", e.history.Cursor())
		return false
	}

	e.ranks = snap
	e.total = snap.Total()

	e.logger.Debug("history moved",
		"action", kind,
		"cursor", e.history.Cursor(),
		"history_len", e.history.Len(),
		"total_points", e.total,
	)
	e.emitMutation(kind, "", domain.Diff(prev, e.ranks))
	return true
}
