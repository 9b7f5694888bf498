package runtime

import "github.com/Johnyc98/Arc-Raiders-Skill-Tree-Builder/pkg/domain"

// History is a linear, branch-free log of allocation snapshots with a cursor.
// Snapshots are stored as private deep copies and never mutated.
type History struct {
	snapshots []domain.Allocation
	cursor    int
}

// NewHistory starts a log holding a single snapshot of initial.
func NewHistory(initial domain.Allocation) *History {
	return &History{
		snapshots: []domain.Allocation{initial.Clone()},
	}
}

// Record drops every snapshot after the cursor, appends a copy of snap and
// moves the cursor to the new tail.
func (h *History) Record(snap domain.Allocation) {
	h.snapshots = append(h.snapshots[:h.cursor+1], snap.Clone())
	h.cursor = len(h.snapshots) - 1
}

// Undo moves the cursor back one step and returns a copy of the snapshot there.
// It returns false at the start of the log.
func (h *History) Undo() (domain.Allocation, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.cursor--
	return h.snapshots[h.cursor].Clone(), true
}

// Redo moves the cursor forward one step and returns a copy of the snapshot there.
// It returns false at the tail of the log.
func (h *History) Redo() (domain.Allocation, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.cursor++
	return h.snapshots[h.cursor].Clone(), true
}

// CanUndo reports whether the cursor can move back.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether the cursor can move forward.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.snapshots)-1
}

// Current returns a copy of the snapshot under the cursor.
func (h *History) Current() domain.Allocation {
	return h.snapshots[h.cursor].Clone()
}

// Len returns the number of snapshots in the log.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Cursor returns the index of the current snapshot.
func (h *History) Cursor() int {
	return h.cursor
}
