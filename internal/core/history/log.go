package history

import "github.com/bethropolis/inkpad/internal/logger"

// DefaultMaxHistory is the undo depth used when no limit is configured.
const DefaultMaxHistory = 100

// Log holds the undo and redo stacks. A Log is a value: every method
// returns a new Log and never changes the receiver, so older states stay
// valid after further edits.
type Log struct {
	undo []Record
	redo []Record
	max  int
}

// New creates an empty log keeping at most maxHistory undo records.
func New(maxHistory int) Log {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return Log{max: maxHistory}
}

func (l Log) limit() int {
	if l.max <= 0 {
		return DefaultMaxHistory
	}
	return l.max
}

// push appends r to stack without sharing storage with the caller's slice.
func push(stack []Record, r Record) []Record {
	return append(stack[:len(stack):len(stack)], r)
}

// Record adds r to the undo stack and clears the redo stack. The oldest
// records are evicted once the limit is exceeded.
func (l Log) Record(r Record) Log {
	undo := push(l.undo, r)
	if over := len(undo) - l.limit(); over > 0 {
		undo = undo[over:]
	}
	logger.Debugf("History: recorded %v at %d (undo=%d, redo cleared=%d)", r.Type, r.Index, len(undo), len(l.redo))
	return Log{undo: undo, max: l.max}
}

// Undo moves the newest undo record onto the redo stack and returns it.
// ok is false when there is nothing to undo.
func (l Log) Undo() (r Record, next Log, ok bool) {
	n := len(l.undo)
	if n == 0 {
		return Record{}, l, false
	}
	r = l.undo[n-1]
	return r, Log{undo: l.undo[: n-1 : n-1], redo: push(l.redo, r), max: l.max}, true
}

// Redo moves the newest redo record back onto the undo stack and returns it.
func (l Log) Redo() (r Record, next Log, ok bool) {
	n := len(l.redo)
	if n == 0 {
		return Record{}, l, false
	}
	r = l.redo[n-1]
	return r, Log{undo: push(l.undo, r), redo: l.redo[: n-1 : n-1], max: l.max}, true
}

// Clear drops both stacks, keeping the limit.
func (l Log) Clear() Log {
	return Log{max: l.max}
}

// CanUndo reports whether there is a record to undo.
func (l Log) CanUndo() bool { return len(l.undo) > 0 }

// CanRedo reports whether there is a record to redo.
func (l Log) CanRedo() bool { return len(l.redo) > 0 }

// UndoDepth returns the number of undoable records.
func (l Log) UndoDepth() int { return len(l.undo) }

// RedoDepth returns the number of redoable records.
func (l Log) RedoDepth() int { return len(l.redo) }

// UndoRecords returns a copy of the undo stack, oldest first.
func (l Log) UndoRecords() []Record { return append([]Record(nil), l.undo...) }

// RedoRecords returns a copy of the redo stack, oldest first.
func (l Log) RedoRecords() []Record { return append([]Record(nil), l.redo...) }
