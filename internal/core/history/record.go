// Package history provides the undo/redo log of annotation edits.
package history

import "github.com/bethropolis/inkpad/internal/types"

// ActionType names the kind of edit a record describes.
type ActionType int

const (
	AddAction ActionType = iota
	MoveAction
	DeleteAction
	ModifyAction
)

func (t ActionType) String() string {
	switch t {
	case AddAction:
		return "add"
	case MoveAction:
		return "move"
	case DeleteAction:
		return "delete"
	case ModifyAction:
		return "modify"
	}
	return "unknown"
}

// Record is a single reversible edit. Before and After are value copies
// of the annotation on either side of the edit; for AddAction Before is
// unused and for DeleteAction After is unused. Index is the list position
// the annotation occupied (or occupies) when the edit happened.
type Record struct {
	Type   ActionType
	Index  int
	Before types.Annotation
	After  types.Annotation
}
