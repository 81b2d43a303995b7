package core

import (
	"strings"

	"github.com/bethropolis/inkpad/internal/core/history"
	"github.com/bethropolis/inkpad/internal/logger"
	"github.com/bethropolis/inkpad/internal/types"
)

// NoSelection is the Current value of a state without a selected annotation.
const NoSelection = -1

// Defaults are applied to newly added annotations.
type Defaults struct {
	Origin   types.Point
	Font     string
	FontSize int
}

// DefaultDefaults mirrors the canvas defaults: origin (100,100), 16px sans-serif.
func DefaultDefaults() Defaults {
	return Defaults{
		Origin:   types.Point{X: 100, Y: 100},
		Font:     "go",
		FontSize: 16,
	}
}

// Drag tracks an in-progress pointer drag of the current annotation.
type Drag struct {
	Active bool
	Index  int
	Offset types.Point // pointer minus annotation anchor at press time
	Start  types.Point // annotation anchor at press time
}

// State is the complete annotation model. It is treated as a value: the
// operations in this file return a new State and never modify the one
// they were given, so a State can be kept as a snapshot.
type State struct {
	Annotations []types.Annotation
	Current     int
	History     history.Log
	Defaults    Defaults
	Drag        Drag
}

// NewState creates an empty state.
func NewState(defaults Defaults, maxHistory int) State {
	if defaults.FontSize <= 0 {
		defaults.FontSize = DefaultDefaults().FontSize
	}
	if defaults.Font == "" {
		defaults.Font = DefaultDefaults().Font
	}
	return State{
		Current:  NoSelection,
		History:  history.New(maxHistory),
		Defaults: defaults,
	}
}

// Selected returns the current annotation, if any.
func (s State) Selected() (types.Annotation, bool) {
	if s.Current < 0 || s.Current >= len(s.Annotations) {
		return types.Annotation{}, false
	}
	return s.Annotations[s.Current], true
}

// HasSelection reports whether an annotation is current.
func (s State) HasSelection() bool {
	_, ok := s.Selected()
	return ok
}

// --- list helpers; each returns fresh storage ---

func replaceAt(list []types.Annotation, i int, a types.Annotation) []types.Annotation {
	out := append([]types.Annotation(nil), list...)
	out[i] = a
	return out
}

func insertAt(list []types.Annotation, i int, a types.Annotation) []types.Annotation {
	out := make([]types.Annotation, 0, len(list)+1)
	out = append(out, list[:i]...)
	out = append(out, a)
	return append(out, list[i:]...)
}

func removeAt(list []types.Annotation, i int) []types.Annotation {
	out := make([]types.Annotation, 0, len(list)-1)
	out = append(out, list[:i]...)
	return append(out, list[i+1:]...)
}

// selectionAfterRemove keeps the selection on the same annotation after
// the one at removed leaves the list.
func selectionAfterRemove(current, removed int) int {
	switch {
	case current == removed:
		return NoSelection
	case current > removed:
		return current - 1
	}
	return current
}

// --- mutating operations ---

// Add appends a new annotation at the default origin and selects it.
// Blank text is ignored. A non-positive size uses the default size and an
// empty font the default font.
func Add(s State, text, font string, size int) State {
	if strings.TrimSpace(text) == "" {
		logger.Debugf("Core: ignoring add with empty text")
		return s
	}
	if font == "" {
		font = s.Defaults.Font
	}
	if size <= 0 {
		size = s.Defaults.FontSize
	}
	a := types.Annotation{
		Text:      text,
		Font:      font,
		FontSize:  size,
		X:         s.Defaults.Origin.X,
		Y:         s.Defaults.Origin.Y,
		Alignment: types.AlignLeft,
	}
	s = endDrag(s)
	idx := len(s.Annotations)
	s.Annotations = insertAt(s.Annotations, idx, a)
	s.Current = idx
	s.History = s.History.Record(history.Record{Type: history.AddAction, Index: idx, After: a})
	return s
}

// Delete removes the current annotation and clears the selection.
func Delete(s State) State {
	a, ok := s.Selected()
	if !ok {
		return s
	}
	s = endDrag(s)
	idx := s.Current
	s.Annotations = removeAt(s.Annotations, idx)
	s.Current = NoSelection
	s.History = s.History.Record(history.Record{Type: history.DeleteAction, Index: idx, Before: a})
	return s
}

// modifyCurrent applies fn to the current annotation and records the edit
// as kind. An active drag is finished first so its move is recorded before
// the edit. Edits that change nothing record nothing.
func modifyCurrent(s State, kind history.ActionType, fn func(types.Annotation) types.Annotation) State {
	s = endDrag(s)
	before, ok := s.Selected()
	if !ok {
		return s
	}
	after := fn(before)
	if after == before {
		return s
	}
	s.Annotations = replaceAt(s.Annotations, s.Current, after)
	s.History = s.History.Record(history.Record{Type: kind, Index: s.Current, Before: before, After: after})
	return s
}

// SetStyle sets exactly the given decoration flags on the current annotation.
func SetStyle(s State, style types.Style) State {
	return modifyCurrent(s, history.ModifyAction, func(a types.Annotation) types.Annotation {
		return a.WithStyle(style)
	})
}

// ToggleStyle flips the given flags on the current annotation.
func ToggleStyle(s State, flags types.Style) State {
	return modifyCurrent(s, history.ModifyAction, func(a types.Annotation) types.Annotation {
		return a.WithStyle(a.Style() ^ flags)
	})
}

// SetFont changes the font family of the current annotation.
func SetFont(s State, font string) State {
	font = strings.TrimSpace(font)
	if font == "" {
		return s
	}
	return modifyCurrent(s, history.ModifyAction, func(a types.Annotation) types.Annotation {
		a.Font = font
		return a
	})
}

// SetFontSize changes the size of the current annotation. Non-positive
// sizes are ignored.
func SetFontSize(s State, size int) State {
	if size <= 0 {
		return s
	}
	return modifyCurrent(s, history.ModifyAction, func(a types.Annotation) types.Annotation {
		a.FontSize = size
		return a
	})
}

// SetAlignment changes the alignment of the current annotation.
func SetAlignment(s State, align types.Alignment) State {
	return modifyCurrent(s, history.ModifyAction, func(a types.Annotation) types.Annotation {
		a.Alignment = align
		return a
	})
}

// Move translates the current annotation by (dx, dy).
func Move(s State, dx, dy float64) State {
	return modifyCurrent(s, history.MoveAction, func(a types.Annotation) types.Annotation {
		a.X += dx
		a.Y += dy
		return a
	})
}

// --- history ---

// Undo reverses the newest recorded edit. The annotation it touches becomes
// current; undoing an add clears the selection if it pointed at the
// removed annotation.
func Undo(s State) State {
	s = endDrag(s)
	r, next, ok := s.History.Undo()
	if !ok {
		return s
	}
	switch r.Type {
	case history.AddAction:
		if r.Index < 0 || r.Index >= len(s.Annotations) {
			logger.Warnf("Core: undo add index %d out of range (%d annotations)", r.Index, len(s.Annotations))
			return s
		}
		s.Annotations = removeAt(s.Annotations, r.Index)
		s.Current = selectionAfterRemove(s.Current, r.Index)
	case history.DeleteAction:
		if r.Index < 0 || r.Index > len(s.Annotations) {
			logger.Warnf("Core: undo delete index %d out of range (%d annotations)", r.Index, len(s.Annotations))
			return s
		}
		s.Annotations = insertAt(s.Annotations, r.Index, r.Before)
		s.Current = r.Index
	case history.MoveAction, history.ModifyAction:
		if r.Index < 0 || r.Index >= len(s.Annotations) {
			logger.Warnf("Core: undo %v index %d out of range (%d annotations)", r.Type, r.Index, len(s.Annotations))
			return s
		}
		s.Annotations = replaceAt(s.Annotations, r.Index, r.Before)
		s.Current = r.Index
	}
	s.History = next
	logger.Debugf("Core: undid %v at %d", r.Type, r.Index)
	return s
}

// Redo replays the newest undone edit.
func Redo(s State) State {
	s = endDrag(s)
	r, next, ok := s.History.Redo()
	if !ok {
		return s
	}
	switch r.Type {
	case history.AddAction:
		if r.Index < 0 || r.Index > len(s.Annotations) {
			logger.Warnf("Core: redo add index %d out of range (%d annotations)", r.Index, len(s.Annotations))
			return s
		}
		s.Annotations = insertAt(s.Annotations, r.Index, r.After)
		s.Current = r.Index
	case history.DeleteAction:
		if r.Index < 0 || r.Index >= len(s.Annotations) {
			logger.Warnf("Core: redo delete index %d out of range (%d annotations)", r.Index, len(s.Annotations))
			return s
		}
		s.Annotations = removeAt(s.Annotations, r.Index)
		s.Current = selectionAfterRemove(s.Current, r.Index)
	case history.MoveAction, history.ModifyAction:
		if r.Index < 0 || r.Index >= len(s.Annotations) {
			logger.Warnf("Core: redo %v index %d out of range (%d annotations)", r.Type, r.Index, len(s.Annotations))
			return s
		}
		s.Annotations = replaceAt(s.Annotations, r.Index, r.After)
		s.Current = r.Index
	}
	s.History = next
	logger.Debugf("Core: redid %v at %d", r.Type, r.Index)
	return s
}

// --- selection ---

// Select makes the annotation at index current. Out of range indexes
// clear the selection.
func Select(s State, index int) State {
	if index < 0 || index >= len(s.Annotations) {
		index = NoSelection
	}
	if index == s.Current {
		return s
	}
	s = endDrag(s)
	s.Current = index
	return s
}

// SelectNext cycles the selection forward through the list.
func SelectNext(s State) State {
	n := len(s.Annotations)
	if n == 0 {
		return s
	}
	if s.Current < 0 {
		return Select(s, 0)
	}
	return Select(s, (s.Current+1)%n)
}

// SelectPrev cycles the selection backward through the list.
func SelectPrev(s State) State {
	n := len(s.Annotations)
	if n == 0 {
		return s
	}
	if s.Current < 0 {
		return Select(s, n-1)
	}
	return Select(s, (s.Current-1+n)%n)
}

// Deselect clears the selection.
func Deselect(s State) State {
	return Select(s, NoSelection)
}

// Replace swaps in a whole new annotation list, e.g. after loading a
// document. History is cleared and nothing is selected.
func Replace(s State, list []types.Annotation) State {
	s.Annotations = append([]types.Annotation(nil), list...)
	s.Current = NoSelection
	s.History = s.History.Clear()
	s.Drag = Drag{}
	return s
}
