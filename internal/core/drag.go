package core

import (
	"github.com/bethropolis/inkpad/internal/core/history"
	"github.com/bethropolis/inkpad/internal/types"
)

// BeginDrag starts dragging at pointer position p. hit is the index of the
// annotation under the pointer (NoSelection when none); a hit becomes
// current, otherwise the current annotation is dragged.
func BeginDrag(s State, p types.Point, hit int) State {
	s = endDrag(s)
	if hit >= 0 && hit < len(s.Annotations) {
		s.Current = hit
	}
	a, ok := s.Selected()
	if !ok {
		return s
	}
	s.Drag = Drag{
		Active: true,
		Index:  s.Current,
		Offset: types.Point{X: p.X - a.X, Y: p.Y - a.Y},
		Start:  a.Position(),
	}
	return s
}

// DragTo moves the dragged annotation so the grab point follows p. No
// history is recorded until the drag ends.
func DragTo(s State, p types.Point) State {
	if !s.Drag.Active || s.Drag.Index < 0 || s.Drag.Index >= len(s.Annotations) {
		return s
	}
	a := s.Annotations[s.Drag.Index]
	a.X = p.X - s.Drag.Offset.X
	a.Y = p.Y - s.Drag.Offset.Y
	if a == s.Annotations[s.Drag.Index] {
		return s
	}
	s.Annotations = replaceAt(s.Annotations, s.Drag.Index, a)
	return s
}

// EndDrag finishes a drag, recording one move if the annotation ended up
// somewhere else.
func EndDrag(s State) State {
	return endDrag(s)
}

func endDrag(s State) State {
	d := s.Drag
	if !d.Active {
		return s
	}
	s.Drag = Drag{}
	if d.Index < 0 || d.Index >= len(s.Annotations) {
		return s
	}
	after := s.Annotations[d.Index]
	if after.Position() == d.Start {
		return s
	}
	before := after
	before.X, before.Y = d.Start.X, d.Start.Y
	s.History = s.History.Record(history.Record{Type: history.MoveAction, Index: d.Index, Before: before, After: after})
	return s
}
