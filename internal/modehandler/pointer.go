package modehandler

import (
	"github.com/bethropolis/inkpad/internal/core"
	"github.com/bethropolis/inkpad/internal/input"
	"github.com/bethropolis/inkpad/internal/types"
	"github.com/gdamore/tcell/v2"
)

// HandleMouseEvent maps left-button press, drag and release onto the
// store's drag commands. Presses outside the canvas and presses outside
// Normal mode are ignored; a drag in progress always gets its release.
func (mh *ModeHandler) HandleMouseEvent(ev *tcell.EventMouse) bool {
	pe := mh.inputProcessor.ProcessMouse(ev)
	dragging := mh.store.Dragging()

	switch pe.Kind {
	case input.PointerPress:
		if mh.currentMode != ModeNormal || pe.Row < 0 || pe.Row >= mh.layout.Rows {
			return false
		}
		hit := mh.layout.HitTest(mh.store.Annotations(), pe.Col, pe.Row)
		return mh.store.Execute(core.Command{
			Kind:  core.CmdDragBegin,
			Point: mh.layout.PointAt(pe.Col, pe.Row),
			Index: hit,
		})
	case input.PointerDrag:
		if !dragging {
			return false
		}
		return mh.store.Execute(core.Command{Kind: core.CmdDragTo, Point: mh.clampedPoint(pe.Col, pe.Row)})
	case input.PointerRelease:
		if !dragging {
			return false
		}
		moved := mh.store.Execute(core.Command{Kind: core.CmdDragTo, Point: mh.clampedPoint(pe.Col, pe.Row)})
		ended := mh.store.Execute(core.Command{Kind: core.CmdDragEnd})
		if moved || ended {
			mh.forceQuitPending = false
		}
		return moved || ended
	}
	return false
}

// clampedPoint keeps the pointer inside the canvas rows.
func (mh *ModeHandler) clampedPoint(col, row int) types.Point {
	row = max(0, min(row, mh.layout.Rows-1))
	return mh.layout.PointAt(col, row)
}
