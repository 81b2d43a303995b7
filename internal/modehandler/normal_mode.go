package modehandler

import (
	"strings"

	"github.com/bethropolis/inkpad/internal/core"
	"github.com/bethropolis/inkpad/internal/input"
	"github.com/bethropolis/inkpad/internal/logger"
	"github.com/bethropolis/inkpad/internal/types"
)

// handleActionNormal runs a Normal-mode action.
func (mh *ModeHandler) handleActionNormal(actionEvent input.ActionEvent) bool {
	processed := true

	switch actionEvent.Action {
	case input.ActionEnterCommandMode:
		mh.cmdBuffer = ""
		mh.setMode(ModeCommand)

	case input.ActionAdd:
		mh.textBuffer = ""
		mh.setMode(ModeInsert)

	case input.ActionQuit:
		if _, _, ok := mh.store.Selected(); ok {
			mh.store.Execute(core.Command{Kind: core.CmdDeselect})
		} else {
			mh.RequestQuit(false)
			return true
		}
	case input.ActionForceQuit:
		mh.RequestQuit(true)
		return false

	case input.ActionSave:
		if err := mh.save(""); err != nil {
			mh.statusBar.SetTemporaryMessage("Save FAILED: %v", err)
			logger.Warnf("ModeHandler: save failed: %v", err)
		} else {
			mh.statusBar.SetTemporaryMessage("Saved %s", mh.store.FilePath())
		}

	case input.ActionDelete:
		processed = mh.requireSelection(mh.store.Delete())
	case input.ActionToggleBold:
		processed = mh.requireSelection(mh.store.ToggleBold())
	case input.ActionToggleItalic:
		processed = mh.requireSelection(mh.store.ToggleItalic())
	case input.ActionToggleUnderline:
		processed = mh.requireSelection(mh.store.ToggleUnderline())
	case input.ActionNextFont:
		processed = mh.cycleFont(1)
	case input.ActionPrevFont:
		processed = mh.cycleFont(-1)
	case input.ActionFontBigger:
		processed = mh.stepFontSize(FontSizeStep)
	case input.ActionFontSmaller:
		processed = mh.stepFontSize(-FontSizeStep)
	case input.ActionAlignLeft:
		processed = mh.requireSelection(mh.store.SetAlignment(types.AlignLeft))
	case input.ActionAlignCenter:
		processed = mh.requireSelection(mh.store.SetAlignment(types.AlignCenter))
	case input.ActionAlignRight:
		processed = mh.requireSelection(mh.store.SetAlignment(types.AlignRight))

	case input.ActionUndo:
		if !mh.store.Undo() {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case input.ActionRedo:
		if !mh.store.Redo() {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
		}

	case input.ActionNudgeUp:
		processed = mh.nudge(0, -1)
	case input.ActionNudgeDown:
		processed = mh.nudge(0, 1)
	case input.ActionNudgeLeft:
		processed = mh.nudge(-1, 0)
	case input.ActionNudgeRight:
		processed = mh.nudge(1, 0)
	case input.ActionSelectNext:
		processed = mh.store.Execute(core.Command{Kind: core.CmdSelectNext})
	case input.ActionSelectPrev:
		processed = mh.store.Execute(core.Command{Kind: core.CmdSelectPrev})

	default:
		processed = false
	}

	if processed && actionEvent.Action != input.ActionQuit {
		mh.forceQuitPending = false
	}
	return processed
}

// requireSelection reports changed, telling the user when nothing was
// selected to change.
func (mh *ModeHandler) requireSelection(changed bool) bool {
	if !changed {
		if _, _, ok := mh.store.Selected(); !ok {
			mh.statusBar.SetTemporaryMessage("No annotation selected")
			return true
		}
	}
	return changed
}

func (mh *ModeHandler) nudge(dx, dy int) bool {
	step := float64(mh.nudgeStep)
	return mh.requireSelection(mh.store.Move(
		float64(dx)*step*mh.layout.CellWidth,
		float64(dy)*step*mh.layout.CellHeight,
	))
}

// cycleFont moves the current annotation dir steps through the font list.
// A font that is not in the list goes to the first entry.
func (mh *ModeHandler) cycleFont(dir int) bool {
	a, _, ok := mh.store.Selected()
	if !ok {
		return mh.requireSelection(false)
	}
	next := mh.fonts[0]
	for i, name := range mh.fonts {
		if strings.EqualFold(name, a.Font) {
			next = mh.fonts[(i+dir+len(mh.fonts))%len(mh.fonts)]
			break
		}
	}
	return mh.store.SetFont(next)
}

func (mh *ModeHandler) stepFontSize(delta int) bool {
	a, _, ok := mh.store.Selected()
	if !ok {
		return mh.requireSelection(false)
	}
	if a.FontSize+delta <= 0 {
		mh.statusBar.SetTemporaryMessage("Font size %d is the smallest", a.FontSize)
		return true
	}
	return mh.store.SetFontSize(a.FontSize + delta)
}
