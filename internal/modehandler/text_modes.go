package modehandler

import (
	"strings"

	"github.com/bethropolis/inkpad/internal/input"
	"github.com/bethropolis/inkpad/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// handleActionInsert collects the text of a new annotation.
func (mh *ModeHandler) handleActionInsert(actionEvent input.ActionEvent, ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyRune:
		mh.textBuffer += string(ev.Rune())
	case actionEvent.Action == input.ActionDeleteCharBackward:
		mh.textBuffer = trimLastGrapheme(mh.textBuffer)
	case actionEvent.Action == input.ActionInsertNewLine:
		text := mh.textBuffer
		mh.textBuffer = ""
		mh.setMode(ModeNormal)
		if !mh.store.Add(text, "", 0) {
			mh.statusBar.SetTemporaryMessage("Empty annotation discarded")
		}
		return true
	case actionEvent.Action == input.ActionQuit:
		mh.textBuffer = ""
		mh.setMode(ModeNormal)
		logger.Debugf("ModeHandler: annotation input canceled")
		return true
	default:
		return false
	}
	mh.refreshPrompt()
	return true
}

// handleActionCommand edits and runs the ':' command line.
func (mh *ModeHandler) handleActionCommand(actionEvent input.ActionEvent, ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyRune:
		mh.cmdBuffer += string(ev.Rune())
	case actionEvent.Action == input.ActionDeleteCharBackward:
		if mh.cmdBuffer == "" {
			mh.setMode(ModeNormal)
			return true
		}
		mh.cmdBuffer = trimLastGrapheme(mh.cmdBuffer)
	case actionEvent.Action == input.ActionInsertNewLine:
		cmd := mh.cmdBuffer
		mh.cmdBuffer = ""
		mh.setMode(ModeNormal)
		mh.ExecuteCommand(cmd)
		return true
	case actionEvent.Action == input.ActionQuit:
		mh.cmdBuffer = ""
		mh.setMode(ModeNormal)
		logger.Debugf("ModeHandler: Canceled Command Mode via Escape")
		return true
	default:
		return false
	}
	mh.refreshPrompt()
	return true
}

// ExecuteCommand parses and runs one command line such as "size 24".
func (mh *ModeHandler) ExecuteCommand(line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}
	cmdName, args := parts[0], parts[1:]

	cmdFunc, exists := mh.commands[cmdName]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", cmdName)
		return
	}
	logger.Debugf("ModeHandler: Executing command ':%s' with args %v", cmdName, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", cmdName, err)
		return
	}
	if cmdName != "q" {
		mh.forceQuitPending = false
	}
}
