// Package modehandler turns key and mouse events into store commands,
// depending on the current input mode.
package modehandler

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bethropolis/inkpad/internal/core"
	"github.com/bethropolis/inkpad/internal/event"
	"github.com/bethropolis/inkpad/internal/input"
	"github.com/bethropolis/inkpad/internal/logger"
	"github.com/bethropolis/inkpad/internal/plugin"
	"github.com/bethropolis/inkpad/internal/render"
	"github.com/bethropolis/inkpad/internal/statusbar"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeInsert           // typing the text of a new annotation
	ModeCommand
)

func (m InputMode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	case ModeCommand:
		return "command"
	}
	return "normal"
}

// FontSizeStep is the change applied by the +/- keys.
const FontSizeStep = 2

// ModeHandler manages input modes, command execution, and related state.
type ModeHandler struct {
	store          *core.Store
	layout         *render.Terminal
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}
	quitOnce       sync.Once
	save           func(path string) error
	fonts          []string
	nudgeStep      int

	currentMode      InputMode
	cmdBuffer        string
	textBuffer       string
	commands         map[string]plugin.CommandFunc
	forceQuitPending bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Store          *core.Store
	Layout         *render.Terminal
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{}
	// Save writes the document; "" means its current path.
	Save      func(path string) error
	Fonts     []string
	NudgeStep int // cells per arrow key press
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Store == nil || cfg.Layout == nil || cfg.InputProcessor == nil || cfg.EventManager == nil ||
		cfg.StatusBar == nil || cfg.QuitSignal == nil || cfg.Save == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	if len(cfg.Fonts) == 0 {
		cfg.Fonts = render.Families()
	}
	if cfg.NudgeStep <= 0 {
		cfg.NudgeStep = 1
	}
	return &ModeHandler{
		store:          cfg.Store,
		layout:         cfg.Layout,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		save:           cfg.Save,
		fonts:          cfg.Fonts,
		nudgeStep:      cfg.NudgeStep,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
	}
}

// HandleKeyEvent handles a key in the current mode and reports whether
// the screen needs a redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)

	switch mh.currentMode {
	case ModeNormal:
		return mh.handleActionNormal(actionEvent)
	case ModeInsert:
		return mh.handleActionInsert(actionEvent, ev)
	case ModeCommand:
		return mh.handleActionCommand(actionEvent, ev)
	}
	logger.Warnf("ModeHandler: unknown input mode %v", mh.currentMode)
	return false
}

// RequestQuit closes the quit channel. Without force, a modified document
// only arms the quit and a second request is needed.
func (mh *ModeHandler) RequestQuit(force bool) bool {
	if !force && mh.store.IsModified() && !mh.forceQuitPending {
		mh.statusBar.SetTemporaryMessage("Unsaved changes! Press ESC again or Ctrl+Q to force quit.")
		mh.forceQuitPending = true
		return false
	}
	mh.quitOnce.Do(func() {
		logger.Debugf("ModeHandler: quit requested (force=%v)", force)
		close(mh.quitSignal)
	})
	return true
}

// RegisterCommand adds a ':' command.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.Debugf("ModeHandler: Registered command ':%s'", name)
	return nil
}

// Commands returns the registered command names, sorted.
func (mh *ModeHandler) Commands() []string {
	names := make([]string, 0, len(mh.commands))
	for name := range mh.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCurrentModeString returns the mode name shown in the status bar.
func (mh *ModeHandler) GetCurrentModeString() string {
	return mh.currentMode.String()
}

// GetCommandBuffer returns the command line being typed, or "".
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return mh.cmdBuffer
	}
	return ""
}

// GetTextBuffer returns the annotation text being typed, or "".
func (mh *ModeHandler) GetTextBuffer() string {
	if mh.currentMode == ModeInsert {
		return mh.textBuffer
	}
	return ""
}

func (mh *ModeHandler) setMode(m InputMode) {
	if mh.currentMode != m {
		logger.Debugf("ModeHandler: %v -> %v", mh.currentMode, m)
	}
	mh.currentMode = m
	mh.statusBar.SetEditorMode(m.String())
	mh.refreshPrompt()
}

func (mh *ModeHandler) refreshPrompt() {
	switch mh.currentMode {
	case ModeInsert:
		mh.statusBar.SetPrompt("add: " + mh.textBuffer)
	case ModeCommand:
		mh.statusBar.SetPrompt(":" + mh.cmdBuffer)
	default:
		mh.statusBar.SetPrompt("")
	}
}

// trimLastGrapheme drops the last user-perceived character of s.
func trimLastGrapheme(s string) string {
	last := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		last, _ = gr.Positions()
	}
	return s[:last]
}
