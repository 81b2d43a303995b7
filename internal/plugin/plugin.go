// Package plugin defines the interface built-in extensions use to reach
// the annotation store, the event bus and the command line.
package plugin

import (
	"github.com/bethropolis/inkpad/internal/core"
	"github.com/bethropolis/inkpad/internal/event"
	"github.com/bethropolis/inkpad/internal/theme"
	"github.com/bethropolis/inkpad/internal/types"
	"github.com/gdamore/tcell/v2"
)

// CommandFunc is a ':' command. args are the whitespace-separated words
// after the command name.
type CommandFunc func(args []string) error

// AnnotatorAPI is what plugins and built-in commands may use.
type AnnotatorAPI interface {
	// --- Annotations ---
	Annotations() []types.Annotation
	Selected() (types.Annotation, int, bool)
	// Execute runs a store command and reports whether anything changed.
	Execute(cmd core.Command) bool
	HistoryDepth() (undo, redo int)

	// --- Document ---
	FilePath() string
	IsModified() bool
	// SaveDocument writes to path, or to the current file when path is "".
	SaveDocument(path string) error
	LoadDocument(path string) error
	ExportPNG(path string) error

	// --- Clipboard ---
	CopyText(text string) error
	PasteText() (string, error)

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data any)
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...any)

	// --- Theme Access ---
	GetThemeStyle(styleName string) tcell.Style
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string

	// --- Configuration ---
	// GetPluginConfigValue reads key from the [plugins.<pluginName>] table.
	GetPluginConfigValue(pluginName, key string) (any, bool)

	// RequestQuit asks the app to exit. Without force, a modified document
	// needs a second request; the result reports whether quitting started.
	RequestQuit(force bool) bool
}

// Plugin is implemented by every built-in extension.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once after the app is wired. Plugins subscribe
	// to events and register commands here.
	Initialize(api AnnotatorAPI) error

	// Shutdown is called once when the app exits.
	Shutdown() error
}
