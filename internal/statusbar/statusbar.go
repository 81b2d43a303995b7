// Package statusbar draws the bottom line: document, selection, history
// depth and mode, or a temporary message.
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/inkpad/internal/theme"
	"github.com/bethropolis/inkpad/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{MessageTimeout: 4 * time.Second}
}

// StatusBar is the status line component. Its fields are pushed by the
// app and read when drawing.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	filePath   string
	isModified bool
	count      int
	selection  types.Annotation
	selIndex   int
	undoDepth  int
	redoDepth  int
	editorMode string

	// prompt is shown instead of everything else while set.
	prompt string

	tempMessage     string
	tempMessageTime time.Time

	now func() time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, selIndex: -1, now: time.Now}
}

// SetFileInfo updates the file path and modified flag.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetSelectionInfo updates the annotation count and the current annotation.
// index is -1 when nothing is selected.
func (sb *StatusBar) SetSelectionInfo(count int, a types.Annotation, index int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.count = count
	sb.selection = a
	sb.selIndex = index
}

// SetHistoryInfo updates the undo and redo depths.
func (sb *StatusBar) SetHistoryInfo(undo, redo int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.undoDepth = undo
	sb.redoDepth = redo
}

// SetEditorMode updates the displayed mode name.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetPrompt shows an input line such as ":w out.toml". An empty prompt
// returns to the normal display.
func (sb *StatusBar) SetPrompt(prompt string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.prompt = prompt
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...any) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// defaultText builds the status line. Caller holds the lock.
func (sb *StatusBar) defaultText() string {
	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	modified := ""
	if sb.isModified {
		modified = " [Modified]"
	}

	var sel string
	if sb.selIndex >= 0 {
		sel = fmt.Sprintf("#%d/%d %s", sb.selIndex+1, sb.count, sb.selection.Summary())
	} else {
		sel = fmt.Sprintf("%d annotation(s)", sb.count)
	}

	mode := ""
	if sb.editorMode != "" {
		mode = " -- " + strings.ToUpper(sb.editorMode)
	}
	return fmt.Sprintf("%s%s -- %s -- undo %d redo %d%s",
		fPath, modified, sel, sb.undoDepth, sb.redoDepth, mode)
}

// Text returns what Draw would show and the theme style name for it.
// Expired temporary messages are cleared.
func (sb *StatusBar) Text() (text, styleName string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.prompt != "" {
		return sb.prompt, theme.StyleStatusBarPrompt
	}

	active := !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	if active && sb.tempMessage != "" {
		return sb.tempMessage, theme.StyleStatusBarMessage
	}
	if sb.isModified {
		return sb.defaultText(), theme.StyleStatusBarModified
	}
	return sb.defaultText(), theme.StyleStatusBar
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, th *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	text, styleName := sb.Text()
	style := th.GetStyle(styleName)

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}
}
