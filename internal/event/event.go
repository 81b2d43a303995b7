// Package event provides a synchronous publish/subscribe bus.
package event

import (
	"github.com/bethropolis/inkpad/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Annotation store
	TypeAnnotationsChanged // the annotation list or an annotation changed
	TypeSelectionChanged   // the current annotation changed
	TypeHistoryChanged     // undo/redo depth changed

	// Documents
	TypeDocumentLoaded
	TypeDocumentSaved
	TypeDocumentExported

	// Input
	TypeKeyPressed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit

	TypeThemeChanged
)

func (t Type) String() string {
	switch t {
	case TypeAnnotationsChanged:
		return "AnnotationsChanged"
	case TypeSelectionChanged:
		return "SelectionChanged"
	case TypeHistoryChanged:
		return "HistoryChanged"
	case TypeDocumentLoaded:
		return "DocumentLoaded"
	case TypeDocumentSaved:
		return "DocumentSaved"
	case TypeDocumentExported:
		return "DocumentExported"
	case TypeKeyPressed:
		return "KeyPressed"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	case TypeThemeChanged:
		return "ThemeChanged"
	}
	return "Unknown"
}

// Event is the value passed through the bus.
type Event struct {
	Type Type
	Data any
}

// AnnotationsChangedData carries the list after the change.
type AnnotationsChangedData struct {
	Annotations []types.Annotation
	Count       int
}

// SelectionChangedData carries the new selection; Index is -1 when cleared.
type SelectionChangedData struct {
	Index      int
	Annotation types.Annotation
}

// HistoryChangedData carries the stack depths after the change.
type HistoryChangedData struct {
	UndoDepth int
	RedoDepth int
}

// DocumentLoadedData names the loaded document.
type DocumentLoadedData struct {
	FilePath string
	Count    int
}

// DocumentSavedData names the saved document.
type DocumentSavedData struct {
	FilePath string
}

// DocumentExportedData names the written image.
type DocumentExportedData struct {
	FilePath      string
	Width, Height int
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// ThemeChangedData names the new theme.
type ThemeChangedData struct {
	Name string
}

// AppQuitData is sent just before the app exits.
type AppQuitData struct{}

// AppReadyData is sent once the app is initialised.
type AppReadyData struct{}
