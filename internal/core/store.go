// Package core holds the annotation model: the immutable State with its
// pure operations, and the Store that owns the live State for the UI.
package core

import (
	"errors"
	"slices"
	"sync"

	"github.com/bethropolis/inkpad/internal/event"
	"github.com/bethropolis/inkpad/internal/logger"
	"github.com/bethropolis/inkpad/internal/types"
)

// ErrNoFilePath is returned by Save for an unnamed document.
var ErrNoFilePath = errors.New("no file name")

// Store owns the live annotation state. Every change goes through
// Execute, which applies a Command and announces what changed on the
// event bus.
type Store struct {
	mu    sync.RWMutex
	state State

	eventManager *event.Manager

	filePath      string
	revision      uint64
	savedRevision uint64
}

// NewStore creates an empty store.
func NewStore(defaults Defaults, maxHistory int) *Store {
	return &Store{state: NewState(defaults, maxHistory)}
}

// SetEventManager sets the bus used to announce changes.
func (s *Store) SetEventManager(mgr *event.Manager) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eventManager = mgr
}

// Execute applies c and reports whether anything visible changed.
func (s *Store) Execute(c Command) bool {
	s.mu.Lock()
	before := s.state
	after := Apply(before, c)
	s.state = after
	changedList := !slices.Equal(before.Annotations, after.Annotations)
	if changedList {
		s.revision++
	}
	mgr := s.eventManager
	s.mu.Unlock()

	changed := s.announce(mgr, before, after, changedList)
	if changed {
		logger.Debugf("Store: %v applied (annotations=%d, current=%d, undo=%d, redo=%d)",
			c.Kind, len(after.Annotations), after.Current, after.History.UndoDepth(), after.History.RedoDepth())
	}
	return changed
}

// announce dispatches the events describing the difference between two
// states and reports whether there was any difference.
func (s *Store) announce(mgr *event.Manager, before, after State, changedList bool) bool {
	changedSel := before.Current != after.Current
	if !changedSel && after.Current >= 0 && changedList {
		// Same index, but the annotation under it may have changed.
		changedSel = before.Current < len(before.Annotations) && after.Current < len(after.Annotations) &&
			before.Annotations[before.Current] != after.Annotations[after.Current]
	}
	changedHist := before.History.UndoDepth() != after.History.UndoDepth() ||
		before.History.RedoDepth() != after.History.RedoDepth()

	if mgr != nil {
		if changedList {
			mgr.Dispatch(event.TypeAnnotationsChanged, event.AnnotationsChangedData{
				Annotations: append([]types.Annotation(nil), after.Annotations...),
				Count:       len(after.Annotations),
			})
		}
		if changedSel {
			a, _ := after.Selected()
			mgr.Dispatch(event.TypeSelectionChanged, event.SelectionChangedData{Index: after.Current, Annotation: a})
		}
		if changedHist {
			mgr.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
				UndoDepth: after.History.UndoDepth(),
				RedoDepth: after.History.RedoDepth(),
			})
		}
	}
	return changedList || changedSel || changedHist || before.Drag != after.Drag
}

// --- convenience wrappers used by the front end and plugins ---

// Add adds a new annotation.
func (s *Store) Add(text, font string, size int) bool {
	return s.Execute(Command{Kind: CmdAdd, Text: text, Font: font, Size: size})
}

// Delete removes the current annotation.
func (s *Store) Delete() bool { return s.Execute(Command{Kind: CmdDelete}) }

// ToggleBold flips bold on the current annotation.
func (s *Store) ToggleBold() bool { return s.Execute(Command{Kind: CmdToggleBold}) }

// ToggleItalic flips italic on the current annotation.
func (s *Store) ToggleItalic() bool { return s.Execute(Command{Kind: CmdToggleItalic}) }

// ToggleUnderline flips underline on the current annotation.
func (s *Store) ToggleUnderline() bool { return s.Execute(Command{Kind: CmdToggleUnderline}) }

// SetStyle sets the decoration flags of the current annotation.
func (s *Store) SetStyle(style types.Style) bool {
	return s.Execute(Command{Kind: CmdSetStyle, Style: style})
}

// SetFont changes the font of the current annotation.
func (s *Store) SetFont(font string) bool { return s.Execute(Command{Kind: CmdSetFont, Font: font}) }

// SetFontSize changes the size of the current annotation.
func (s *Store) SetFontSize(size int) bool {
	return s.Execute(Command{Kind: CmdSetFontSize, Size: size})
}

// SetAlignment changes the alignment of the current annotation.
func (s *Store) SetAlignment(a types.Alignment) bool {
	return s.Execute(Command{Kind: CmdAlign, Alignment: a})
}

// Move translates the current annotation.
func (s *Store) Move(dx, dy float64) bool {
	return s.Execute(Command{Kind: CmdMove, DX: dx, DY: dy})
}

// Undo reverses the newest edit.
func (s *Store) Undo() bool { return s.Execute(Command{Kind: CmdUndo}) }

// Redo replays the newest undone edit.
func (s *Store) Redo() bool { return s.Execute(Command{Kind: CmdRedo}) }

// Select makes the annotation at index current.
func (s *Store) Select(index int) bool { return s.Execute(Command{Kind: CmdSelect, Index: index}) }

// --- read access ---

// Snapshot returns the current state. The returned value is never
// modified by later edits.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Annotations returns a copy of the annotation list in drawing order.
func (s *Store) Annotations() []types.Annotation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.Annotation(nil), s.state.Annotations...)
}

// Selected returns the current annotation and its index.
func (s *Store) Selected() (types.Annotation, int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.state.Selected()
	return a, s.state.Current, ok
}

// Dragging reports whether a pointer drag is in progress.
func (s *Store) Dragging() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Drag.Active
}

// HistoryDepth returns the undo and redo stack sizes.
func (s *Store) HistoryDepth() (undo, redo int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.History.UndoDepth(), s.state.History.RedoDepth()
}

// Defaults returns the values applied to new annotations.
func (s *Store) Defaults() Defaults {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Defaults
}

// --- document bookkeeping ---

// Load replaces the annotation list, clears history and marks the store
// as saved under path.
func (s *Store) Load(list []types.Annotation, path string) {
	s.mu.Lock()
	before := s.state
	s.state = Replace(s.state, list)
	after := s.state
	s.revision++
	s.savedRevision = s.revision
	s.filePath = path
	mgr := s.eventManager
	s.mu.Unlock()

	s.announce(mgr, before, after, true)
	if mgr != nil {
		mgr.Dispatch(event.TypeDocumentLoaded, event.DocumentLoadedData{FilePath: path, Count: len(list)})
	}
	logger.Infof("Store: loaded %d annotation(s) from '%s'", len(list), path)
}

// FilePath returns the document path, or "" for an unnamed document.
func (s *Store) FilePath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filePath
}

// SetFilePath names the document.
func (s *Store) SetFilePath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filePath = path
}

// IsModified reports whether the list changed since the last save or load.
func (s *Store) IsModified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision != s.savedRevision
}

// MarkSaved records that the current list was written to path.
func (s *Store) MarkSaved(path string) {
	s.mu.Lock()
	s.savedRevision = s.revision
	if path != "" {
		s.filePath = path
	}
	path = s.filePath
	mgr := s.eventManager
	s.mu.Unlock()

	if mgr != nil {
		mgr.Dispatch(event.TypeDocumentSaved, event.DocumentSavedData{FilePath: path})
	}
}

// Save hands the list to write and marks it saved under path ("" means
// the current path). The store is locked while write runs, so write must
// not call back into the store.
func (s *Store) Save(path string, write func(path string, list []types.Annotation) error) error {
	s.mu.Lock()
	if path == "" {
		path = s.filePath
	}
	if path == "" {
		s.mu.Unlock()
		return ErrNoFilePath
	}
	if err := write(path, s.state.Annotations); err != nil {
		s.mu.Unlock()
		return err
	}
	s.savedRevision = s.revision
	s.filePath = path
	mgr := s.eventManager
	s.mu.Unlock()

	if mgr != nil {
		mgr.Dispatch(event.TypeDocumentSaved, event.DocumentSavedData{FilePath: path})
	}
	return nil
}
