package app

import (
	"github.com/bethropolis/inkpad/internal/event"
	"github.com/bethropolis/inkpad/internal/logger"
)

func (a *App) subscribeEvents() {
	for _, t := range []event.Type{
		event.TypeAnnotationsChanged,
		event.TypeSelectionChanged,
		event.TypeHistoryChanged,
		event.TypeDocumentSaved,
	} {
		a.eventManager.Subscribe(t, a.handleStoreChangedForStatus)
	}
	a.eventManager.Subscribe(event.TypeDocumentLoaded, a.handleDocumentLoaded)
	a.eventManager.Subscribe(event.TypeThemeChanged, a.handleThemeChanged)
}

// handleStoreChangedForStatus refreshes the status bar after any store change.
func (a *App) handleStoreChangedForStatus(e event.Event) bool {
	a.updateStatusBarContent()
	a.requestRedraw()
	return false
}

func (a *App) handleDocumentLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.DocumentLoadedData); ok {
		logger.Debugf("App: document '%s' loaded with %d annotation(s)", data.FilePath, data.Count)
	}
	a.updateStatusBarContent()
	a.requestRedraw()
	return false
}

func (a *App) handleThemeChanged(e event.Event) bool {
	a.tuiManager.SetTheme(a.themeManager.Current())
	a.requestRedraw()
	return false
}
