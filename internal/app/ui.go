package app

import (
	"github.com/bethropolis/inkpad/internal/logger"
)

// drawEditor clears screen and redraws all components.
func (a *App) drawEditor() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.updateStatusBarContent()

	th := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	snap := a.store.Snapshot()

	logger.DebugTagf("draw", "drawEditor: screen %dx%d, %d annotation(s), current %d",
		width, height, len(snap.Annotations), snap.Current)

	a.tuiManager.Clear()
	a.layout.Draw(screen, snap.Annotations, snap.Current, th)
	a.statusBar.Draw(screen, width, height, th)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes the store state to the status bar. It may
// run on a plugin goroutine; the mode handler pushes the mode itself.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetFileInfo(a.store.FilePath(), a.store.IsModified())
	sel, idx, _ := a.store.Selected()
	a.statusBar.SetSelectionInfo(len(a.store.Annotations()), sel, idx)
	a.statusBar.SetHistoryInfo(a.store.HistoryDepth())
}

// SetStatusMessage shows a temporary message and redraws.
func (a *App) SetStatusMessage(format string, args ...any) {
	a.statusBar.SetTemporaryMessage(format, args...)
	a.requestRedraw()
}
