package app

import (
	"github.com/bethropolis/inkpad/internal/core"
	"github.com/bethropolis/inkpad/internal/event"
	"github.com/bethropolis/inkpad/internal/logger"
	"github.com/bethropolis/inkpad/internal/plugin"
	"github.com/bethropolis/inkpad/internal/theme"
	"github.com/bethropolis/inkpad/internal/types"
	"github.com/gdamore/tcell/v2"
)

var _ plugin.AnnotatorAPI = (*annotatorAPI)(nil)

// annotatorAPI is the App as seen by plugins and built-in commands.
type annotatorAPI struct {
	app *App
}

func newAnnotatorAPI(app *App) *annotatorAPI {
	return &annotatorAPI{app: app}
}

// --- Annotations ---

func (api *annotatorAPI) Annotations() []types.Annotation {
	return api.app.store.Annotations()
}

func (api *annotatorAPI) Selected() (types.Annotation, int, bool) {
	return api.app.store.Selected()
}

func (api *annotatorAPI) Execute(cmd core.Command) bool {
	return api.app.store.Execute(cmd)
}

func (api *annotatorAPI) HistoryDepth() (undo, redo int) {
	return api.app.store.HistoryDepth()
}

// --- Document ---

func (api *annotatorAPI) FilePath() string { return api.app.store.FilePath() }

func (api *annotatorAPI) IsModified() bool { return api.app.store.IsModified() }

func (api *annotatorAPI) SaveDocument(path string) error { return api.app.SaveDocument(path) }

func (api *annotatorAPI) LoadDocument(path string) error { return api.app.LoadDocument(path) }

func (api *annotatorAPI) ExportPNG(path string) error { return api.app.ExportPNG(path) }

// --- Clipboard ---

func (api *annotatorAPI) CopyText(text string) error { return api.app.clipboard.Copy(text) }

func (api *annotatorAPI) PasteText() (string, error) { return api.app.clipboard.Paste() }

// --- Event Bus Interaction ---

func (api *annotatorAPI) DispatchEvent(eventType event.Type, data any) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *annotatorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *annotatorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	return api.app.modeHandler.RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *annotatorAPI) SetStatusMessage(format string, args ...any) {
	api.app.SetStatusMessage(format, args...)
}

// --- Theme Access ---

func (api *annotatorAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.themeManager.Current().GetStyle(styleName)
}

func (api *annotatorAPI) SetTheme(name string) error {
	if err := api.app.themeManager.SetTheme(name); err != nil {
		return err
	}
	api.app.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: api.app.themeManager.Current().Name})
	return nil
}

func (api *annotatorAPI) GetTheme() *theme.Theme {
	return api.app.themeManager.Current()
}

func (api *annotatorAPI) ListThemes() []string {
	return api.app.themeManager.ListThemes()
}

// --- Configuration ---

func (api *annotatorAPI) GetPluginConfigValue(pluginName, key string) (any, bool) {
	table := api.app.cfg.PluginConfig(pluginName)
	if table == nil {
		return nil, false
	}
	val, ok := table[key]
	if !ok {
		logger.Debugf("API: plugin '%s' has no config key '%s'", pluginName, key)
	}
	return val, ok
}

func (api *annotatorAPI) RequestQuit(force bool) bool {
	return api.app.modeHandler.RequestQuit(force)
}
