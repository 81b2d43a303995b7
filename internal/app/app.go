// Package app wires the annotation store, the terminal front end, themes,
// plugins and commands together and runs the main loop.
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/bethropolis/inkpad/internal/commands"
	"github.com/bethropolis/inkpad/internal/config"
	"github.com/bethropolis/inkpad/internal/core"
	"github.com/bethropolis/inkpad/internal/core/clipboard"
	"github.com/bethropolis/inkpad/internal/event"
	"github.com/bethropolis/inkpad/internal/input"
	"github.com/bethropolis/inkpad/internal/logger"
	"github.com/bethropolis/inkpad/internal/modehandler"
	"github.com/bethropolis/inkpad/internal/plugin"
	"github.com/bethropolis/inkpad/internal/render"
	"github.com/bethropolis/inkpad/internal/statusbar"
	"github.com/bethropolis/inkpad/internal/theme"
	"github.com/bethropolis/inkpad/internal/tui"
	"github.com/bethropolis/inkpad/internal/types"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg           *config.Config
	tuiManager    *tui.TUI
	store         *core.Store
	layout        *render.Terminal
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	themeManager  *theme.Manager
	clipboard     *clipboard.Manager
	fonts         *render.FontSet
	api           plugin.AnnotatorAPI

	// mu serializes input handling and drawing; both touch the layout.
	mu sync.Mutex

	// Channels managed by the App
	quit          chan struct{}
	redrawRequest chan struct{}
}

// NewApp creates the application. filePath may name a document that does
// not exist yet. screen is nil for the real terminal; tests pass a
// tcell.SimulationScreen.
func NewApp(cfg *config.Config, filePath string, screen tcell.Screen) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	themeManager := theme.NewManager(theme.DefaultThemesDir())
	if cfg.Editor.Theme != "" {
		if err := themeManager.SetTheme(cfg.Editor.Theme); err != nil {
			logger.Warnf("App: %v, using '%s'", err, themeManager.Current().Name)
		}
	}

	var (
		tuiManager *tui.TUI
		err        error
	)
	if screen == nil {
		tuiManager, err = tui.New(themeManager.Current())
	} else {
		tuiManager, err = tui.NewWithScreen(screen, themeManager.Current())
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	c := cfg.Canvas
	store := core.NewStore(core.Defaults{
		Origin:   types.Point{X: c.OriginX, Y: c.OriginY},
		Font:     c.DefaultFont,
		FontSize: c.DefaultFontSize,
	}, c.MaxHistory)
	eventManager := event.NewManager()
	store.SetEventManager(eventManager)

	width, height := tuiManager.Size()
	layout := render.NewTerminal(c.CellWidth, c.CellHeight, width, canvasRows(height, cfg.Editor.StatusBarHeight))

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		store:         store,
		layout:        layout,
		statusBar:     statusbar.New(statusbar.Config{MessageTimeout: config.MessageTimeout}),
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		themeManager:  themeManager,
		clipboard:     clipboard.NewManager(cfg.Editor.SystemClipboard),
		fonts:         render.NewFontSet(),
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}

	a.modeHandler = modehandler.New(modehandler.Config{
		Store:          store,
		Layout:         layout,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      a.statusBar,
		QuitSignal:     a.quit,
		Save:           a.SaveDocument,
		Fonts:          c.Fonts,
		NudgeStep:      c.NudgeStep,
	})
	a.api = newAnnotatorAPI(a)
	a.statusBar.SetEditorMode(a.modeHandler.GetCurrentModeString())

	a.subscribeEvents()

	if filePath != "" {
		if err := a.LoadDocument(filePath); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				tuiManager.Close()
				return nil, err
			}
			logger.Infof("App: '%s' does not exist, starting a new document", filePath)
			store.SetFilePath(filePath)
		}
	}

	commands.RegisterAppCommands(a.api)
	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	a.pluginManager.InitializePlugins(a.api)

	a.updateStatusBarContent()
	return a, nil
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.fonts.Close()
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("%s %s - a add | : command | Ctrl+S save | Esc quit", config.AppName, config.Version)
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.store.IsModified() {
				logger.Warnf("App: exiting with unsaved changes")
			}
			logger.Infof("App: exiting")
			return nil
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// eventLoop feeds terminal events to handleEvent until the screen closes.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		if a.handleEvent(ev) {
			a.requestRedraw()
		}
	}
}

// handleEvent applies one terminal event and reports whether the screen
// needs a redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.layout.Resize(w, canvasRows(h, a.cfg.Editor.StatusBarHeight))
		a.tuiManager.Sync()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	case *tcell.EventMouse:
		return a.modeHandler.HandleMouseEvent(ev)
	}
	return false
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}

// canvasRows is the number of terminal rows left for annotations.
func canvasRows(height, statusBarHeight int) int {
	return max(0, height-statusBarHeight)
}
