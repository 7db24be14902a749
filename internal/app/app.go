// internal/app/app.go
package app

import (
	"fmt"

	"github.com/bethropolis/postfmt/internal/buffer"
	"github.com/bethropolis/postfmt/internal/config"
	"github.com/bethropolis/postfmt/internal/core"
	"github.com/bethropolis/postfmt/internal/event"
	"github.com/bethropolis/postfmt/internal/hashtag"
	"github.com/bethropolis/postfmt/internal/highlight"
	"github.com/bethropolis/postfmt/internal/highlighter"
	"github.com/bethropolis/postfmt/internal/input"
	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/modehandler"
	"github.com/bethropolis/postfmt/internal/plugin"
	"github.com/bethropolis/postfmt/internal/post"
	"github.com/bethropolis/postfmt/internal/statusbar"
	"github.com/bethropolis/postfmt/internal/theme"
	"github.com/bethropolis/postfmt/internal/tui"
	"github.com/bethropolis/postfmt/internal/utils"
	"github.com/gdamore/tcell/v2"
)

// Options configures a new App.
type Options struct {
	Config *config.Config
	// ConfigPath is where the theme preference is written back; empty
	// disables persistence.
	ConfigPath string
	FilePath   string
	ThemesDir  string
	// Screen replaces the terminal, e.g. with a tcell simulation screen.
	Screen tcell.Screen
}

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg        *config.Config
	configPath string

	tuiManager    *tui.TUI
	editor        *core.Editor
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	themeManager  *theme.Manager
	highlightMgr  *highlight.Manager
	suggester     *hashtag.Suggester
	templates     *post.Library
	editorAPI     plugin.EditorAPI

	// messageExpiry redraws once a status message has timed out.
	messageExpiry utils.Debouncer

	// Channels managed by the App
	quit          chan struct{}
	redrawRequest chan struct{}
	events        chan tcell.Event
}

// NewApp creates and initializes a new application instance.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	themeManager := theme.NewManager(opts.ThemesDir, cfg.Theme.Name, cfg.Theme.Dark)
	defStyle := themeManager.Current().GetStyle(theme.StyleDefault)

	var tuiManager *tui.TUI
	var err error
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen, defStyle)
	} else {
		tuiManager, err = tui.New(defStyle)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	buf := buffer.NewSliceBuffer()
	if opts.FilePath != "" {
		if err := buf.Load(opts.FilePath); err != nil {
			tuiManager.Close()
			return nil, fmt.Errorf("load %s: %w", opts.FilePath, err)
		}
	}

	editor := core.NewEditor(buf, cfg.Editor)
	eventManager := event.NewManager()
	editor.SetEventManager(eventManager)

	statusBar := statusbar.New(statusbar.Config{MessageTimeout: config.MessageTimeout})
	quitChan := make(chan struct{})

	modeHandler := modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		QuitSignal:     quitChan,
	})

	a := &App{
		cfg:           cfg,
		configPath:    opts.ConfigPath,
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		modeHandler:   modeHandler,
		themeManager:  themeManager,
		suggester:     hashtag.NewSuggester(),
		templates:     loadTemplates(cfg.Post.TemplatesFile),
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
		events:        make(chan tcell.Event, 16),
	}
	a.highlightMgr = highlight.NewManager(editor.GetHighlightManager(), highlighter.NewHighlighter(), a.requestRedraw)
	a.editorAPI = newEditorAPI(a)

	a.subscribeEvents()
	registerAppCommands(a)

	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: %v", err)
	}
	for _, err := range a.pluginManager.InitializePlugins(a.editorAPI) {
		logger.Errorf("App: %v", err)
	}

	width, height := tuiManager.Size()
	editor.SetViewSize(width, height)

	text := editor.Text()
	a.highlightMgr.HighlightNow(text)
	a.refreshPost(text)
	a.updateStatusBarContent()
	return a, nil
}

// loadTemplates builds the template library, adding the user's YAML file
// when one is configured.
func loadTemplates(path string) *post.Library {
	if path == "" {
		return post.NewLibrary(nil)
	}
	extra, err := post.LoadTemplates(path)
	if err != nil {
		logger.Warnf("App: templates not loaded: %v", err)
		return post.NewLibrary(nil)
	}
	logger.Infof("App: loaded %d template(s) from %s", len(extra), path)
	return post.NewLibrary(extra)
}

// Run starts the application's main loop. Key handling, editing and
// drawing all happen on this goroutine; a helper goroutine only polls the
// terminal.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()
	defer a.highlightMgr.Shutdown()
	defer a.messageExpiry.Stop()

	go a.pollEvents()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("postfmt - Ctrl+B bold | Ctrl+P command | Ctrl+S save | Esc quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			if a.editor.GetBuffer().IsModified() {
				logger.Warnf("Exited with unsaved changes.")
			}
			logger.Infof("Exiting application.")
			return nil
		case ev := <-a.events:
			if a.handleEvent(ev) {
				a.requestRedraw()
				a.scheduleMessageExpiry()
			}
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// pollEvents forwards terminal events to the main loop.
func (a *App) pollEvents() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent reacts to one terminal event and reports whether a redraw
// is needed.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch eventData := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		w, h := a.tuiManager.Size()
		a.editor.SetViewSize(w, h)
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(eventData)
	}
	return false
}
