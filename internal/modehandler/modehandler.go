// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bethropolis/postfmt/internal/core"
	"github.com/bethropolis/postfmt/internal/event"
	"github.com/bethropolis/postfmt/internal/input"
	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/plugin" // For CommandFunc type
	"github.com/bethropolis/postfmt/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeCommand
	ModeFind
	ModeSuggest // picking a hashtag suggestion
)

func (m InputMode) String() string {
	switch m {
	case ModeCommand:
		return "COMMAND"
	case ModeFind:
		return "FIND"
	case ModeSuggest:
		return "SUGGEST"
	default:
		return "NORMAL"
	}
}

// ModeHandler manages input modes, command execution, and related state.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}
	quitOnce       sync.Once

	currentMode       InputMode
	cmdBuffer         string
	findBuffer        string
	lastSearchTerm    string
	lastSearchForward bool
	activeTag         int
	commands          map[string]plugin.CommandFunc
	forceQuitPending  bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{} // Write-only channel to signal quit
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	mh := &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
	}
	mh.statusBar.SetEditorMode(ModeNormal.String())
	return mh
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)

	var actionProcessed bool
	switch mh.currentMode {
	case ModeNormal:
		actionProcessed = mh.handleActionNormal(actionEvent)
	case ModeCommand:
		actionProcessed = mh.handleActionCommand(actionEvent)
	case ModeFind:
		actionProcessed = mh.handleActionFind(actionEvent)
	case ModeSuggest:
		actionProcessed = mh.handleActionSuggest(actionEvent)
	default:
		logger.Warnf("ModeHandler: unknown input mode %v", mh.currentMode)
	}

	return actionProcessed || mh.forceQuitPending
}

// setMode switches modes and announces the change.
func (mh *ModeHandler) setMode(mode InputMode) {
	if mh.currentMode == mode {
		return
	}
	logger.DebugTagf("mode", "%s -> %s", mh.currentMode, mode)
	mh.currentMode = mode
	mh.statusBar.SetEditorMode(mode.String())
	mh.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{Mode: mode.String()})
}

// RegisterCommand adds a command to the registry. Called via EditorAPI.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = cmdFunc
	logger.DebugTagf("mode", "Registered command ':%s'", name)
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

// GetCommandBuffer returns the command being typed, empty outside command mode.
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return mh.cmdBuffer
	}
	return ""
}

// RequestQuit quits, or with unsaved changes and no force, asks for
// confirmation first.
func (mh *ModeHandler) RequestQuit(force bool) {
	if force || !mh.editor.GetBuffer().IsModified() || mh.forceQuitPending {
		mh.quit()
		return
	}
	mh.statusBar.SetTemporaryMessage("Unsaved changes! Press ESC again or Ctrl+Q to force quit.")
	mh.forceQuitPending = true
}

func (mh *ModeHandler) quit() {
	mh.quitOnce.Do(func() { close(mh.quitSignal) })
}
