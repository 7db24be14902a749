// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/postfmt/internal/event"
	"github.com/bethropolis/postfmt/internal/list"
	"github.com/bethropolis/postfmt/internal/theme"
	"github.com/bethropolis/postfmt/internal/types"
	"github.com/gdamore/tcell/v2"
)

// CommandFunc defines the signature for commands registered by plugins.
type CommandFunc func(args []string) error

// EditorAPI is what plugins and built-in commands may do to the post.
// Every edit made through it is a single undoable step.
type EditorAPI interface {
	// --- Post Access ---
	GetText() string
	GetBufferFilePath() string
	IsBufferModified() bool
	FoldLimit() int

	// --- Post Modification ---
	// InsertText inserts at the cursor, replacing a selection.
	InsertText(text string, cause event.Cause) error
	// AppendBlock adds block after a blank line at the end of the post.
	AppendBlock(block string, cause event.Cause)
	// ApplyStyle toggles a style on the selection.
	ApplyStyle(name string) error
	ToggleList(kind list.Kind) error
	Replace(pattern, replacement string, global bool) (int, error)
	ResetPost()
	Undo() bool
	Redo() bool

	// --- Cursor ---
	GetCursor() types.Position
	SetCursor(pos types.Position)

	// --- Event Bus Interaction ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})

	// --- Theme Access ---
	GetThemeStyle(styleName string) tcell.Style
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string
	ToggleTheme() *theme.Theme

	// --- Files & Clipboard ---
	SaveBuffer(filePath ...string) error
	ExportPost(path string) (string, error) // returns the path written
	CopyPost() error

	// --- Configuration ---
	GetPluginConfig(plugin, key string) (interface{}, bool)

	RequestQuit(force bool)
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once at startup. Plugins subscribe to events
	// and register commands here.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the application is closing.
	Shutdown() error
}
