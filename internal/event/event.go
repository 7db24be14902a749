// internal/event/event.go
package event

import (
	"github.com/bethropolis/postfmt/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Core Editor Events
	TypeBufferModified // Fired when post content changes
	TypeBufferLoaded   // Fired after a post is successfully loaded
	TypeBufferSaved    // Fired after a post is successfully saved
	TypeCursorMoved    // Fired when the cursor position changes
	TypeModeChanged    // Fired when the input mode changes

	// Post Events
	TypeSuggestionsUpdated // Fired when the hashtag suggestions change
	TypePostExported       // Fired after the post is written as Markdown
	TypePostCopied         // Fired after the post is copied to the clipboard

	// Input Events
	TypeKeyPressed // Raw key press event forwarded

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins

	TypeThemeChanged // Fired when the theme is changed
)

var typeNames = map[Type]string{
	TypeUnknown:            "Unknown",
	TypeBufferModified:     "BufferModified",
	TypeBufferLoaded:       "BufferLoaded",
	TypeBufferSaved:        "BufferSaved",
	TypeCursorMoved:        "CursorMoved",
	TypeModeChanged:        "ModeChanged",
	TypeSuggestionsUpdated: "SuggestionsUpdated",
	TypePostExported:       "PostExported",
	TypePostCopied:         "PostCopied",
	TypeKeyPressed:         "KeyPressed",
	TypeAppReady:           "AppReady",
	TypeAppQuit:            "AppQuit",
	TypeThemeChanged:       "ThemeChanged",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// Cause names the operation behind a BufferModified event.
type Cause string

const (
	CauseTyping   Cause = "typing"
	CauseDelete   Cause = "delete"
	CauseStyle    Cause = "style"
	CauseList     Cause = "list"
	CauseAppend   Cause = "append"
	CauseReset    Cause = "reset"
	CauseUndo     Cause = "undo"
	CauseRedo     Cause = "redo"
	CausePaste    Cause = "paste"
	CauseTemplate Cause = "template"
	CauseReplace  Cause = "replace"
	CauseEmoji    Cause = "emoji"
)

// BufferModifiedData describes a change to the post.
type BufferModifiedData struct {
	Cause Cause
	// Span is the affected range in the new text; zero for whole-post changes.
	Span types.Span
}

// BufferLoadedData contains info about the loaded buffer.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData contains info about the saved buffer.
type BufferSavedData struct {
	FilePath string
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// ModeChangedData names the mode being entered.
type ModeChangedData struct {
	Mode string
}

// SuggestionsUpdatedData carries the current hashtag suggestions.
type SuggestionsUpdatedData struct {
	Tags []string
}

// PostExportedData contains the path the post was exported to.
type PostExportedData struct {
	FilePath string
}

// ThemeChangedData names the newly active theme.
type ThemeChangedData struct {
	Name   string
	IsDark bool
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
