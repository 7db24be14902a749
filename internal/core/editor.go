// Package core wires the post buffer to the cursor, selection, history and
// formatting managers behind one Editor.
package core

import (
	"errors"

	"github.com/bethropolis/postfmt/internal/buffer"
	"github.com/bethropolis/postfmt/internal/config"
	"github.com/bethropolis/postfmt/internal/core/clipboard"
	"github.com/bethropolis/postfmt/internal/core/cursor"
	"github.com/bethropolis/postfmt/internal/core/find"
	"github.com/bethropolis/postfmt/internal/core/highlight"
	"github.com/bethropolis/postfmt/internal/core/history"
	"github.com/bethropolis/postfmt/internal/core/selection"
	"github.com/bethropolis/postfmt/internal/core/text"
	"github.com/bethropolis/postfmt/internal/event"
	"github.com/bethropolis/postfmt/internal/types"
)

// ErrNoSelection is returned by operations that need selected text.
var ErrNoSelection = errors.New("no text selected")

// Editor is the single post being composed plus everything that edits it.
type Editor struct {
	buffer       buffer.Buffer
	eventManager *event.Manager

	scrollOff int
	tabWidth  int

	cursorManager    *cursor.Manager
	selectionManager *selection.Manager
	clipboardManager *clipboard.Manager
	textOps          *text.Operations
	findManager      *find.Manager
	highlightManager *highlight.Manager
	historyManager   *history.Manager
}

// NewEditor creates an Editor over buf configured by cfg.
func NewEditor(buf buffer.Buffer, cfg config.EditorConfig) *Editor {
	e := &Editor{
		buffer:    buf,
		scrollOff: cfg.ScrollOff,
		tabWidth:  cfg.TabWidth,
	}
	if e.tabWidth <= 0 {
		e.tabWidth = config.DefaultTabWidth
	}

	e.cursorManager = cursor.NewManager(e)
	e.selectionManager = selection.NewManager(e)
	e.clipboardManager = clipboard.NewManager(cfg.SystemClipboard)
	e.textOps = text.NewOperations(e)
	e.findManager = find.NewManager(e)
	e.highlightManager = highlight.NewManager()
	e.historyManager = history.NewManager(e, cfg.HistoryLimit)
	return e
}

// SetEventManager sets the event manager for dispatching events.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// GetEventManager returns the event manager, which may be nil.
func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// GetHistoryManager returns the undo/redo history.
func (e *Editor) GetHistoryManager() *history.Manager {
	return e.historyManager
}

// GetHighlightManager returns the token highlight store.
func (e *Editor) GetHighlightManager() *highlight.Manager {
	return e.highlightManager
}

// GetBuffer returns the editor's buffer.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// ScrollOff is the number of lines kept visible around the cursor.
func (e *Editor) ScrollOff() int {
	return e.scrollOff
}

// TabWidth is the number of screen columns a tab occupies.
func (e *Editor) TabWidth() int {
	return e.tabWidth
}

// GetCursor returns the current cursor position.
func (e *Editor) GetCursor() types.Position {
	return e.cursorManager.GetPosition()
}

// SetCursor moves the cursor to pos, clamped into the buffer.
func (e *Editor) SetCursor(pos types.Position) {
	e.cursorManager.SetPosition(pos)
	e.dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.GetCursor()})
}

// SetViewSize updates the size of the text area, excluding the status bar.
func (e *Editor) SetViewSize(width, height int) {
	if height > config.StatusBarHeight {
		height -= config.StatusBarHeight
	} else {
		height = 0
	}
	e.cursorManager.SetViewSize(width, height)
}

// GetViewport returns the top visible line and leftmost visible column.
func (e *Editor) GetViewport() (int, int) {
	return e.cursorManager.GetViewport()
}

// ScrollToCursor adjusts the viewport so the cursor is visible.
func (e *Editor) ScrollToCursor() {
	e.cursorManager.ScrollToCursor()
}

// Text returns the whole post.
func (e *Editor) Text() string {
	return e.buffer.String()
}

// Restore replaces the whole post without recording history. It is called
// by the history manager on undo and redo.
func (e *Editor) Restore(text string) {
	e.selectionManager.ClearSelection()
	e.buffer.SetText(text)
	e.cursorManager.SetPosition(e.buffer.End())
}

// Snapshot records the current text as an undo point.
func (e *Editor) Snapshot() {
	e.historyManager.Snapshot()
}

// NotifyModified tells subscribers the post changed.
func (e *Editor) NotifyModified(cause event.Cause, span types.Span) {
	e.dispatch(event.TypeBufferModified, event.BufferModifiedData{Cause: cause, Span: span})
}

func (e *Editor) dispatch(t event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(t, data)
	}
}
