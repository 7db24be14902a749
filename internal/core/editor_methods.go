package core

import (
	"fmt"
	"strings"

	"github.com/bethropolis/postfmt/internal/event"
	"github.com/bethropolis/postfmt/internal/list"
	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/post"
	"github.com/bethropolis/postfmt/internal/style"
	"github.com/bethropolis/postfmt/internal/types"
)

// --- Selection ---

// HasSelection reports whether a non-empty selection is active.
func (e *Editor) HasSelection() bool {
	return e.selectionManager.HasSelection()
}

// GetSelection returns the normalized selection bounds.
func (e *Editor) GetSelection() (types.Position, types.Position, bool) {
	return e.selectionManager.GetSelection()
}

// GetSelectionSpan returns the selection as a span.
func (e *Editor) GetSelectionSpan() (types.Span, bool) {
	return e.selectionManager.Span()
}

// ClearSelection drops the selection.
func (e *Editor) ClearSelection() {
	e.selectionManager.ClearSelection()
}

// StartOrUpdateSelection anchors a selection at the cursor, or extends it.
func (e *Editor) StartOrUpdateSelection() {
	e.selectionManager.StartOrUpdateSelection()
}

// SelectAll selects the whole post.
func (e *Editor) SelectAll() {
	span := types.Span{End: e.buffer.End()}
	e.selectionManager.Select(span)
	e.cursorManager.SetPosition(span.End)
}

// --- Cursor movement ---

func (e *Editor) afterMove(op string) {
	e.textOps.BreakRun()
	if e.selectionManager.IsSelecting() {
		e.selectionManager.UpdateSelectionEnd()
	}
	e.dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.GetCursor()})
	logger.DebugTagf("core", "%s: NewCursor(%d,%d)", op, e.GetCursor().Line, e.GetCursor().Col)
}

// MoveCursor moves the cursor by the given deltas.
func (e *Editor) MoveCursor(deltaLine, deltaCol int) {
	e.cursorManager.Move(deltaLine, deltaCol)
	e.afterMove("MoveCursor")
}

// PageMove scrolls by whole screens.
func (e *Editor) PageMove(deltaPages int) {
	e.cursorManager.PageMove(deltaPages)
	e.afterMove("PageMove")
}

// Home moves to the start of the line.
func (e *Editor) Home() {
	e.cursorManager.MoveToLineStart()
	e.afterMove("Home")
}

// End moves to the end of the line.
func (e *Editor) End() {
	e.cursorManager.MoveToLineEnd()
	e.afterMove("End")
}

// --- Typing ---

func (e *Editor) InsertRune(r rune) error {
	return e.textOps.InsertRune(r)
}

func (e *Editor) InsertNewLine() error {
	return e.textOps.InsertNewLine()
}

// InsertText inserts text at the cursor as one undoable step.
func (e *Editor) InsertText(text string, cause event.Cause) error {
	return e.textOps.InsertText(text, cause)
}

func (e *Editor) DeleteBackward() error {
	return e.textOps.DeleteBackward()
}

func (e *Editor) DeleteForward() error {
	return e.textOps.DeleteForward()
}

// --- Formatting ---

// ApplyStyle toggles the named style over the selection. The restyled
// text stays selected, so applying the same style again reverts it.
func (e *Editor) ApplyStyle(name string) error {
	span, ok := e.GetSelectionSpan()
	if !ok {
		return ErrNoSelection
	}
	result, err := e.textOps.Transform(span, event.CauseStyle, func(s string) (string, error) {
		return style.Apply(name, s)
	})
	if err != nil {
		return fmt.Errorf("apply %s: %w", name, err)
	}
	e.cursorManager.SetPosition(result.End)
	e.selectionManager.Select(result)
	return nil
}

// ToggleList toggles list prefixes over the selected lines, or the cursor
// line when nothing is selected. The lines stay selected afterwards.
func (e *Editor) ToggleList(kind list.Kind) error {
	span, ok := e.GetSelectionSpan()
	if !ok {
		cur := e.GetCursor()
		span = types.Span{Start: cur, End: cur}
	}
	span = span.Lines(e.buffer.LineLength(span.Normalized().End.Line))

	result, err := e.textOps.Transform(span, event.CauseList, func(s string) (string, error) {
		return list.Toggle(kind, s), nil
	})
	if err != nil {
		return fmt.Errorf("toggle %s list: %w", kind, err)
	}
	e.cursorManager.SetPosition(result.End)
	if !result.IsEmpty() {
		e.selectionManager.Select(result)
	} else {
		e.selectionManager.ClearSelection()
	}
	return nil
}

// --- Whole-post edits ---

// Undo reverts the last change. It returns false when there is none.
func (e *Editor) Undo() bool {
	e.textOps.BreakRun()
	if !e.historyManager.Undo() {
		return false
	}
	e.NotifyModified(event.CauseUndo, types.Span{})
	return true
}

// Redo reapplies the last undone change. It returns false when there is none.
func (e *Editor) Redo() bool {
	e.textOps.BreakRun()
	if !e.historyManager.Redo() {
		return false
	}
	e.NotifyModified(event.CauseRedo, types.Span{})
	return true
}

// AppendBlock adds block to the end of the post after a blank line.
func (e *Editor) AppendBlock(block string, cause event.Cause) {
	e.textOps.ReplaceAll(post.AppendBlock(e.Text(), block), cause)
}

// AppendTag adds tag to the end of the post, separated by a space.
func (e *Editor) AppendTag(tag string) {
	text := e.Text()
	if text != "" && !strings.HasSuffix(text, " ") && !strings.HasSuffix(text, "\n") {
		text += " "
	}
	e.textOps.ReplaceAll(text+tag, event.CauseAppend)
}

// Reset empties the post. It can be undone.
func (e *Editor) Reset() {
	e.textOps.ReplaceAll("", event.CauseReset)
}

// ReplaceText swaps the whole post for text as one undoable step.
func (e *Editor) ReplaceText(text string) {
	e.textOps.ReplaceAll(text, event.CauseReplace)
}

// --- Clipboard ---

// CopySelection copies the selected text. It returns false with nothing
// selected.
func (e *Editor) CopySelection() (bool, error) {
	span, ok := e.GetSelectionSpan()
	if !ok {
		return false, nil
	}
	return true, e.clipboardManager.Copy(e.buffer.TextRange(span))
}

// CopyPost copies the whole post.
func (e *Editor) CopyPost() error {
	if err := e.clipboardManager.Copy(e.Text()); err != nil {
		return err
	}
	e.dispatch(event.TypePostCopied, nil)
	return nil
}

// Paste inserts the clipboard content at the cursor. It returns false
// when the clipboard is empty.
func (e *Editor) Paste() (bool, error) {
	text := e.clipboardManager.Paste()
	if text == "" {
		return false, nil
	}
	return true, e.textOps.InsertText(text, event.CausePaste)
}

// --- Files ---

// SaveBuffer writes the post, to filePath if given or to the buffer's own
// path otherwise.
func (e *Editor) SaveBuffer(filePath ...string) error {
	savePath := ""
	if len(filePath) > 0 {
		savePath = filePath[0]
	}
	if err := e.buffer.Save(savePath); err != nil {
		return err
	}
	e.dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: e.buffer.FilePath()})
	return nil
}

// LoadFile replaces the post with the content of filePath and forgets the
// undo history.
func (e *Editor) LoadFile(filePath string) error {
	if err := e.buffer.Load(filePath); err != nil {
		return err
	}
	e.textOps.BreakRun()
	e.historyManager.Clear()
	e.selectionManager.ClearSelection()
	e.findManager.ClearHighlights()
	e.cursorManager.SetPosition(types.Position{})
	e.dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: filePath})
	return nil
}

// --- Find ---

// Find highlights term and jumps to its next occurrence.
func (e *Editor) Find(term string) (types.Position, bool, error) {
	e.textOps.BreakRun()
	return e.findManager.Find(term)
}

// FindNext jumps to the next or previous match of the last term.
func (e *Editor) FindNext(forward bool) (types.Position, bool) {
	e.textOps.BreakRun()
	return e.findManager.FindNext(forward)
}

// Replace substitutes pattern with replacement as one undoable step.
func (e *Editor) Replace(pattern, replacement string, global bool) (int, error) {
	return e.findManager.Replace(pattern, replacement, global)
}

// ClearSearchHighlights drops the search match highlights.
func (e *Editor) ClearSearchHighlights() {
	e.findManager.ClearHighlights()
}

// GetSearchHighlights returns the current search match regions.
func (e *Editor) GetSearchHighlights() []types.HighlightRegion {
	return e.findManager.GetHighlights()
}

// GetHighlightsForLine returns the token highlights of one line.
func (e *Editor) GetHighlightsForLine(lineNum int) []types.StyledRange {
	return e.highlightManager.GetHighlightsForLine(lineNum)
}
