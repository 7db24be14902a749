package text

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/postfmt/internal/buffer"
	"github.com/bethropolis/postfmt/internal/event"
	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/types"
)

// EditorInterface defines editor methods needed
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	GetCursor() types.Position
	SetCursor(pos types.Position)
	GetSelectionSpan() (types.Span, bool)
	ClearSelection()
	Snapshot()
	NotifyModified(cause event.Cause, span types.Span)
}

type runKind int

const (
	runNone runKind = iota
	runTyping
	runDeleting
)

// Operations handles text insertion and deletion. Every mutation takes a
// history snapshot first; consecutive keystrokes inside one word, or one
// run of deletions, share a single snapshot.
type Operations struct {
	editor    EditorInterface
	run       runKind
	lastSpace bool
}

// NewOperations creates a text operations manager
func NewOperations(editor EditorInterface) *Operations {
	return &Operations{editor: editor}
}

// BreakRun ends the current typing or deleting run so the next keystroke
// takes a fresh snapshot. Called on cursor movement and non-typing edits.
func (o *Operations) BreakRun() {
	o.run = runNone
}

// InsertRune inserts a single rune at the cursor, replacing any selection.
func (o *Operations) InsertRune(r rune) error {
	space := unicode.IsSpace(r)
	_, hasSel := o.editor.GetSelectionSpan()
	if hasSel || o.run != runTyping || (o.lastSpace && !space) {
		o.editor.Snapshot()
	}
	o.run = runTyping
	o.lastSpace = space

	if err := o.deleteSelection(); err != nil {
		return err
	}

	buf := o.editor.GetBuffer()
	start := o.editor.GetCursor()
	var encoded [utf8.UTFMax]byte
	n := utf8.EncodeRune(encoded[:], r)
	if err := buf.Insert(start, encoded[:n]); err != nil {
		return fmt.Errorf("insert rune: %w", err)
	}

	after := types.Position{Line: start.Line, Col: start.Col + 1}
	if r == '\n' {
		after = types.Position{Line: start.Line + 1, Col: 0}
	}
	o.editor.SetCursor(after)
	o.editor.NotifyModified(event.CauseTyping, types.Span{Start: start, End: after})
	return nil
}

// InsertNewLine inserts a line break at the cursor.
func (o *Operations) InsertNewLine() error {
	return o.InsertRune('\n')
}

// InsertText inserts text at the cursor as one undoable step, replacing
// any selection. The cursor ends up after the inserted text.
func (o *Operations) InsertText(text string, cause event.Cause) error {
	if text == "" {
		return nil
	}
	o.BreakRun()
	o.editor.Snapshot()

	if err := o.deleteSelection(); err != nil {
		return err
	}
	start := o.editor.GetCursor()
	end, err := o.editor.GetBuffer().Replace(types.Span{Start: start, End: start}, []byte(text))
	if err != nil {
		return fmt.Errorf("insert text: %w", err)
	}
	o.editor.SetCursor(end)
	o.editor.NotifyModified(cause, types.Span{Start: start, End: end})
	return nil
}

// deleteSelection removes the selected text without snapshotting.
func (o *Operations) deleteSelection() error {
	span, ok := o.editor.GetSelectionSpan()
	if !ok {
		return nil
	}
	o.editor.ClearSelection()
	if err := o.editor.GetBuffer().Delete(span.Start, span.End); err != nil {
		return fmt.Errorf("delete selection: %w", err)
	}
	o.editor.SetCursor(span.Start)
	return nil
}

// DeleteBackward deletes the selection, or the rune before the cursor.
func (o *Operations) DeleteBackward() error {
	return o.delete(true)
}

// DeleteForward deletes the selection, or the rune after the cursor.
func (o *Operations) DeleteForward() error {
	return o.delete(false)
}

func (o *Operations) delete(backward bool) error {
	buf := o.editor.GetBuffer()

	if span, ok := o.editor.GetSelectionSpan(); ok {
		o.BreakRun()
		o.editor.Snapshot()
		if err := o.deleteSelection(); err != nil {
			return err
		}
		o.editor.NotifyModified(event.CauseDelete, types.Span{Start: span.Start, End: span.Start})
		return nil
	}

	cur := o.editor.GetCursor()
	start, end := cur, cur
	if backward {
		switch {
		case cur.Col > 0:
			start.Col--
		case cur.Line > 0:
			start = types.Position{Line: cur.Line - 1, Col: buf.LineLength(cur.Line - 1)}
		default:
			return nil // At beginning of buffer
		}
	} else {
		switch {
		case cur.Col < buf.LineLength(cur.Line):
			end.Col++
		case cur.Line < buf.LineCount()-1:
			end = types.Position{Line: cur.Line + 1, Col: 0}
		default:
			return nil // At end of buffer
		}
	}

	if o.run != runDeleting {
		o.editor.Snapshot()
	}
	o.run = runDeleting

	if err := buf.Delete(start, end); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	o.editor.SetCursor(start)
	o.editor.NotifyModified(event.CauseDelete, types.Span{Start: start, End: start})
	return nil
}

// Transform replaces the text in span with fn applied to it and returns the
// span the new text occupies. A result equal to the input is still
// recorded, so a transform is always undoable as one step.
func (o *Operations) Transform(span types.Span, cause event.Cause, fn func(string) (string, error)) (types.Span, error) {
	span = span.Normalized()
	buf := o.editor.GetBuffer()

	out, err := fn(buf.TextRange(span))
	if err != nil {
		return span, err
	}

	o.BreakRun()
	o.editor.Snapshot()
	end, err := buf.Replace(span, []byte(out))
	if err != nil {
		return span, fmt.Errorf("replace %s: %w", cause, err)
	}
	result := types.Span{Start: span.Start, End: end}
	logger.DebugTagf("core", "Transform %s: %v -> %v", cause, span, result)
	o.editor.NotifyModified(cause, result)
	return result, nil
}

// ReplaceAll swaps the whole post for text as one undoable step and puts
// the cursor at the end.
func (o *Operations) ReplaceAll(text string, cause event.Cause) {
	o.BreakRun()
	o.editor.Snapshot()
	o.editor.ClearSelection()
	buf := o.editor.GetBuffer()
	buf.SetText(text)
	o.editor.SetCursor(buf.End())
	o.editor.NotifyModified(cause, types.Span{})
}
