package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/postfmt/internal/buffer"
	"github.com/bethropolis/postfmt/internal/config"
	"github.com/bethropolis/postfmt/internal/event"
	"github.com/bethropolis/postfmt/internal/list"
	"github.com/bethropolis/postfmt/internal/style"
	"github.com/bethropolis/postfmt/internal/types"
	"github.com/stretchr/testify/require"
)

func newTestEditor(t *testing.T, text string) *Editor {
	t.Helper()
	buf := buffer.NewSliceBuffer()
	buf.SetText(text)
	e := NewEditor(buf, config.EditorConfig{TabWidth: 4, ScrollOff: 0, HistoryLimit: 100})
	e.SetViewSize(80, 25)
	return e
}

func selectSpan(e *Editor, span types.Span) {
	e.selectionManager.Select(span)
	e.cursorManager.SetPosition(span.End)
}

func typeString(t *testing.T, e *Editor, s string) {
	t.Helper()
	for _, r := range s {
		require.NoError(t, e.InsertRune(r))
	}
}

func TestApplyStyleTogglesSelection(t *testing.T) {
	e := newTestEditor(t, "say hello world")
	selectSpan(e, types.Span{Start: types.Position{Col: 4}, End: types.Position{Col: 9}})

	require.NoError(t, e.ApplyStyle(style.Bold))
	require.Equal(t, "say 𝗵𝗲𝗹𝗹𝗼 world", e.Text())
	require.True(t, e.HasSelection())

	require.NoError(t, e.ApplyStyle(style.Bold))
	require.Equal(t, "say hello world", e.Text())
}

func TestApplyStyleNeedsSelection(t *testing.T) {
	e := newTestEditor(t, "plain")
	require.ErrorIs(t, e.ApplyStyle(style.Italic), ErrNoSelection)
	require.Equal(t, "plain", e.Text())
	require.False(t, e.GetHistoryManager().CanUndo())
}

func TestApplyStyleUnknownLeavesNoHistory(t *testing.T) {
	e := newTestEditor(t, "plain")
	selectSpan(e, types.Span{End: types.Position{Col: 5}})
	require.ErrorIs(t, e.ApplyStyle("sparkle"), style.ErrUnknownStyle)
	require.False(t, e.GetHistoryManager().CanUndo())
}

func TestToggleListOnSelectedLines(t *testing.T) {
	e := newTestEditor(t, "intro\nfirst\nsecond")
	selectSpan(e, types.Span{Start: types.Position{Line: 1, Col: 2}, End: types.Position{Line: 2, Col: 1}})

	require.NoError(t, e.ToggleList(list.Numbered))
	require.Equal(t, "intro\n1. first\n2. second", e.Text())

	require.NoError(t, e.ToggleList(list.Numbered))
	require.Equal(t, "intro\nfirst\nsecond", e.Text())
}

func TestToggleListCursorLine(t *testing.T) {
	e := newTestEditor(t, "one\ntwo")
	e.SetCursor(types.Position{Line: 1, Col: 1})
	require.NoError(t, e.ToggleList(list.Bullet))
	require.Equal(t, "one\n• two", e.Text())
}

func TestUndoRedoAcrossOperations(t *testing.T) {
	e := newTestEditor(t, "")
	typeString(t, e, "ship it")
	selectSpan(e, types.Span{End: types.Position{Col: 4}})
	require.NoError(t, e.ApplyStyle(style.Monospace))
	styled := e.Text()
	e.AppendBlock("#go", event.CauseAppend)
	require.Equal(t, styled+"\n\n#go", e.Text())

	require.True(t, e.Undo())
	require.Equal(t, styled, e.Text())
	require.True(t, e.Undo())
	require.Equal(t, "ship it", e.Text())
	require.True(t, e.Redo())
	require.Equal(t, styled, e.Text())
	require.Equal(t, e.GetBuffer().End(), e.GetCursor())
}

func TestTypingCoalescesWords(t *testing.T) {
	e := newTestEditor(t, "")
	typeString(t, e, "hello big world")
	require.True(t, e.Undo())
	require.Equal(t, "hello big ", e.Text())
	require.True(t, e.Undo())
	require.Equal(t, "hello ", e.Text())
	require.True(t, e.Undo())
	require.Equal(t, "", e.Text())
	require.False(t, e.Undo())
}

func TestDeleteRunIsOneStep(t *testing.T) {
	e := newTestEditor(t, "abcdef")
	e.SetCursor(types.Position{Col: 6})
	for i := 0; i < 3; i++ {
		require.NoError(t, e.DeleteBackward())
	}
	require.Equal(t, "abc", e.Text())
	require.True(t, e.Undo())
	require.Equal(t, "abcdef", e.Text())
}

func TestResetIsUndoable(t *testing.T) {
	e := newTestEditor(t, "draft")
	e.Reset()
	require.Equal(t, "", e.Text())
	require.True(t, e.Undo())
	require.Equal(t, "draft", e.Text())
}

func TestAppendTag(t *testing.T) {
	tests := []struct {
		name, text, want string
	}{
		{"empty post", "", "#GoLang"},
		{"after a word", "Learning Go", "Learning Go #GoLang"},
		{"after a space", "Learning Go ", "Learning Go #GoLang"},
		{"after a newline", "Learning Go\n", "Learning Go\n#GoLang"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEditor(t, tt.text)
			e.AppendTag("#GoLang")
			require.Equal(t, tt.want, e.Text())
			require.True(t, e.Undo())
			require.Equal(t, tt.text, e.Text())
		})
	}
}

func TestBufferModifiedEvents(t *testing.T) {
	e := newTestEditor(t, "text")
	em := event.NewManager()
	e.SetEventManager(em)

	var causes []event.Cause
	em.Subscribe(event.TypeBufferModified, func(ev event.Event) bool {
		causes = append(causes, ev.Data.(event.BufferModifiedData).Cause)
		return false
	})

	e.AppendBlock("#tag", event.CauseAppend)
	e.Undo()
	e.Redo()
	e.Reset()
	require.Equal(t, []event.Cause{event.CauseAppend, event.CauseUndo, event.CauseRedo, event.CauseReset}, causes)
}

func TestCopyAndPaste(t *testing.T) {
	e := newTestEditor(t, "copy me")
	ok, err := e.CopySelection()
	require.NoError(t, err)
	require.False(t, ok)

	selectSpan(e, types.Span{End: types.Position{Col: 4}})
	ok, err = e.CopySelection()
	require.NoError(t, err)
	require.True(t, ok)

	e.ClearSelection()
	e.SetCursor(e.GetBuffer().End())
	ok, err = e.Paste()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "copy mecopy", e.Text())
}

func TestReplaceIsOneStep(t *testing.T) {
	e := newTestEditor(t, "Go go GO")
	n, err := e.Replace("go", "rust", true)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "rust rust rust", e.Text())
	require.True(t, e.Undo())
	require.Equal(t, "Go go GO", e.Text())
}

func TestLoadFileClearsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "post.txt")
	require.NoError(t, os.WriteFile(path, []byte("loaded\n"), 0o644))

	e := newTestEditor(t, "")
	typeString(t, e, "typed")
	require.NoError(t, e.LoadFile(path))
	require.Equal(t, "loaded", e.Text())
	require.False(t, e.GetHistoryManager().CanUndo())

	out := filepath.Join(t.TempDir(), "saved.txt")
	require.NoError(t, e.SaveBuffer(out))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, "loaded\n", string(data))
}
