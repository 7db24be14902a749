package selection

import (
	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/types"
)

// Manager handles text selection state and logic.
type Manager struct {
	editor EditorInterface

	selecting      bool
	selectionStart types.Position // Anchor point
	selectionEnd   types.Position // Usually follows cursor
}

// EditorInterface defines what the selection manager needs from editor.
type EditorInterface interface {
	GetCursor() types.Position
}

var noPosition = types.Position{Line: -1, Col: -1}

// NewManager creates a new selection manager.
func NewManager(editor EditorInterface) *Manager {
	return &Manager{
		editor:         editor,
		selectionStart: noPosition,
		selectionEnd:   noPosition,
	}
}

// HasSelection returns whether there is an active, non-empty selection.
func (m *Manager) HasSelection() bool {
	return m.selecting && m.selectionStart != m.selectionEnd
}

// GetSelection returns the normalized selection range (start <= end).
// ok is true only if selecting and start != end.
func (m *Manager) GetSelection() (start types.Position, end types.Position, ok bool) {
	if !m.HasSelection() {
		return noPosition, noPosition, false
	}
	span := types.Span{Start: m.selectionStart, End: m.selectionEnd}.Normalized()
	return span.Start, span.End, true
}

// Span returns the selection as a normalized span.
func (m *Manager) Span() (types.Span, bool) {
	start, end, ok := m.GetSelection()
	return types.Span{Start: start, End: end}, ok
}

// ClearSelection resets the selection state.
func (m *Manager) ClearSelection() {
	if m.selecting {
		logger.DebugTagf("core", "Selection Manager: Cleared")
	}
	m.selecting = false
	m.selectionStart = noPosition
	m.selectionEnd = noPosition
}

// StartOrUpdateSelection anchors a selection at the cursor if none is
// active, then moves its free end to the cursor.
func (m *Manager) StartOrUpdateSelection() {
	currentCursor := m.editor.GetCursor()
	if !m.selecting {
		m.selectionStart = currentCursor
		m.selecting = true
		logger.DebugTagf("core", "Selection Manager: Started at %v", m.selectionStart)
	}
	m.selectionEnd = currentCursor
}

// UpdateSelectionEnd moves the free end of an active selection to the cursor.
func (m *Manager) UpdateSelectionEnd() {
	if m.selecting {
		m.selectionEnd = m.editor.GetCursor()
	}
}

// Select replaces the selection with span.
func (m *Manager) Select(span types.Span) {
	m.selecting = true
	m.selectionStart = span.Start
	m.selectionEnd = span.End
}

// IsSelecting returns the raw selecting flag state.
func (m *Manager) IsSelecting() bool {
	return m.selecting
}
