package cursor

import (
	"github.com/bethropolis/postfmt/internal/buffer"
	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/types"
	"github.com/rivo/uniseg"
)

// Editor is the interface cursor manager expects from the editor
type Editor interface {
	GetBuffer() buffer.Buffer
	ScrollOff() int
	TabWidth() int
}

// Manager handles cursor positioning and viewport management
type Manager struct {
	editor       Editor
	position     types.Position
	viewportTop  int
	viewportLeft int // Leftmost visible screen column
	viewWidth    int
	viewHeight   int
}

// NewManager creates a new cursor manager
func NewManager(editor Editor) *Manager {
	return &Manager{editor: editor}
}

// SetViewSize updates the view dimensions
func (m *Manager) SetViewSize(width, height int) {
	m.viewWidth = width
	m.viewHeight = height
	m.ScrollToCursor()
}

// GetViewport returns the top visible line and leftmost visible screen column.
func (m *Manager) GetViewport() (int, int) {
	return m.viewportTop, m.viewportLeft
}

// GetPosition returns the current cursor position
func (m *Manager) GetPosition() types.Position {
	return m.position
}

// SetPosition clamps pos into the buffer and moves the cursor there.
func (m *Manager) SetPosition(pos types.Position) {
	buf := m.editor.GetBuffer()
	if buf == nil {
		logger.Warnf("CursorManager.SetPosition: Buffer is nil")
		return
	}

	lineCount := buf.LineCount()
	if pos.Line >= lineCount {
		pos.Line = lineCount - 1
	}
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if maxCol := buf.LineLength(pos.Line); pos.Col > maxCol {
		pos.Col = maxCol
	}

	m.position = pos
	m.ScrollToCursor()
}

// Move moves the cursor by the given delta. Horizontal moves past either
// end of a line wrap to the neighbouring line.
func (m *Manager) Move(deltaLine, deltaCol int) {
	buf := m.editor.GetBuffer()
	if buf == nil {
		return
	}
	pos := m.position
	if deltaLine == 0 {
		switch {
		case deltaCol > 0 && pos.Col >= buf.LineLength(pos.Line) && pos.Line < buf.LineCount()-1:
			m.SetPosition(types.Position{Line: pos.Line + 1, Col: 0})
			return
		case deltaCol < 0 && pos.Col <= 0 && pos.Line > 0:
			m.SetPosition(types.Position{Line: pos.Line - 1, Col: buf.LineLength(pos.Line - 1)})
			return
		}
	}
	m.SetPosition(types.Position{Line: pos.Line + deltaLine, Col: pos.Col + deltaCol})
}

// PageMove moves the cursor by the given number of pages
func (m *Manager) PageMove(deltaPages int) {
	if m.viewHeight <= 0 {
		return
	}
	m.Move(deltaPages*m.viewHeight, 0)
}

// MoveToLineStart moves the cursor to column 0 of the current line.
func (m *Manager) MoveToLineStart() {
	m.SetPosition(types.Position{Line: m.position.Line, Col: 0})
}

// MoveToLineEnd moves the cursor past the last rune of the current line.
func (m *Manager) MoveToLineEnd() {
	buf := m.editor.GetBuffer()
	if buf == nil {
		return
	}
	m.SetPosition(types.Position{Line: m.position.Line, Col: buf.LineLength(m.position.Line)})
}

// ScrollToCursor ensures the cursor is visible in the viewport
func (m *Manager) ScrollToCursor() {
	if m.viewHeight <= 0 || m.viewWidth <= 0 {
		return
	}

	scrollOff := m.editor.ScrollOff()
	if scrollOff*2 >= m.viewHeight {
		scrollOff = (m.viewHeight - 1) / 2
	}

	if m.position.Line < m.viewportTop+scrollOff {
		m.viewportTop = m.position.Line - scrollOff
	} else if m.position.Line >= m.viewportTop+m.viewHeight-scrollOff {
		m.viewportTop = m.position.Line - m.viewHeight + scrollOff + 1
	}
	if m.viewportTop < 0 {
		m.viewportTop = 0
	}

	line, err := m.editor.GetBuffer().Line(m.position.Line)
	if err != nil {
		return
	}
	visualCol := VisualCol(string(line), m.position.Col, m.editor.TabWidth())
	if visualCol < m.viewportLeft {
		m.viewportLeft = visualCol
	} else if visualCol >= m.viewportLeft+m.viewWidth {
		m.viewportLeft = visualCol - m.viewWidth + 1
	}
}

// VisualCol returns the screen column of rune index col in line. Tabs
// advance to the next tab stop and wide graphemes (emoji, CJK) take two
// columns.
func VisualCol(line string, col int, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 1
	}
	visual, runes := 0, 0
	state := -1
	rest := line
	for len(rest) > 0 && runes < col {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" {
			visual = (visual/tabWidth + 1) * tabWidth
		} else {
			visual += width
		}
		runes += len([]rune(cluster))
	}
	return visual
}
