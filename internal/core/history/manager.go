// Package history provides linear undo/redo over full-text snapshots.
package history

import (
	"sync"

	"github.com/bethropolis/postfmt/internal/logger"
)

// DefaultMaxHistory is used by callers that want a bound but did not
// configure one. A limit of 0 passed to NewManager means unbounded.
const DefaultMaxHistory = 500

// Document is the single text buffer a Manager snapshots and restores.
type Document interface {
	// Text returns the full current content.
	Text() string
	// Restore replaces the full content and moves the cursor to its end.
	Restore(text string)
}

// Manager keeps the undo and redo snapshot stacks for one Document.
type Manager struct {
	doc        Document
	undoStack  []string
	redoStack  []string
	maxHistory int
	mutex      sync.Mutex
}

// NewManager creates a history manager for doc. maxHistory bounds the undo
// stack (oldest snapshots are evicted first); 0 or less means unbounded.
func NewManager(doc Document, maxHistory int) *Manager {
	if maxHistory < 0 {
		maxHistory = 0
	}
	return &Manager{
		doc:        doc,
		maxHistory: maxHistory,
	}
}

// Snapshot records the document's current text as an undo point and drops
// any pending redo. Call it right before every user-initiated mutation.
func (m *Manager) Snapshot() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.pushUndo(m.doc.Text())
	m.redoStack = nil

	logger.DebugTagf("history", "Snapshot: undo=%d redo=%d", len(m.undoStack), len(m.redoStack))
}

// Undo restores the most recent snapshot, keeping the current text for
// Redo. It returns false when there is nothing to undo.
func (m *Manager) Undo() bool {
	m.mutex.Lock()
	if len(m.undoStack) == 0 {
		m.mutex.Unlock()
		logger.DebugTagf("history", "Undo: nothing to undo")
		return false
	}
	m.redoStack = append(m.redoStack, m.doc.Text())
	text := pop(&m.undoStack)
	logger.DebugTagf("history", "Undo: undo=%d redo=%d", len(m.undoStack), len(m.redoStack))
	m.mutex.Unlock()

	// Restore runs unlocked so the document may query the manager.
	m.doc.Restore(text)
	return true
}

// Redo reapplies the most recently undone text. It returns false when
// there is nothing to redo.
func (m *Manager) Redo() bool {
	m.mutex.Lock()
	if len(m.redoStack) == 0 {
		m.mutex.Unlock()
		logger.DebugTagf("history", "Redo: nothing to redo")
		return false
	}
	m.pushUndo(m.doc.Text())
	text := pop(&m.redoStack)
	logger.DebugTagf("history", "Redo: undo=%d redo=%d", len(m.undoStack), len(m.redoStack))
	m.mutex.Unlock()

	m.doc.Restore(text)
	return true
}

// pushUndo appends text, evicting the oldest entries beyond maxHistory.
// Caller holds mutex.
func (m *Manager) pushUndo(text string) {
	m.undoStack = append(m.undoStack, text)
	if m.maxHistory > 0 && len(m.undoStack) > m.maxHistory {
		m.undoStack = m.undoStack[len(m.undoStack)-m.maxHistory:]
	}
}

func pop(stack *[]string) string {
	s := *stack
	top := s[len(s)-1]
	s[len(s)-1] = ""
	*stack = s[:len(s)-1]
	return top
}

// Clear drops both stacks. Call it when a different post is loaded.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.undoStack = nil
	m.redoStack = nil
	logger.DebugTagf("history", "Cleared")
}

// CanUndo returns true if there are snapshots that can be restored.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.undoStack) > 0
}

// CanRedo returns true if there are undone states that can be reapplied.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.redoStack) > 0
}

// Len returns the sizes of the undo and redo stacks.
func (m *Manager) Len() (undo, redo int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.undoStack), len(m.redoStack)
}
