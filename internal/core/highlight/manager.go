// Package highlight stores the token highlights (hashtags, mentions,
// links) computed for the post so the renderer can read them per line.
package highlight

import (
	"sync"

	"github.com/bethropolis/postfmt/internal/highlighter"
	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/types"
)

// Manager holds the latest highlight result. It is written by the
// background highlighter and read by the renderer.
type Manager struct {
	mutex      sync.RWMutex
	highlights highlighter.HighlightResult
}

// NewManager creates an empty highlight store.
func NewManager() *Manager {
	return &Manager{highlights: make(highlighter.HighlightResult)}
}

// UpdateHighlights replaces the stored highlights.
func (m *Manager) UpdateHighlights(newHighlights highlighter.HighlightResult) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if newHighlights == nil {
		newHighlights = make(highlighter.HighlightResult)
	}
	m.highlights = newHighlights
	logger.DebugTagf("highlight", "Stored highlights for %d line(s)", len(newHighlights))
}

// GetHighlightsForLine returns the styled ranges of one line.
func (m *Manager) GetHighlightsForLine(lineNum int) []types.StyledRange {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.highlights[lineNum]
}

// Clear drops every stored highlight.
func (m *Manager) Clear() {
	m.UpdateHighlights(nil)
}
