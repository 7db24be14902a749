// Package find searches the post for a term, case-insensitively, and
// keeps the matches for highlighting.
package find

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/bethropolis/postfmt/internal/buffer"
	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/types"
	"github.com/bethropolis/postfmt/internal/utils"
)

// ErrEmptyTerm is returned when a search or replace is given no term.
var ErrEmptyTerm = errors.New("search term cannot be empty")

// EditorInterface defines methods the find manager needs from the editor.
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	GetCursor() types.Position
	SetCursor(types.Position)
	ReplaceText(text string) // one undoable whole-post replacement
}

// Manager handles find, replace, and search highlighting logic.
type Manager struct {
	editor           EditorInterface
	mutex            sync.RWMutex
	searchHighlights []types.HighlightRegion
	lastSearchTerm   string
	lastSearchRegex  *regexp.Regexp
}

// NewManager creates a find manager.
func NewManager(editor EditorInterface) *Manager {
	return &Manager{editor: editor}
}

// compile matches term literally, ignoring case.
func compile(term string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(term))
}

// Find highlights every match of term and moves the cursor to the first
// match at or after it, wrapping to the top of the post.
func (m *Manager) Find(term string) (types.Position, bool, error) {
	if err := m.HighlightMatches(term); err != nil {
		return types.Position{}, false, err
	}
	return m.next(m.editor.GetCursor(), true)
}

// FindNext moves to the next (or previous) match of the last term.
func (m *Manager) FindNext(forward bool) (types.Position, bool) {
	from := m.editor.GetCursor()
	if forward {
		from.Col++
	}
	pos, found, _ := m.next(from, forward)
	return pos, found
}

func (m *Manager) next(from types.Position, forward bool) (types.Position, bool, error) {
	m.mutex.RLock()
	regions := append([]types.HighlightRegion(nil), m.searchHighlights...)
	m.mutex.RUnlock()

	if len(regions) == 0 {
		return types.Position{}, false, nil
	}

	var target types.HighlightRegion
	if forward {
		target = regions[0] // wrap
		for _, r := range regions {
			if !r.Start.Before(from) {
				target = r
				break
			}
		}
	} else {
		target = regions[len(regions)-1] // wrap
		for i := len(regions) - 1; i >= 0; i-- {
			if regions[i].Start.Before(from) {
				target = regions[i]
				break
			}
		}
	}
	m.editor.SetCursor(target.Start)
	return target.Start, true, nil
}

// HighlightMatches finds and stores all occurrences for highlighting.
func (m *Manager) HighlightMatches(term string) error {
	m.ClearHighlights()
	if term == "" {
		m.mutex.Lock()
		m.lastSearchTerm, m.lastSearchRegex = "", nil
		m.mutex.Unlock()
		return ErrEmptyTerm
	}
	re := compile(term)

	buf := m.editor.GetBuffer()
	var found []types.HighlightRegion
	for lineIdx := 0; lineIdx < buf.LineCount(); lineIdx++ {
		lineBytes, err := buf.Line(lineIdx)
		if err != nil {
			continue
		}
		for _, loc := range re.FindAllIndex(lineBytes, -1) {
			found = append(found, types.HighlightRegion{
				Start: types.Position{Line: lineIdx, Col: utils.ByteOffsetToRuneIndex(lineBytes, loc[0])},
				End:   types.Position{Line: lineIdx, Col: utils.ByteOffsetToRuneIndex(lineBytes, loc[1])},
				Type:  types.HighlightSearch,
			})
		}
	}

	m.mutex.Lock()
	m.lastSearchTerm = term
	m.lastSearchRegex = re
	m.searchHighlights = found
	m.mutex.Unlock()
	logger.DebugTagf("find", "%d matches for %q", len(found), term)
	return nil
}

// ClearHighlights removes search highlight regions.
func (m *Manager) ClearHighlights() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.searchHighlights = nil
}

// HasHighlights checks if there are any search highlights.
func (m *Manager) HasHighlights() bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.searchHighlights) > 0
}

// GetHighlights returns a copy of the current search highlight regions.
func (m *Manager) GetHighlights() []types.HighlightRegion {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	highlights := make([]types.HighlightRegion, len(m.searchHighlights))
	copy(highlights, m.searchHighlights)
	return highlights
}

// LastTerm returns the most recent search term.
func (m *Manager) LastTerm() string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.lastSearchTerm
}

// ParseSubstituteCommand parses "/old/new/[g]" into its parts.
func ParseSubstituteCommand(cmdStr string) (pattern, replacement string, global bool, err error) {
	parts := strings.SplitN(cmdStr, "/", 4)
	if len(parts) < 3 || parts[0] != "" {
		err = fmt.Errorf("invalid format: use /old/new/[g]")
		return
	}
	pattern, replacement = parts[1], parts[2]
	if pattern == "" {
		err = ErrEmptyTerm
		return
	}
	global = len(parts) > 3 && strings.Contains(parts[3], "g")
	return
}

// Replace substitutes term with replacement, ignoring case. Without global
// only the first match at or after the cursor line is replaced. The whole
// change is one undoable step. It returns the number of replacements.
func (m *Manager) Replace(term, replacement string, global bool) (int, error) {
	if term == "" {
		return 0, ErrEmptyTerm
	}
	re := compile(term)
	buf := m.editor.GetBuffer()
	text := buf.String()

	var count int
	var out string
	if global {
		count = len(re.FindAllStringIndex(text, -1))
		out = re.ReplaceAllLiteralString(text, replacement)
	} else {
		from := lineOffset(buf, m.editor.GetCursor().Line)
		loc := re.FindStringIndex(text[from:])
		if loc == nil {
			loc = re.FindStringIndex(text) // wrap
			from = 0
		}
		if loc != nil {
			count = 1
			out = text[:from+loc[0]] + replacement + text[from+loc[1]:]
		}
	}
	if count == 0 {
		return 0, nil
	}

	m.editor.ReplaceText(out)
	if m.LastTerm() != "" {
		_ = m.HighlightMatches(m.LastTerm())
	}
	logger.DebugTagf("find", "Replaced %d occurrence(s) of %q", count, term)
	return count, nil
}

// lineOffset returns the byte offset in buf.String() where line starts.
func lineOffset(buf buffer.Buffer, line int) int {
	off := 0
	for i := 0; i < line && i < buf.LineCount(); i++ {
		l, _ := buf.Line(i)
		off += len(l) + 1
	}
	return off
}
