package hashtag

import (
	"strings"
	"sync"
)

// Suggester memoizes Extract against the last text it saw, so redraws
// that do not change the post skip the extraction.
type Suggester struct {
	mu       sync.Mutex
	lastText string
	last     []string
	valid    bool
}

// NewSuggester returns an empty Suggester.
func NewSuggester() *Suggester {
	return &Suggester{}
}

// Suggest returns the phrase suggestions for text. Whitespace-only text
// yields an empty list. The returned slice is a copy the caller may keep.
func (s *Suggester) Suggest(text string) []string {
	trimmed := strings.TrimSpace(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.valid || trimmed != s.lastText {
		s.lastText = trimmed
		s.valid = true
		if trimmed == "" {
			s.last = []string{}
		} else {
			s.last = Extract(trimmed)
		}
	}

	out := make([]string, len(s.last))
	copy(out, s.last)
	return out
}

// Reset drops the memoized result.
func (s *Suggester) Reset() {
	s.mu.Lock()
	s.valid = false
	s.last = nil
	s.lastText = ""
	s.mu.Unlock()
}
