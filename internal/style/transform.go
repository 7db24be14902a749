package style

import (
	"strings"
	"unicode"
)

// Apply toggles the named style over text. If any character of text is
// already a glyph of the style the whole span is stripped back to plain
// characters; otherwise the style is applied. Applying the same style
// twice to its own output restores the input.
func Apply(name, text string) (string, error) {
	s, err := Lookup(name)
	if err != nil {
		return "", err
	}
	return s.Toggle(text), nil
}

// Toggle is Apply for an already resolved style.
func (s *StyleMap) Toggle(text string) string {
	if text == "" {
		return ""
	}
	if s.IsMark() {
		if strings.ContainsRune(text, s.Mark) {
			return s.unmark(text)
		}
		return s.mark(text)
	}
	if s.IsStyled(text) {
		return s.remove(text)
	}
	return s.apply(text)
}

// IsStyled reports whether text contains at least one glyph of this style.
func (s *StyleMap) IsStyled(text string) bool {
	if s.IsMark() {
		return strings.ContainsRune(text, s.Mark)
	}
	for _, r := range text {
		if _, ok := s.Reverse[r]; ok {
			return true
		}
	}
	return false
}

// apply substitutes every mapped letter. Uppercase letters use the glyph
// of their lowercase form; the case is not restored on removal.
func (s *StyleMap) apply(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 2)
	for _, r := range text {
		if styled, ok := s.Forward[unicode.ToLower(r)]; ok {
			b.WriteRune(styled)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *StyleMap) remove(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if plain, ok := s.Reverse[r]; ok {
			b.WriteRune(plain)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// mark appends the combining mark after every character except line breaks.
func (s *StyleMap) mark(text string) string {
	var b strings.Builder
	b.Grow(len(text) * 3)
	for _, r := range text {
		b.WriteRune(r)
		if r != '\n' {
			b.WriteRune(s.Mark)
		}
	}
	return b.String()
}

func (s *StyleMap) unmark(text string) string {
	return strings.ReplaceAll(text, string(s.Mark), "")
}
