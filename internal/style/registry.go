// Package style renders "lookalike" unicode text styles (bold, italic,
// monospace, underline) by character substitution and strips them again.
package style

import (
	"errors"
	"fmt"
)

// Style names understood by Lookup and Apply.
const (
	Bold      = "bold"
	Italic    = "italic"
	Monospace = "monospace"
	Underline = "underline"
)

// CombiningLowLine is the mark interleaved after every character by the
// underline style.
const CombiningLowLine = '\u0332'

// ErrUnknownStyle is returned for a style name that is not registered.
// Callers pass fixed names, so seeing it means the wiring is wrong.
var ErrUnknownStyle = errors.New("unknown style")

// StyleMap is one named style. Substitution styles carry Forward/Reverse
// tables over the lowercase latin alphabet; mark styles (underline) carry
// a combining Mark instead and leave both tables empty.
type StyleMap struct {
	Name    string
	Forward map[rune]rune
	Reverse map[rune]rune
	Mark    rune
}

// IsMark reports whether the style interleaves a combining mark instead
// of substituting characters.
func (s *StyleMap) IsMark() bool {
	return s.Mark != 0
}

// Mathematical alphanumeric blocks: sans-serif bold, sans-serif italic
// and monospace small letters all run contiguously from 'a' to 'z'.
const (
	boldSmallA      = 0x1D5EE
	italicSmallA    = 0x1D622
	monospaceSmallA = 0x1D68A
)

var (
	registry = map[string]*StyleMap{
		Bold:      newSubstitution(Bold, boldSmallA),
		Italic:    newSubstitution(Italic, italicSmallA),
		Monospace: newSubstitution(Monospace, monospaceSmallA),
		Underline: {Name: Underline, Forward: map[rune]rune{}, Reverse: map[rune]rune{}, Mark: CombiningLowLine},
	}
	names = []string{Bold, Italic, Monospace, Underline}
)

// newSubstitution builds a style whose glyph for 'a'+i is base+i, together
// with its exact inverse.
func newSubstitution(name string, base rune) *StyleMap {
	forward := make(map[rune]rune, 26)
	for r := 'a'; r <= 'z'; r++ {
		forward[r] = base + (r - 'a')
	}
	return &StyleMap{Name: name, Forward: forward, Reverse: invert(forward)}
}

func invert(forward map[rune]rune) map[rune]rune {
	reverse := make(map[rune]rune, len(forward))
	for plain, styled := range forward {
		reverse[styled] = plain
	}
	return reverse
}

// Lookup returns the registered style with the given name.
func Lookup(name string) (*StyleMap, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return s, nil
}

// Names lists the registered styles in display order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
