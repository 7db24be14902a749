// Package list toggles bullet and numbered prefixes over a block of lines.
package list

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind selects the prefix style.
type Kind int

const (
	Bullet Kind = iota
	Numbered
)

// BulletGlyph is the marker written in front of bulleted lines.
const BulletGlyph = "•"

// ErrUnknownKind is returned by ParseKind for anything but "bullet" or "numbered".
var ErrUnknownKind = errors.New("unknown list kind")

var (
	bulletPrefix   = regexp.MustCompile(`^(\s*)` + BulletGlyph + ` `)
	numberedPrefix = regexp.MustCompile(`^(\s*)\d+\. `)
)

func (k Kind) String() string {
	switch k {
	case Bullet:
		return "bullet"
	case Numbered:
		return "numbered"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps "bullet" or "numbered" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bullet", "bullets", "ul":
		return Bullet, nil
	case "numbered", "number", "ol":
		return Numbered, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) pattern() *regexp.Regexp {
	if k == Numbered {
		return numberedPrefix
	}
	return bulletPrefix
}

// Toggle adds or removes the kind's prefix on every non-blank line of text.
// Prefixes are removed only when every non-blank line already has one;
// otherwise every non-blank line gets a new prefix, including lines that
// are already marked. Blank lines are kept as they are and never consume
// a number.
func Toggle(kind Kind, text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	if allMarked(kind, lines) {
		return strings.Join(unmark(kind, lines), "\n")
	}
	return strings.Join(mark(kind, lines), "\n")
}

// IsMarked reports whether every non-blank line of text carries the
// kind's prefix. Text with no non-blank lines counts as marked.
func IsMarked(kind Kind, text string) bool {
	return allMarked(kind, strings.Split(text, "\n"))
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func allMarked(kind Kind, lines []string) bool {
	re := kind.pattern()
	for _, line := range lines {
		if isBlank(line) {
			continue
		}
		if !re.MatchString(line) {
			return false
		}
	}
	return true
}

// unmark strips the marker and keeps the indentation in front of it.
func unmark(kind Kind, lines []string) []string {
	re := kind.pattern()
	out := make([]string, len(lines))
	for i, line := range lines {
		if isBlank(line) {
			out[i] = line
			continue
		}
		out[i] = re.ReplaceAllString(line, "$1")
	}
	return out
}

func mark(kind Kind, lines []string) []string {
	out := make([]string, len(lines))
	n := 0
	for i, line := range lines {
		if isBlank(line) {
			out[i] = line
			continue
		}
		n++
		if kind == Numbered {
			out[i] = strconv.Itoa(n) + ". " + line
		} else {
			out[i] = BulletGlyph + " " + line
		}
	}
	return out
}
