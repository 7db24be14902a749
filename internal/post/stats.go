// Package post holds what the composer knows about a post beyond its
// text: counters, templates, the emoji palette and export.
package post

import (
	"strings"

	"github.com/bethropolis/postfmt/internal/hashtag"
	"github.com/rivo/uniseg"
)

// DefaultFoldLimit is how many characters show before the feed collapses
// a post behind "see more".
const DefaultFoldLimit = 210

// Stats summarizes a post for the status bar and the :wc command.
type Stats struct {
	Length    int // UTF-16 code units, the length the feed counts
	Graphemes int // user-perceived characters
	Words     int
	Lines     int
	Hashtags  int // number of '#' characters
	OverFold  bool
}

// Analyze computes Stats for text. The fold is measured in Length. foldLimit <= 0 selects DefaultFoldLimit.
func Analyze(text string, foldLimit int) Stats {
	if foldLimit <= 0 {
		foldLimit = DefaultFoldLimit
	}
	s := Stats{
		Length:    utf16Length(text),
		Graphemes: uniseg.GraphemeClusterCount(text),
		Words:     len(strings.Fields(text)),
		Lines:     strings.Count(text, "\n") + 1,
		Hashtags:  hashtag.Count(text),
	}
	s.OverFold = s.Length > foldLimit
	return s
}

// utf16Length counts text the way the feed does: runes outside the Basic
// Multilingual Plane, such as the styled letters, take two units.
func utf16Length(text string) int {
	n := 0
	for _, r := range text {
		if r >= 0x10000 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// FoldLabel describes where the post stands against the fold.
func (s Stats) FoldLabel() string {
	if s.OverFold {
		return "'See more' will appear"
	}
	return "Below fold"
}

// AppendBlock appends block to text separated by a blank line.
func AppendBlock(text, block string) string {
	return text + "\n\n" + block
}
