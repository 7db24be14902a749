// Package highlighter finds the tokens of a post that the renderer draws
// in their own style: links, hashtags, mentions and runs of styled
// Unicode glyphs.
package highlighter

import (
	"regexp"
	"sort"
	"strings"

	"github.com/bethropolis/postfmt/internal/buffer"
	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/types"
	"github.com/bethropolis/postfmt/internal/utils"
)

// Style names produced by the highlighter. Themes map them to colours.
const (
	StyleURL     = "URL"
	StyleHashtag = "Hashtag"
	StyleMention = "Mention"
	StyleStyled  = "Styled"
)

// HighlightResult maps line number -> styled ranges on that line.
type HighlightResult map[int][]types.StyledRange

type rule struct {
	style   string
	pattern *regexp.Regexp
}

// Rules earlier in the list win where matches overlap, so a '#' inside a
// URL fragment stays part of the link.
var defaultRules = []rule{
	{StyleURL, regexp.MustCompile(`https?://\S+`)},
	{StyleHashtag, regexp.MustCompile(`#\w+`)},
	{StyleMention, regexp.MustCompile(`@\w+`)},
	{StyleStyled, regexp.MustCompile(`[\x{1D400}-\x{1D7FF}]+`)},
}

// Highlighter scans post text for tokens.
type Highlighter struct {
	rules []rule
}

// NewHighlighter creates a highlighter with the default token rules.
func NewHighlighter() *Highlighter {
	return &Highlighter{rules: defaultRules}
}

// HighlightLine returns the styled ranges of one line, in column order.
func (h *Highlighter) HighlightLine(line []byte) []types.StyledRange {
	var out []types.StyledRange
	taken := func(start, end int) bool {
		for _, r := range out {
			if start < r.EndCol && r.StartCol < end {
				return true
			}
		}
		return false
	}

	for _, rl := range h.rules {
		for _, loc := range rl.pattern.FindAllIndex(line, -1) {
			start := utils.ByteOffsetToRuneIndex(line, loc[0])
			end := utils.ByteOffsetToRuneIndex(line, loc[1])
			if end <= start || taken(start, end) {
				continue
			}
			out = append(out, types.StyledRange{StartCol: start, EndCol: end, StyleName: rl.style})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartCol < out[j].StartCol })
	return out
}

// HighlightBuffer highlights every line of buf. Lines without tokens are
// absent from the result.
func (h *Highlighter) HighlightBuffer(buf buffer.Buffer) HighlightResult {
	result := make(HighlightResult)
	for i, line := range buf.Lines() {
		if ranges := h.HighlightLine(line); len(ranges) > 0 {
			result[i] = ranges
		}
	}
	logger.DebugTagf("highlight", "HighlightBuffer: highlights on %d line(s)", len(result))
	return result
}

// HighlightText highlights a snapshot of the post taken off the UI
// goroutine, so the background highlighter never touches the live buffer.
func (h *Highlighter) HighlightText(text string) HighlightResult {
	result := make(HighlightResult)
	for i, line := range strings.Split(text, "\n") {
		if ranges := h.HighlightLine([]byte(line)); len(ranges) > 0 {
			result[i] = ranges
		}
	}
	return result
}
