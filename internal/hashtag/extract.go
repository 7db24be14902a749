// Package hashtag derives hashtag suggestions from the text of a post.
//
// Two independent strategies are provided. Extract builds CamelCase phrase
// tags from runs of two and three words plus single-word tags, and feeds the
// live suggestion strip. ExtractByFrequency ranks single words by how often
// they occur, ignoring common function words.
package hashtag

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxSuggestions caps the result of Extract.
	MaxSuggestions = 8
	// DefaultMaxTags is the ExtractByFrequency limit used when none is given.
	DefaultMaxTags = 8

	minPhraseWordLen = 4 // Extract keeps words longer than 3 characters
	minFreqWordLen   = 2 // keeps two-letter terms such as "ai"
	maxPhraseWords   = 3
)

var (
	urlPattern         = regexp.MustCompile(`https?://\S+`)
	existingTagPattern = regexp.MustCompile(`#\w+`)
	// punctuationPattern keeps Unicode spaces (NBSP, \v, U+2028...) so that
	// strings.Fields still splits on them.
	punctuationPattern = regexp.MustCompile(`[^\w\s\p{Z}\v\x{85}]`)
)

// stopWords are skipped by ExtractByFrequency.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "to": {}, "of": {}, "in": {}, "a": {}, "with": {}, "for": {},
	"on": {}, "is": {}, "that": {}, "this": {}, "it": {}, "as": {}, "are": {}, "be": {},
	"by": {}, "from": {}, "or": {}, "an": {}, "at": {}, "your": {}, "you": {},
}

// IsStopWord reports whether word is ignored by the frequency ranking.
func IsStopWord(word string) bool {
	_, ok := stopWords[strings.ToLower(word)]
	return ok
}

// Extract returns at most MaxSuggestions unique tags for text. Phrase tags
// (#GreatTeam, #GreatTeamWork) come first in left-to-right order for two-
// then three-word runs, followed by single-word tags (#great). URLs and
// hashtags already present in text are ignored.
func Extract(text string) []string {
	cleaned := urlPattern.ReplaceAllString(text, "")
	cleaned = existingTagPattern.ReplaceAllString(cleaned, "")
	cleaned = punctuationPattern.ReplaceAllString(cleaned, "")
	cleaned = strings.ToLower(cleaned)

	var words []string
	for _, w := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(w) >= minPhraseWordLen {
			words = append(words, w)
		}
	}

	candidates := make([]string, 0, len(words)*3)
	for _, phrase := range phrases(words, maxPhraseWords) {
		candidates = append(candidates, camelTag(phrase))
	}
	for _, w := range words {
		candidates = append(candidates, "#"+w)
	}

	return firstUnique(candidates, MaxSuggestions)
}

// phrases returns every contiguous run of 2..maxWords words, grouped by
// size and in order of their first word.
func phrases(words []string, maxWords int) [][]string {
	var out [][]string
	for size := 2; size <= maxWords; size++ {
		for i := 0; i+size <= len(words); i++ {
			out = append(out, words[i:i+size])
		}
	}
	return out
}

// camelTag renders a phrase as a single tag: each word capitalised and
// joined without separators.
func camelTag(words []string) string {
	var b strings.Builder
	b.WriteByte('#')
	for _, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(strings.ToLower(w[size:]))
	}
	return b.String()
}

func firstUnique(items []string, limit int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, min(len(items), limit))
	for _, item := range items {
		if len(out) == limit {
			break
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

type wordCount struct {
	word  string
	count int
}

// ExtractByFrequency returns up to maxTags single-word tags ranked by how
// often each word occurs. Single-character words and stop words are
// skipped; equal counts keep the order in which the words were first seen.
// A negative maxTags selects DefaultMaxTags; zero yields no tags.
func ExtractByFrequency(text string, maxTags int) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	if maxTags < 0 {
		maxTags = DefaultMaxTags
	}

	cleaned := strings.ToLower(text)
	cleaned = urlPattern.ReplaceAllString(cleaned, "")
	cleaned = punctuationPattern.ReplaceAllString(cleaned, "")

	var counts []wordCount
	index := make(map[string]int)
	for _, w := range strings.Fields(cleaned) {
		if utf8.RuneCountInString(w) < minFreqWordLen {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		if i, ok := index[w]; ok {
			counts[i].count++
			continue
		}
		index[w] = len(counts)
		counts = append(counts, wordCount{word: w, count: 1})
	}

	slices.SortStableFunc(counts, func(a, b wordCount) int {
		return b.count - a.count
	})

	out := make([]string, 0, min(len(counts), maxTags))
	for _, wc := range counts {
		if len(out) == maxTags {
			break
		}
		out = append(out, "#"+wc.word)
	}
	return out
}

// Count returns the number of '#' characters in text, the figure the
// status bar shows as the post's hashtag count.
func Count(text string) int {
	return strings.Count(text, "#")
}
