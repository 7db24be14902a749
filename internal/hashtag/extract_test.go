package hashtag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractPhrasesBeforeSingles(t *testing.T) {
	got := Extract("great team work today")
	require.Equal(t, []string{
		"#GreatTeam", "#TeamWork", "#WorkToday",
		"#GreatTeamWork", "#TeamWorkToday",
		"#great", "#team", "#work",
	}, got)
}

func TestExtractNormalizes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"urls removed", "see https://example.com/page launch", []string{"#launch"}},
		{"existing tags removed", "#golang rocks hard", []string{"#RocksHard", "#rocks", "#hard"}},
		{"punctuation stripped", "Shipping, today!", []string{"#ShippingToday", "#shipping", "#today"}},
		{"short words dropped", "a big win for ops", []string{}},
		{"case folded", "REMOTE Work", []string{"#RemoteWork", "#remote", "#work"}},
		{"no-break space splits words", "great\u00a0team", []string{"#GreatTeam", "#great", "#team"}},
		{"vertical tab splits words", "great\vteam", []string{"#GreatTeam", "#great", "#team"}},
		{"line separator splits words", "great\u2028team", []string{"#GreatTeam", "#great", "#team"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Extract(tt.in))
		})
	}
}

func TestExtractBoundAndUnique(t *testing.T) {
	inputs := []string{
		"",
		"   \n\t",
		"!!! ??? ...",
		"repeat repeat repeat repeat repeat",
		"alpha beta gamma delta epsilon zeta theta iota kappa lambda",
		strings.Repeat("learning every single day ", 20),
	}
	for _, in := range inputs {
		got := Extract(in)
		require.NotNil(t, got)
		require.LessOrEqual(t, len(got), MaxSuggestions, "input %q", in)

		seen := map[string]bool{}
		for _, tag := range got {
			require.False(t, seen[tag], "duplicate %s for %q", tag, in)
			seen[tag] = true
		}
		require.Equal(t, got, Extract(in))
	}
}

func TestExtractRepeatedWordDedupes(t *testing.T) {
	require.Equal(t, []string{"#RepeatRepeat", "#RepeatRepeatRepeat", "#repeat"},
		Extract("repeat repeat repeat"))
}

func TestExtractByFrequency(t *testing.T) {
	got := ExtractByFrequency("I love AI and AI is the future of AI engineering", 8)
	require.Equal(t, []string{"#ai", "#love", "#future", "#engineering"}, got)
}

func TestExtractByFrequencyTiesKeepFirstSeen(t *testing.T) {
	got := ExtractByFrequency("zeta alpha mid zeta alpha mid beta", 8)
	require.Equal(t, []string{"#zeta", "#alpha", "#mid", "#beta"}, got)
}

func TestExtractByFrequencyLimit(t *testing.T) {
	text := "one two three four five six seven eight nine ten eleven"
	require.Len(t, ExtractByFrequency(text, 3), 3)
	require.Equal(t, []string{"#one", "#two", "#three"}, ExtractByFrequency(text, 3))
	require.Equal(t, []string{}, ExtractByFrequency(text, 0))
	require.Len(t, ExtractByFrequency(text, -1), DefaultMaxTags)
}

func TestExtractByFrequencyUnicodeSpaces(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"no-break space", "love\u00a0coding", []string{"#love", "#coding"}},
		{"vertical tab", "love\vcoding love", []string{"#love", "#coding"}},
		{"ideographic space", "love\u3000coding", []string{"#love", "#coding"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExtractByFrequency(tt.in, 8))
		})
	}
}

func TestExtractByFrequencyStripsUrlsAndPunctuation(t *testing.T) {
	got := ExtractByFrequency("Read it: https://blog.example.com/post. Great, great read!", 8)
	require.Equal(t, []string{"#read", "#great"}, got)
}

func TestEmptyInput(t *testing.T) {
	require.Equal(t, []string{}, Extract(""))
	require.Equal(t, []string{}, ExtractByFrequency("   ", 8))
	require.Equal(t, []string{}, ExtractByFrequency("", 8))
	require.Equal(t, []string{}, ExtractByFrequency("the and of", 8))
}

func TestIsStopWord(t *testing.T) {
	require.True(t, IsStopWord("The"))
	require.True(t, IsStopWord("your"))
	require.False(t, IsStopWord("engineering"))
}

func TestCount(t *testing.T) {
	require.Zero(t, Count("no tags"))
	require.Equal(t, 3, Count("#one #two\n#three"))
}

func TestSuggester(t *testing.T) {
	s := NewSuggester()
	require.Equal(t, []string{}, s.Suggest("  "))

	first := s.Suggest("  remote work  ")
	require.Equal(t, []string{"#RemoteWork", "#remote", "#work"}, first)

	first[0] = "#mutated"
	require.Equal(t, "#RemoteWork", s.Suggest("remote work")[0])

	require.Equal(t, []string{"#launch"}, s.Suggest("launch"))
	s.Reset()
	require.Equal(t, []string{"#launch"}, s.Suggest("launch"))
}
