package post

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		foldLimit int
		want      Stats
	}{
		{"empty", "", 0, Stats{Lines: 1}},
		{"plain", "hello world", 0, Stats{Length: 11, Graphemes: 11, Words: 2, Lines: 1}},
		{"hashtags", "ship it\n#go #oss", 0, Stats{Length: 16, Graphemes: 16, Words: 4, Lines: 2, Hashtags: 2}},
		{"styled letters take two units", "𝗯𝗼𝗹𝗱", 0, Stats{Length: 8, Graphemes: 4, Words: 1, Lines: 1}},
		{"combining underline takes a unit", "a̲b̲", 0, Stats{Length: 4, Graphemes: 2, Words: 1, Lines: 1}},
		{"over custom fold", "abcdef", 5, Stats{Length: 6, Graphemes: 6, Words: 1, Lines: 1, OverFold: true}},
		{"at fold", "abcde", 5, Stats{Length: 5, Graphemes: 5, Words: 1, Lines: 1}},
		{"styled text folds by units", "𝗯𝗼𝗹𝗱", 5, Stats{Length: 8, Graphemes: 4, Words: 1, Lines: 1, OverFold: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Analyze(tt.text, tt.foldLimit))
		})
	}
}

func TestAnalyzeDefaultFold(t *testing.T) {
	require.False(t, Analyze(strings.Repeat("a", DefaultFoldLimit), 0).OverFold)
	s := Analyze(strings.Repeat("a", DefaultFoldLimit+1), 0)
	require.True(t, s.OverFold)
	require.Equal(t, "'See more' will appear", s.FoldLabel())
	require.Equal(t, "Below fold", Analyze("short", 0).FoldLabel())
}

func TestAppendBlock(t *testing.T) {
	require.Equal(t, "post\n\n#go", AppendBlock("post", "#go"))
	require.Equal(t, "\n\n#go", AppendBlock("", "#go"))
}

func TestEmoji(t *testing.T) {
	e, err := Emoji("objects", 2)
	require.NoError(t, err)
	require.Equal(t, "🚀", e)

	_, err = Emoji("Food", 6)
	require.ErrorIs(t, err, ErrUnknownEmoji)
	_, err = Emoji("Food", 0)
	require.ErrorIs(t, err, ErrUnknownEmoji)
	_, err = Emoji("Animals", 1)
	require.ErrorIs(t, err, ErrUnknownEmoji)

	cats := EmojiCategories()
	require.Len(t, cats, 4)
	cats[0].Name = "changed"
	require.Equal(t, "People", EmojiCategories()[0].Name)
}

func TestLibrary(t *testing.T) {
	lib := NewLibrary([]Template{
		{Title: "project launch", Content: "custom launch"},
		{Title: "Hiring", Content: "We're hiring!"},
	})
	require.Equal(t, []string{"Weekly Learnings", "project launch", "Thank You Post", "Hiring"}, lib.Titles())

	tpl, err := lib.Find("PROJECT LAUNCH")
	require.NoError(t, err)
	require.Equal(t, "custom launch", tpl.Content)

	tpl, err = lib.Find(" weekly learnings ")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(tpl.Content, "This week I learned"))

	_, err = lib.Find("nope")
	require.True(t, errors.Is(err, ErrUnknownTemplate))
	require.Equal(t, "Project Launch", BuiltinTemplates[1].Title)
}

func TestLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`templates:
  - title: Hiring
    content: |
      We're hiring!
      #jobs
  - title: Short
    content: one line
`), 0o644))

	got, err := LoadTemplates(path)
	require.NoError(t, err)
	require.Equal(t, []Template{
		{Title: "Hiring", Content: "We're hiring!\n#jobs"},
		{Title: "Short", Content: "one line"},
	}, got)
}

func TestLoadTemplatesErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadTemplates(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("templates: [\n"), 0o644))
	_, err = LoadTemplates(bad)
	require.Error(t, err)

	untitled := filepath.Join(dir, "untitled.yaml")
	require.NoError(t, os.WriteFile(untitled, []byte("templates:\n  - content: x\n"), 0o644))
	_, err = LoadTemplates(untitled)
	require.ErrorContains(t, err, "no title")
}

func TestExportMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "post.md")
	require.NoError(t, ExportMarkdown(path, "𝗛𝗶\n#go"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "𝗛𝗶\n#go\n", string(data))
}
