package commands

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/bethropolis/postfmt/internal/event"
	"github.com/bethropolis/postfmt/internal/list"
	"github.com/bethropolis/postfmt/internal/plugin"
	"github.com/bethropolis/postfmt/internal/post"
	"github.com/bethropolis/postfmt/internal/theme"
	"github.com/stretchr/testify/require"
)

// fakeAPI implements the parts of plugin.EditorAPI the commands touch.
// Calling anything else panics on the nil embedded interface.
type fakeAPI struct {
	plugin.EditorAPI

	text     string
	commands map[string]plugin.CommandFunc
	msg      string
	causes   []event.Cause
	styled   []string
	lists    []list.Kind
	quit     []bool
	exported string
	current  *theme.Theme
	themes   map[string]*theme.Theme
}

func newFakeAPI(text string) *fakeAPI {
	return &fakeAPI{
		text:     text,
		commands: make(map[string]plugin.CommandFunc),
		current:  theme.PostfmtDark,
		themes: map[string]*theme.Theme{
			theme.PostfmtDark.Name:  theme.PostfmtDark,
			theme.PostfmtLight.Name: theme.PostfmtLight,
		},
	}
}

func (f *fakeAPI) RegisterCommand(name string, fn plugin.CommandFunc) error {
	if _, ok := f.commands[name]; ok {
		return fmt.Errorf("command %q already registered", name)
	}
	f.commands[name] = fn
	return nil
}

func (f *fakeAPI) run(t *testing.T, line string) error {
	t.Helper()
	parts := strings.Fields(line)
	fn, ok := f.commands[parts[0]]
	require.True(t, ok, "command %q not registered", parts[0])
	return fn(parts[1:])
}

func (f *fakeAPI) SetStatusMessage(format string, args ...interface{}) {
	f.msg = fmt.Sprintf(format, args...)
}

func (f *fakeAPI) GetText() string           { return f.text }
func (f *fakeAPI) GetBufferFilePath() string { return "post.txt" }

func (f *fakeAPI) InsertText(text string, cause event.Cause) error {
	f.text += text
	f.causes = append(f.causes, cause)
	return nil
}

func (f *fakeAPI) AppendBlock(block string, cause event.Cause) {
	f.text = post.AppendBlock(f.text, block)
	f.causes = append(f.causes, cause)
}

func (f *fakeAPI) ApplyStyle(name string) error {
	f.styled = append(f.styled, name)
	return nil
}

func (f *fakeAPI) ToggleList(kind list.Kind) error {
	f.lists = append(f.lists, kind)
	return nil
}

func (f *fakeAPI) Replace(pattern, replacement string, global bool) (int, error) {
	n := strings.Count(f.text, pattern)
	if !global && n > 1 {
		n = 1
	}
	f.text = strings.Replace(f.text, pattern, replacement, n)
	return n, nil
}

func (f *fakeAPI) ResetPost() {
	f.text = ""
	f.causes = append(f.causes, event.CauseReset)
}

func (f *fakeAPI) Undo() bool { return false }
func (f *fakeAPI) Redo() bool { return false }

func (f *fakeAPI) SaveBuffer(path ...string) error { return nil }

func (f *fakeAPI) ExportPost(path string) (string, error) {
	if path == "" {
		path = "exports/post.md"
	}
	f.exported = path
	return path, nil
}

func (f *fakeAPI) CopyPost() error { return errors.New("no clipboard") }

func (f *fakeAPI) RequestQuit(force bool) { f.quit = append(f.quit, force) }

func (f *fakeAPI) SetTheme(name string) error {
	t, ok := f.themes[name]
	if !ok {
		return theme.ErrThemeNotFound
	}
	f.current = t
	return nil
}

func (f *fakeAPI) GetTheme() *theme.Theme { return f.current }

func (f *fakeAPI) ListThemes() []string {
	return []string{theme.PostfmtDark.Name, theme.PostfmtLight.Name}
}

func (f *fakeAPI) ToggleTheme() *theme.Theme {
	if f.current == theme.PostfmtDark {
		f.current = theme.PostfmtLight
	} else {
		f.current = theme.PostfmtDark
	}
	return f.current
}

func setup(text string) *fakeAPI {
	api := newFakeAPI(text)
	RegisterAppCommands(api, PostDeps{DefaultHashtags: "#a #b", MaxTags: 3})
	return api
}

func TestStyleAndListCommands(t *testing.T) {
	api := setup("hello")

	require.NoError(t, api.run(t, "style Bold"))
	require.Equal(t, []string{"bold"}, api.styled)
	require.Error(t, api.run(t, "style"))

	require.NoError(t, api.run(t, "list numbered"))
	require.NoError(t, api.run(t, "list bullet"))
	require.Equal(t, []list.Kind{list.Numbered, list.Bullet}, api.lists)
	require.ErrorIs(t, api.run(t, "list stars"), list.ErrUnknownKind)
}

func TestTemplateCommands(t *testing.T) {
	api := setup("Intro")

	require.NoError(t, api.run(t, "template project launch"))
	require.True(t, strings.HasPrefix(api.text, "Intro\n\nExcited to announce"))
	require.Equal(t, []event.Cause{event.CauseTemplate}, api.causes)

	require.ErrorIs(t, api.run(t, "template nope"), post.ErrUnknownTemplate)

	require.NoError(t, api.run(t, "templates"))
	require.Contains(t, api.msg, "Weekly Learnings")
}

func TestEmojiCommand(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    string
		msg     string
		wantErr error
	}{
		{name: "categories", line: "emoji", msg: "Emoji: People, Objects, Nature, Food"},
		{name: "one category", line: "emoji objects", msg: "Objects: 1:💡 2:🚀 3:⭐ 4:🔥 5:✅ 6:⚡"},
		{name: "insert", line: "emoji objects 2", want: "🚀"},
		{name: "bad category", line: "emoji tools", wantErr: post.ErrUnknownEmoji},
		{name: "bad index", line: "emoji food 9", wantErr: post.ErrUnknownEmoji},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := setup("")
			err := api.run(t, tt.line)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, api.text)
			if tt.msg != "" {
				require.Equal(t, tt.msg, api.msg)
			}
		})
	}
}

func TestHashtagCommands(t *testing.T) {
	api := setup("go go go rust rust zig")
	require.NoError(t, api.run(t, "tags"))
	require.Equal(t, "Top tags: #go #rust #zig", api.msg)

	require.NoError(t, api.run(t, "tags add"))
	require.True(t, strings.HasSuffix(api.text, "\n\n#go #rust #zig"))

	api = setup("Launch day")
	require.NoError(t, api.run(t, "hashtags"))
	require.Equal(t, "Launch day\n\n#a #b", api.text)
	require.Equal(t, []event.Cause{event.CauseAppend}, api.causes)
}

func TestSubstituteCommand(t *testing.T) {
	api := setup("cat cat cat")

	require.NoError(t, api.run(t, "s /cat/dog/"))
	require.Equal(t, "dog cat cat", api.text)

	require.NoError(t, api.run(t, "s /cat/dog/g"))
	require.Equal(t, "dog dog dog", api.text)
	require.Equal(t, "Replaced 2 occurrence(s)", api.msg)

	require.NoError(t, api.run(t, "s /emu/dog/g"))
	require.Equal(t, "Pattern not found: emu", api.msg)

	require.Error(t, api.run(t, "s bad"))
}

func TestFileAndQuitCommands(t *testing.T) {
	api := setup("x")

	require.NoError(t, api.run(t, "export"))
	require.Equal(t, "exports/post.md", api.exported)
	require.NoError(t, api.run(t, "export out/launch.md"))
	require.Equal(t, "Exported to out/launch.md", api.msg)

	require.NoError(t, api.run(t, "w"))
	require.Equal(t, "Written post.txt", api.msg)

	require.NoError(t, api.run(t, "q"))
	require.NoError(t, api.run(t, "q!"))
	require.NoError(t, api.run(t, "wq"))
	require.Equal(t, []bool{false, true, true}, api.quit)

	require.Error(t, api.run(t, "copy"))

	require.NoError(t, api.run(t, "reset"))
	require.Empty(t, api.text)

	require.NoError(t, api.run(t, "undo"))
	require.Equal(t, "Nothing to undo", api.msg)
}

func TestThemeCommands(t *testing.T) {
	api := setup("")

	require.NoError(t, api.run(t, "theme"))
	require.Equal(t, "Current theme: "+theme.PostfmtDark.Name, api.msg)

	require.NoError(t, api.run(t, "toggletheme"))
	require.Equal(t, theme.PostfmtLight, api.current)

	err := api.run(t, "theme Solarized")
	require.ErrorIs(t, err, theme.ErrThemeNotFound)
	require.Contains(t, err.Error(), "Available:")

	require.NoError(t, api.run(t, "theme "+theme.PostfmtDark.Name))
	require.Equal(t, theme.PostfmtDark, api.current)
}

func TestDuplicateRegistrationIsLogged(t *testing.T) {
	api := setup("")
	n := len(api.commands)
	RegisterFileCommands(api)
	require.Len(t, api.commands, n)
}
