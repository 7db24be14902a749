package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/postfmt/internal/post"
	"github.com/bethropolis/postfmt/internal/theme"
	"github.com/bethropolis/postfmt/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestInfoLine(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetFileInfo("/tmp/drafts/launch.md", true)
	sb.SetCursorInfo(types.Position{Line: 1, Col: 4})
	sb.SetStats(post.Analyze("hello #go", 0))
	sb.SetEditorMode("NORMAL")

	require.Equal(t, " launch.md [+] | 9 chars | 1 # | Below fold | Ln 2, Col 5 -- NORMAL", sb.Text())

	sb.SetSuggestions([]string{"#hello", "#go"})
	require.Contains(t, sb.Text(), "| #hello #go")
}

func TestMessageAndPromptPrecedence(t *testing.T) {
	sb := New(Config{MessageTimeout: time.Hour})
	sb.SetTemporaryMessage("Saved %d", 3)
	require.Equal(t, "Saved 3", sb.Text())

	sb.SetPrompt(":emoji")
	require.Equal(t, ":emoji", sb.Text())

	sb.SetPrompt("")
	sb.ResetTemporaryMessage()
	require.Contains(t, sb.Text(), "[No Name]")
}

func TestMessageExpires(t *testing.T) {
	sb := New(Config{MessageTimeout: time.Millisecond})
	sb.SetTemporaryMessage("gone soon")
	time.Sleep(5 * time.Millisecond)
	require.Contains(t, sb.Text(), "[No Name]")
}

func TestActiveSuggestionBounds(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetSuggestions([]string{"#a", "#b", "#c"})
	sb.SetActiveSuggestion(2)
	sb.SetSuggestions([]string{"#a"})
	require.Equal(t, 0, sb.activeTag)
	sb.SetActiveSuggestion(7)
	require.Equal(t, -1, sb.activeTag)
}

func TestDrawStylesFoldAndActiveTag(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	defer sim.Fini()
	sim.SetSize(120, 2)

	sb := New(DefaultConfig())
	sb.SetStats(post.Analyze("abcdef", 5))
	sb.SetSuggestions([]string{"#abcdef"})
	sb.SetActiveSuggestion(0)
	th := theme.PostfmtDark
	sb.Draw(sim, 120, 2, th)

	text := sb.Text()
	fold := strings.Index(text, "'See more'")
	require.Positive(t, fold)
	_, _, style, _ := sim.GetContent(fold, 1)
	require.Equal(t, th.GetStyle(theme.StyleStatusBarFold), style)

	tag := strings.Index(text, "#abcdef")
	require.Positive(t, tag)
	_, _, style, _ = sim.GetContent(tag, 1)
	require.Equal(t, th.GetStyle(theme.StyleSuggestionActive), style)
}
