// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/postfmt/internal/post"
	"github.com/bethropolis/postfmt/internal/theme"
	"github.com/bethropolis/postfmt/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{MessageTimeout: 4 * time.Second}
}

// StatusBar is the bottom line: file, counters, fold indicator, hashtag
// suggestions and transient messages.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	filePath   string
	cursorPos  types.Position
	isModified bool
	editorMode string
	stats      post.Stats

	suggestions []string
	activeTag   int // index into suggestions, -1 when not picking

	tempMessage     string
	tempMessageTime time.Time
	pinnedPrompt    string // command or find input, shown until cleared
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, activeTag: -1}
}

// SetFileInfo updates the file path shown in the status bar.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetEditorMode updates the displayed editor mode.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetStats updates the post counters.
func (sb *StatusBar) SetStats(stats post.Stats) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.stats = stats
}

// SetSuggestions replaces the hashtag suggestion strip. The active pick is
// kept when still in range.
func (sb *StatusBar) SetSuggestions(tags []string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.suggestions = append([]string(nil), tags...)
	if sb.activeTag >= len(sb.suggestions) {
		sb.activeTag = len(sb.suggestions) - 1
	}
}

// Suggestions returns a copy of the suggestion strip.
func (sb *StatusBar) Suggestions() []string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return append([]string(nil), sb.suggestions...)
}

// SetActiveSuggestion marks suggestion i as picked; -1 clears the pick.
func (sb *StatusBar) SetActiveSuggestion(i int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if i < -1 || i >= len(sb.suggestions) {
		i = -1
	}
	sb.activeTag = i
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// SetPrompt pins an input line (":cmd" or "/term") over everything else.
// An empty prompt unpins it.
func (sb *StatusBar) SetPrompt(prompt string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.pinnedPrompt = prompt
}

// segment is a run of text drawn in one style.
type segment struct {
	text  string
	style string
}

func (sb *StatusBar) infoSegments() []segment {
	name := "[No Name]"
	if sb.filePath != "" {
		name = filepath.Base(sb.filePath)
	}
	segs := []segment{{" " + name, theme.StyleStatusBar}}
	if sb.isModified {
		segs = append(segs, segment{" [+]", theme.StyleStatusBarModified})
	}

	segs = append(segs, segment{fmt.Sprintf(" | %d chars | %d #", sb.stats.Length, sb.stats.Hashtags), theme.StyleStatusBar})
	foldStyle := theme.StyleStatusBar
	if sb.stats.OverFold {
		foldStyle = theme.StyleStatusBarFold
	}
	segs = append(segs,
		segment{" | ", theme.StyleStatusBar},
		segment{sb.stats.FoldLabel(), foldStyle},
		segment{fmt.Sprintf(" | Ln %d, Col %d", sb.cursorPos.Line+1, sb.cursorPos.Col+1), theme.StyleStatusBar},
	)
	if sb.editorMode != "" {
		segs = append(segs, segment{" -- " + sb.editorMode, theme.StyleStatusBar})
	}

	if len(sb.suggestions) > 0 {
		segs = append(segs, segment{" |", theme.StyleStatusBar})
		for i, tag := range sb.suggestions {
			segs = append(segs, segment{" ", theme.StyleStatusBar})
			style := theme.StyleSuggestion
			if i == sb.activeTag {
				style = theme.StyleSuggestionActive
			}
			segs = append(segs, segment{tag, style})
		}
	}
	return segs
}

// Text returns the status line as plain text, for tests and logging.
func (sb *StatusBar) Text() string {
	sb.mu.Lock()
	segs := sb.currentSegments()
	sb.mu.Unlock()

	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.text)
	}
	return b.String()
}

// currentSegments picks prompt, message or info. Caller holds mu.
func (sb *StatusBar) currentSegments() []segment {
	if sb.pinnedPrompt != "" {
		return []segment{{sb.pinnedPrompt, theme.StyleStatusBarFind}}
	}
	active := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	if active && sb.tempMessage != "" {
		return []segment{{sb.tempMessage, theme.StyleStatusBarMessage}}
	}
	return sb.infoSegments()
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int, activeTheme *theme.Theme) {
	if height <= 0 || width <= 0 {
		return
	}
	if activeTheme == nil {
		activeTheme = theme.PostfmtDark
	}
	y := height - 1

	sb.mu.Lock()
	segs := sb.currentSegments()
	sb.mu.Unlock()

	base := activeTheme.GetStyle(theme.StyleStatusBar)
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, base)
	}

	x := 0
	for _, seg := range segs {
		style := activeTheme.GetStyle(seg.style)
		gr := uniseg.NewGraphemes(seg.text)
		for gr.Next() {
			w := gr.Width()
			if x+w > width {
				return
			}
			runes := gr.Runes()
			screen.SetContent(x, y, runes[0], runes[1:], style)
			x += w
		}
	}
}
