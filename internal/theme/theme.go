// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names the renderer and status bar ask for. Token names match the
// highlighter's style names.
const (
	StyleDefault           = "Default"
	StyleSelection         = "Selection"
	StyleSearchHighlight   = "SearchHighlight"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBarModified"
	StyleStatusBarMessage  = "StatusBarMessage"
	StyleStatusBarFind     = "StatusBarFind"
	StyleStatusBarFold     = "StatusBarFold"
	StyleSuggestion        = "Suggestion"
	StyleSuggestionActive  = "Suggestion.active"
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style, falling back to the part before the
// first dot and then to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// palette is the handful of colours a built-in theme is made from.
type palette struct {
	bar, fg, accent, link, tag, mention, styled, warn tcell.Color
}

func newBuiltin(name string, isDark bool, p palette) *Theme {
	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(p.fg)
	bar := tcell.StyleDefault.Background(p.bar).Foreground(p.fg)
	return &Theme{
		Name:   name,
		IsDark: isDark,
		Styles: map[string]tcell.Style{
			StyleDefault:           base,
			StyleSelection:         base.Reverse(true),
			StyleSearchHighlight:   tcell.StyleDefault.Background(tcell.ColorOrange).Foreground(tcell.ColorBlack),
			StyleStatusBar:         bar,
			StyleStatusBarModified: bar.Foreground(p.warn),
			StyleStatusBarMessage:  bar.Bold(true),
			StyleStatusBarFind:     bar.Foreground(p.accent).Bold(true),
			StyleStatusBarFold:     bar.Foreground(p.warn).Bold(true),
			StyleSuggestion:        bar.Foreground(p.tag),
			StyleSuggestionActive:  bar.Foreground(p.tag).Reverse(true),

			"URL":     base.Foreground(p.link).Underline(true),
			"Hashtag": base.Foreground(p.tag).Bold(true),
			"Mention": base.Foreground(p.mention),
			"Styled":  base.Foreground(p.styled),
		},
	}
}

// PostfmtDark and PostfmtLight are always available.
var (
	PostfmtDark = newBuiltin("Postfmt Dark", true, palette{
		bar:     tcell.NewHexColor(0x2a2f38),
		fg:      tcell.NewHexColor(0xc5cdd9),
		accent:  tcell.NewHexColor(0x98c379),
		link:    tcell.NewHexColor(0x61afef),
		tag:     tcell.NewHexColor(0x56b6c2),
		mention: tcell.NewHexColor(0xc678dd),
		styled:  tcell.NewHexColor(0xe5c07b),
		warn:    tcell.NewHexColor(0xd19a66),
	})
	PostfmtLight = newBuiltin("Postfmt Light", false, palette{
		bar:     tcell.NewHexColor(0xdfe3e8),
		fg:      tcell.NewHexColor(0x2b2f36),
		accent:  tcell.NewHexColor(0x3f7f2a),
		link:    tcell.NewHexColor(0x0a66c2), // feed link blue
		tag:     tcell.NewHexColor(0x00707a),
		mention: tcell.NewHexColor(0x8a3fb0),
		styled:  tcell.NewHexColor(0x9a6a00),
		warn:    tcell.NewHexColor(0xb35900),
	})
)
