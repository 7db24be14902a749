// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/postfmt/internal/buffer"
	"github.com/bethropolis/postfmt/internal/core/cursor"
	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/theme"
	"github.com/bethropolis/postfmt/internal/types"
	"github.com/rivo/uniseg"
)

// View is what the renderer reads from the editor.
type View interface {
	GetBuffer() buffer.Buffer
	GetCursor() types.Position
	GetViewport() (int, int)
	GetSelection() (types.Position, types.Position, bool)
	GetSearchHighlights() []types.HighlightRegion
	GetHighlightsForLine(lineNum int) []types.StyledRange
	TabWidth() int
}

// DrawBuffer draws the visible part of the post into the rows above the
// status bar. Style precedence: selection over search match over token.
func DrawBuffer(t *TUI, view View, activeTheme *theme.Theme, statusBarHeight int) {
	if activeTheme == nil {
		logger.Warnf("DrawBuffer called with nil theme, using built-in dark.")
		activeTheme = theme.PostfmtDark
	}
	defaultStyle := activeTheme.GetStyle(theme.StyleDefault)
	selectionStyle := activeTheme.GetStyle(theme.StyleSelection)
	searchStyle := activeTheme.GetStyle(theme.StyleSearchHighlight)

	width, height := t.Size()
	viewHeight := height - statusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	viewY, viewX := view.GetViewport()
	selStart, selEnd, selectionActive := view.GetSelection()
	selection := types.Span{Start: selStart, End: selEnd}
	tabWidth := view.TabWidth()
	if tabWidth <= 0 {
		tabWidth = 1
	}

	visibleSearch := make(map[int][]types.Span)
	for _, h := range view.GetSearchHighlights() {
		if h.Type != types.HighlightSearch {
			continue
		}
		for lineIdx := h.Start.Line; lineIdx <= h.End.Line; lineIdx++ {
			if lineIdx >= viewY && lineIdx < viewY+viewHeight {
				visibleSearch[lineIdx] = append(visibleSearch[lineIdx], types.Span{Start: h.Start, End: h.End})
			}
		}
	}

	lines := view.GetBuffer().Lines()
	for screenY := 0; screenY < viewHeight; screenY++ {
		for x := 0; x < width; x++ {
			t.screen.SetContent(x, screenY, ' ', nil, defaultStyle)
		}

		lineIdx := screenY + viewY
		if lineIdx < 0 || lineIdx >= len(lines) {
			continue
		}

		tokens := view.GetHighlightsForLine(lineIdx)
		searches := visibleSearch[lineIdx]

		visualX, runeIdx := 0, 0
		state := -1
		rest := string(lines[lineIdx])
		for len(rest) > 0 && visualX < viewX+width {
			var cluster string
			var clusterWidth int
			cluster, rest, clusterWidth, state = uniseg.FirstGraphemeClusterInString(rest, state)
			runes := []rune(cluster)
			if cluster == "\t" {
				clusterWidth = (visualX/tabWidth+1)*tabWidth - visualX
			}

			pos := types.Position{Line: lineIdx, Col: runeIdx}
			style := defaultStyle
			for _, tok := range tokens {
				if runeIdx >= tok.StartCol && runeIdx < tok.EndCol {
					style = activeTheme.GetStyle(tok.StyleName)
					break
				}
			}
			for _, s := range searches {
				if s.Contains(pos) {
					style = searchStyle
					break
				}
			}
			if selectionActive && selection.Contains(pos) {
				style = selectionStyle
			}

			screenX := visualX - viewX
			if screenX >= 0 && screenX < width {
				if cluster == "\t" {
					for i := 0; i < clusterWidth && screenX+i < width; i++ {
						t.screen.SetContent(screenX+i, screenY, ' ', nil, style)
					}
				} else {
					t.screen.SetContent(screenX, screenY, runes[0], runes[1:], style)
					for cw := 1; cw < clusterWidth && screenX+cw < width; cw++ {
						t.screen.SetContent(screenX+cw, screenY, ' ', nil, style)
					}
				}
			}

			visualX += clusterWidth
			runeIdx += len(runes)
		}
	}
}

// DrawCursor positions the terminal cursor, hiding it when it is scrolled
// out of view.
func DrawCursor(t *TUI, view View, statusBarHeight int) {
	pos := view.GetCursor()
	viewY, viewX := view.GetViewport()
	width, height := t.Size()

	line, err := view.GetBuffer().Line(pos.Line)
	if err != nil {
		logger.Debugf("DrawCursor: Error getting line %d: %v", pos.Line, err)
		t.screen.HideCursor()
		return
	}
	screenX := cursor.VisualCol(string(line), pos.Col, view.TabWidth()) - viewX
	screenY := pos.Line - viewY

	if screenX < 0 || screenX >= width || screenY < 0 || screenY >= height-statusBarHeight {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, screenY)
}
