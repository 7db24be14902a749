// Package render composes one screen frame: the post, the status bar and
// the terminal cursor.
package render

import (
	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/statusbar"
	"github.com/bethropolis/postfmt/internal/theme"
	"github.com/bethropolis/postfmt/internal/tui"
)

// Frame clears the screen in the theme's background and redraws everything.
func Frame(tuiManager *tui.TUI, view tui.View, statusBar *statusbar.StatusBar, activeTheme *theme.Theme, statusBarHeight int) {
	if activeTheme == nil {
		activeTheme = theme.PostfmtDark
	}
	width, height := tuiManager.Size()
	logger.DebugTagf("draw", "Frame: screen %dx%d, status bar height %d", width, height, statusBarHeight)

	tuiManager.SetStyle(activeTheme.GetStyle(theme.StyleDefault))
	tuiManager.Clear()
	tui.DrawBuffer(tuiManager, view, activeTheme, statusBarHeight)
	statusBar.Draw(tuiManager.GetScreen(), width, height, activeTheme)
	tui.DrawCursor(tuiManager, view, statusBarHeight)
	tuiManager.Show()
}
