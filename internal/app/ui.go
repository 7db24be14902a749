package app

import (
	"time"

	"github.com/bethropolis/postfmt/internal/config"
	"github.com/bethropolis/postfmt/internal/render"
)

// drawEditor redraws all components with the active theme.
func (a *App) drawEditor() {
	a.updateStatusBarContent()
	render.Frame(a.tuiManager, a.editor, a.statusBar, a.themeManager.Current(), a.cfg.Editor.StatusBarHeight)
}

// updateStatusBarContent pushes current editor state to the status bar component.
func (a *App) updateStatusBarContent() {
	buf := a.editor.GetBuffer()
	a.statusBar.SetFileInfo(buf.FilePath(), buf.IsModified())
	a.statusBar.SetCursorInfo(a.editor.GetCursor())
}

// requestRedraw sends a redraw signal non-blockingly. Safe from any goroutine.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}

// scheduleMessageExpiry clears a temporary status message from the screen
// without waiting for the next key press.
func (a *App) scheduleMessageExpiry() {
	a.messageExpiry.Debounce(config.MessageTimeout+50*time.Millisecond, a.requestRedraw)
}
