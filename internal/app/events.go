package app

import (
	"slices"

	"github.com/bethropolis/postfmt/internal/config"
	"github.com/bethropolis/postfmt/internal/event"
	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/post"
	"github.com/bethropolis/postfmt/internal/theme"
)

func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMovedForStatus)
	a.eventManager.Subscribe(event.TypeBufferModified, a.handleBufferModified)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSavedForStatus)
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
	a.eventManager.Subscribe(event.TypeSuggestionsUpdated, a.handleSuggestionsUpdated)
	a.eventManager.Subscribe(event.TypeThemeChanged, a.handleThemeChanged)
}

// handleCursorMovedForStatus updates the status bar based on cursor position
func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		a.statusBar.SetCursorInfo(data.NewPosition)
	}
	return false
}

// handleBufferModified refreshes counters, suggestions and highlighting.
func (a *App) handleBufferModified(e event.Event) bool {
	if data, ok := e.Data.(event.BufferModifiedData); ok {
		logger.DebugTagf("app", "Post modified (%s)", data.Cause)
	}
	text := a.editor.Text()
	a.highlightMgr.Trigger(text)
	a.refreshPost(text)
	a.updateStatusBarContent()
	return false
}

// handleBufferSavedForStatus updates the status bar when the post is saved
func (a *App) handleBufferSavedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.BufferSavedData); ok {
		a.statusBar.SetFileInfo(data.FilePath, false)
	}
	a.requestRedraw()
	return false
}

// handleBufferLoaded re-highlights and recounts a freshly loaded post.
func (a *App) handleBufferLoaded(e event.Event) bool {
	text := a.editor.Text()
	a.highlightMgr.HighlightNow(text)
	a.refreshPost(text)
	a.updateStatusBarContent()
	a.requestRedraw()
	return false
}

func (a *App) handleSuggestionsUpdated(e event.Event) bool {
	if data, ok := e.Data.(event.SuggestionsUpdatedData); ok {
		a.statusBar.SetSuggestions(data.Tags)
	}
	return false
}

// handleThemeChanged remembers the choice in the config file.
func (a *App) handleThemeChanged(e event.Event) bool {
	data, ok := e.Data.(event.ThemeChangedData)
	if !ok {
		return false
	}
	a.cfg.Theme.Name, a.cfg.Theme.Dark = data.Name, data.IsDark
	if a.configPath != "" {
		if err := config.SaveThemePreference(a.configPath, data.Name, data.IsDark); err != nil {
			logger.Warnf("App: theme preference not saved: %v", err)
		}
	}
	a.requestRedraw()
	return false
}

// refreshPost recomputes the counters and, when they changed, the hashtag
// suggestions for text.
func (a *App) refreshPost(text string) {
	a.statusBar.SetStats(post.Analyze(text, a.cfg.Post.FoldLimit))

	tags := a.suggester.Suggest(text)
	if limit := a.cfg.Post.MaxSuggestions; limit > 0 && len(tags) > limit {
		tags = tags[:limit]
	}
	if slices.Equal(tags, a.statusBar.Suggestions()) {
		return
	}
	a.eventManager.Dispatch(event.TypeSuggestionsUpdated, event.SuggestionsUpdatedData{Tags: tags})
}

// themeChanged announces a new active theme.
func (a *App) themeChanged(t *theme.Theme) {
	a.tuiManager.SetStyle(t.GetStyle(theme.StyleDefault))
	a.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: t.Name, IsDark: t.IsDark})
}
