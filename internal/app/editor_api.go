// internal/app/editor_api.go
package app

import (
	"path/filepath"

	"github.com/bethropolis/postfmt/internal/commands"
	"github.com/bethropolis/postfmt/internal/config"
	"github.com/bethropolis/postfmt/internal/event"
	"github.com/bethropolis/postfmt/internal/list"
	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/plugin"
	"github.com/bethropolis/postfmt/internal/post"
	"github.com/bethropolis/postfmt/internal/theme"
	"github.com/bethropolis/postfmt/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Ensure appEditorAPI implements the plugin.EditorAPI interface.
var _ plugin.EditorAPI = (*appEditorAPI)(nil)

var _ commands.ThemeAPI = (*appEditorAPI)(nil)

// appEditorAPI provides the concrete implementation of the EditorAPI interface.
type appEditorAPI struct {
	app *App // Reference back to the main application
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Post Access ---

func (api *appEditorAPI) GetText() string {
	return api.app.editor.Text()
}

func (api *appEditorAPI) GetBufferFilePath() string {
	return api.app.editor.GetBuffer().FilePath()
}

func (api *appEditorAPI) IsBufferModified() bool {
	return api.app.editor.GetBuffer().IsModified()
}

func (api *appEditorAPI) FoldLimit() int {
	return api.app.cfg.Post.FoldLimit
}

// --- Post Modification ---

func (api *appEditorAPI) InsertText(text string, cause event.Cause) error {
	defer api.app.requestRedraw()
	return api.app.editor.InsertText(text, cause)
}

func (api *appEditorAPI) AppendBlock(block string, cause event.Cause) {
	api.app.editor.AppendBlock(block, cause)
	api.app.requestRedraw()
}

func (api *appEditorAPI) ApplyStyle(name string) error {
	defer api.app.requestRedraw()
	return api.app.editor.ApplyStyle(name)
}

func (api *appEditorAPI) ToggleList(kind list.Kind) error {
	defer api.app.requestRedraw()
	return api.app.editor.ToggleList(kind)
}

// Replace implements the Replace method for substitution command
func (api *appEditorAPI) Replace(pattern, replacement string, global bool) (int, error) {
	defer api.app.requestRedraw()
	return api.app.editor.Replace(pattern, replacement, global)
}

func (api *appEditorAPI) ResetPost() {
	api.app.editor.Reset()
	api.app.suggester.Reset()
	api.app.requestRedraw()
}

func (api *appEditorAPI) Undo() bool {
	defer api.app.requestRedraw()
	return api.app.editor.Undo()
}

func (api *appEditorAPI) Redo() bool {
	defer api.app.requestRedraw()
	return api.app.editor.Redo()
}

// --- Cursor ---

func (api *appEditorAPI) GetCursor() types.Position {
	return api.app.editor.GetCursor()
}

func (api *appEditorAPI) SetCursor(pos types.Position) {
	api.app.editor.SetCursor(pos)
	api.app.requestRedraw()
}

// --- Event Bus Interaction ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Command Registration ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	return api.app.modeHandler.RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.statusBar.SetTemporaryMessage(format, args...)
	api.app.requestRedraw()
	api.app.scheduleMessageExpiry()
}

// --- Theme Access ---

func (api *appEditorAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.themeManager.Current().GetStyle(styleName)
}

// SetTheme sets the active theme by name
func (api *appEditorAPI) SetTheme(name string) error {
	if err := api.app.themeManager.SetTheme(name); err != nil {
		return err
	}
	api.app.themeChanged(api.app.themeManager.Current())
	logger.Debugf("Theme changed to '%s', redraw requested", name)
	return nil
}

func (api *appEditorAPI) GetTheme() *theme.Theme {
	return api.app.themeManager.Current()
}

func (api *appEditorAPI) ListThemes() []string {
	return api.app.themeManager.ListThemes()
}

// ToggleTheme flips between the dark and light built-ins.
func (api *appEditorAPI) ToggleTheme() *theme.Theme {
	t := api.app.themeManager.Toggle()
	api.app.themeChanged(t)
	return t
}

// --- Files & Clipboard ---

// SaveBuffer saves the current buffer to disk, optionally to a new filename
func (api *appEditorAPI) SaveBuffer(filePath ...string) error {
	return api.app.editor.SaveBuffer(filePath...)
}

// ExportPost writes the post as Markdown. An empty path uses the
// configured export directory.
func (api *appEditorAPI) ExportPost(path string) (string, error) {
	if path == "" {
		path = filepath.Join(api.app.cfg.Post.ExportDir, config.DefaultExportFileName)
	}
	if err := post.ExportMarkdown(path, api.app.editor.Text()); err != nil {
		return "", err
	}
	api.app.eventManager.Dispatch(event.TypePostExported, event.PostExportedData{FilePath: path})
	return path, nil
}

func (api *appEditorAPI) CopyPost() error {
	return api.app.editor.CopyPost()
}

// --- Configuration ---

func (api *appEditorAPI) GetPluginConfig(pluginName, key string) (interface{}, bool) {
	return api.app.cfg.PluginValue(pluginName, key)
}

// RequestQuit signals the application to quit
func (api *appEditorAPI) RequestQuit(force bool) {
	api.app.modeHandler.RequestQuit(force)
}
