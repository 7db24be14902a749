package app

import (
	"github.com/bethropolis/postfmt/internal/commands"
)

// registerAppCommands registers the built-in : commands.
func registerAppCommands(app *App) {
	commands.RegisterAppCommands(app.editorAPI, commands.PostDeps{
		Templates:       app.templates,
		DefaultHashtags: app.cfg.Post.DefaultHashtags,
		MaxTags:         app.cfg.Post.MaxTags,
	})
}
