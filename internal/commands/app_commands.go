package commands

import (
	"fmt"
	"strings"

	"github.com/bethropolis/postfmt/internal/core/find"
	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/plugin"
)

func register(api plugin.EditorAPI, name string, fn plugin.CommandFunc) {
	if err := api.RegisterCommand(name, fn); err != nil {
		logger.Warnf("Failed to register ':%s' command: %v", name, err)
	}
}

// RegisterAppCommands registers the built-in commands: theme, file,
// history and post commands.
func RegisterAppCommands(api plugin.EditorAPI, deps PostDeps) {
	RegisterThemeCommands(api, api)
	RegisterFileCommands(api)
	RegisterPostCommands(api, deps)
}

// RegisterThemeCommands registers :theme, :themes and :toggletheme.
func RegisterThemeCommands(api plugin.EditorAPI, themeAPI ThemeAPI) {
	register(api, "theme", func(args []string) error {
		if len(args) == 0 {
			themeAPI.SetStatusMessage("Current theme: %s", themeAPI.GetTheme().Name)
			return nil
		}
		themeName := strings.Join(args, " ")
		if err := themeAPI.SetTheme(themeName); err != nil {
			return fmt.Errorf("%w. Available: %s", err, strings.Join(themeAPI.ListThemes(), ", "))
		}
		themeAPI.SetStatusMessage("Theme set to: %s", themeAPI.GetTheme().Name)
		return nil
	})

	register(api, "themes", func(args []string) error {
		themeAPI.SetStatusMessage("Available themes: %s", strings.Join(themeAPI.ListThemes(), ", "))
		return nil
	})

	register(api, "toggletheme", func(args []string) error {
		t := themeAPI.ToggleTheme()
		themeAPI.SetStatusMessage("Theme set to: %s", t.Name)
		return nil
	})
}

// RegisterFileCommands registers :w, :q, :q!, :wq, :undo, :redo and the
// :s/old/new/[g] substitution.
func RegisterFileCommands(api plugin.EditorAPI) {
	save := func(args []string) error {
		if err := api.SaveBuffer(args...); err != nil {
			return err
		}
		path := api.GetBufferFilePath()
		api.SetStatusMessage("Written %s", path)
		return nil
	}

	register(api, "w", save)
	register(api, "q", func(args []string) error {
		api.RequestQuit(false)
		return nil
	})
	register(api, "q!", func(args []string) error {
		api.RequestQuit(true)
		return nil
	})
	register(api, "wq", func(args []string) error {
		if err := save(args); err != nil {
			return err
		}
		api.RequestQuit(true)
		return nil
	})

	register(api, "undo", func(args []string) error {
		if !api.Undo() {
			api.SetStatusMessage("Nothing to undo")
		}
		return nil
	})
	register(api, "redo", func(args []string) error {
		if !api.Redo() {
			api.SetStatusMessage("Nothing to redo")
		}
		return nil
	})

	register(api, "s", func(args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("usage: s/old/new/[g]")
		}
		pattern, replacement, global, err := find.ParseSubstituteCommand(strings.Join(args, " "))
		if err != nil {
			return err
		}
		n, err := api.Replace(pattern, replacement, global)
		if err != nil {
			return err
		}
		if n == 0 {
			api.SetStatusMessage("Pattern not found: %s", pattern)
			return nil
		}
		api.SetStatusMessage("Replaced %d occurrence(s)", n)
		return nil
	})
}
