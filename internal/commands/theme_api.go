package commands

import "github.com/bethropolis/postfmt/internal/theme"

// ThemeAPI is the part of the editor API the theme commands use.
type ThemeAPI interface {
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string
	ToggleTheme() *theme.Theme
	SetStatusMessage(format string, args ...interface{})
}
