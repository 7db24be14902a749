package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")
	cfg, used, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "debug"
disabled_tags = ["history"]

[editor]
tab_width = 2
history_limit = 0

[post]
fold_limit = 140
default_hashtags = "#golang"

[theme]
name = "Postfmt Light"
dark = false

[plugins.autosave]
enabled = true
interval = "30s"
`)
	cfg, _, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logger.LogLevel)
	require.Equal(t, []string{"history"}, cfg.Logger.DisabledTags)
	require.Equal(t, 2, cfg.Editor.TabWidth)
	require.Equal(t, DefaultScrollOff, cfg.Editor.ScrollOff)
	require.Zero(t, cfg.Editor.HistoryLimit)
	require.Equal(t, 140, cfg.Post.FoldLimit)
	require.Equal(t, DefaultMaxSuggestions, cfg.Post.MaxSuggestions)
	require.Equal(t, "#golang", cfg.Post.DefaultHashtags)
	require.False(t, cfg.Theme.Dark)
	require.Equal(t, "Postfmt Light", cfg.Theme.Name)

	v, ok := cfg.PluginValue("autosave", "interval")
	require.True(t, ok)
	require.Equal(t, "30s", v)
	_, ok = cfg.PluginValue("wordcount", "enabled")
	require.False(t, ok)
}

func TestLoadInvalidValuesReset(t *testing.T) {
	path := writeConfig(t, `
[editor]
tab_width = -1
scroll_off = -5
history_limit = -2

[post]
fold_limit = 0
max_tags = -3
`)
	cfg, _, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
	require.Equal(t, DefaultScrollOff, cfg.Editor.ScrollOff)
	require.Equal(t, DefaultHistoryLimit, cfg.Editor.HistoryLimit)
	require.Equal(t, DefaultFoldLimit, cfg.Post.FoldLimit)
	require.Equal(t, DefaultMaxTags, cfg.Post.MaxTags)
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "[editor\ntab_width = ")
	cfg, _, err := Load(path, nil)
	require.Error(t, err)
	require.NotNil(t, cfg)
	require.Equal(t, DefaultTabWidth, cfg.Editor.TabWidth)
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
[logger]
log_level = "warn"

[editor]
tab_width = 8

[theme]
dark = true
`)
	var flags Flags
	rest, err := flags.ParseArgs([]string{
		"-loglevel", "debug",
		"-tabwidth", "3",
		"-log-tags", "style, list,,",
		"-dark=false",
		"-history", "0",
		"post.txt",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"post.txt"}, rest)

	cfg, _, err := Load(path, &flags)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Logger.LogLevel)
	require.Equal(t, 3, cfg.Editor.TabWidth)
	require.Equal(t, []string{"style", "list"}, cfg.Logger.EnabledTags)
	require.False(t, cfg.Theme.Dark)
	require.Equal(t, DefaultLightTheme, cfg.Theme.Name)
	require.Zero(t, cfg.Editor.HistoryLimit)
}

func TestUnsetFlagsDoNotOverride(t *testing.T) {
	path := writeConfig(t, "[editor]\nscroll_off = 7\n")
	var flags Flags
	_, err := flags.ParseArgs(nil)
	require.NoError(t, err)

	cfg, _, err := Load(path, &flags)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Editor.ScrollOff)
}

func TestSaveThemePreferenceKeepsOtherTables(t *testing.T) {
	path := writeConfig(t, "[editor]\ntab_width = 6\n\n[theme]\nname = \"Old\"\ndark = true\n")
	require.NoError(t, SaveThemePreference(path, DefaultLightTheme, false))

	cfg, _, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, 6, cfg.Editor.TabWidth)
	require.False(t, cfg.Theme.Dark)
	require.Equal(t, DefaultLightTheme, cfg.Theme.Name)
}

func TestSaveThemePreferenceCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, SaveThemePreference(path, DefaultDarkTheme, true))

	var doc struct {
		Theme ThemeConfig `toml:"theme"`
	}
	_, err := toml.DecodeFile(path, &doc)
	require.NoError(t, err)
	require.True(t, doc.Theme.Dark)
	require.Equal(t, DefaultDarkTheme, doc.Theme.Name)

	require.Error(t, SaveThemePreference("", "x", true))
}

func TestSplitCommaList(t *testing.T) {
	require.Nil(t, splitCommaList(""))
	require.Equal(t, []string{"a", "b"}, splitCommaList(" a ,, b "))
}
