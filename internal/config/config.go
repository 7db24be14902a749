// internal/config/config.go
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/postfmt/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config                     `toml:"logger"`
	Editor  EditorConfig                      `toml:"editor"`
	Post    PostConfig                        `toml:"post"`
	Theme   ThemeConfig                       `toml:"theme"`
	Plugins map[string]map[string]interface{} `toml:"plugins"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int  `toml:"tab_width"`
	ScrollOff       int  `toml:"scroll_off"`
	SystemClipboard bool `toml:"system_clipboard"`
	StatusBarHeight int  `toml:"status_bar_height"`
	// HistoryLimit bounds the undo stack; 0 keeps every snapshot.
	HistoryLimit int `toml:"history_limit"`
}

// PostConfig holds settings for the post being composed.
type PostConfig struct {
	FoldLimit       int    `toml:"fold_limit"`
	MaxSuggestions  int    `toml:"max_suggestions"`
	MaxTags         int    `toml:"max_tags"`
	DefaultHashtags string `toml:"default_hashtags"`
	TemplatesFile   string `toml:"templates_file"`
	ExportDir       string `toml:"export_dir"`
}

// ThemeConfig remembers the last theme the user picked.
type ThemeConfig struct {
	Name string `toml:"name"`
	Dark bool   `toml:"dark"`
}

var (
	loadedConfig *Config
	loadedPath   string
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel:    "info",
			LogFilePath: "",
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
			HistoryLimit:    DefaultHistoryLimit,
		},
		Post: PostConfig{
			FoldLimit:       DefaultFoldLimit,
			MaxSuggestions:  DefaultMaxSuggestions,
			MaxTags:         DefaultMaxTags,
			DefaultHashtags: DefaultHashtags,
		},
		Theme: ThemeConfig{
			Name: DefaultDarkTheme,
			Dark: true,
		},
		Plugins: map[string]map[string]interface{}{},
	}
}

// DefaultConfigPath returns ~/.config/postfmt/config.toml, or "" if the
// user config directory cannot be determined.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config, verbose bool) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		if verbose {
			logger.Debugf("Config file not found: %s", filePath)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 && verbose {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	if verbose {
		logger.Infof("Successfully loaded configuration from: %s", filePath)
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 { // Allow 0
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
	if c.Editor.HistoryLimit < 0 {
		c.Editor.HistoryLimit = defaults.Editor.HistoryLimit
	}

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}

	if c.Post.FoldLimit <= 0 {
		c.Post.FoldLimit = defaults.Post.FoldLimit
	}
	if c.Post.MaxSuggestions <= 0 {
		c.Post.MaxSuggestions = defaults.Post.MaxSuggestions
	}
	if c.Post.MaxTags <= 0 {
		c.Post.MaxTags = defaults.Post.MaxTags
	}

	if c.Theme.Name == "" {
		if c.Theme.Dark {
			c.Theme.Name = DefaultDarkTheme
		} else {
			c.Theme.Name = DefaultLightTheme
		}
	}
	if c.Plugins == nil {
		c.Plugins = map[string]map[string]interface{}{}
	}
}

// Load builds a configuration from defaults, the file at configFilePath
// (the default location when empty) and any flags that were set, in that
// order of precedence. It returns the path it read from alongside the
// config so preferences can be written back to the same file.
func Load(configFilePath string, flags *Flags) (*Config, string, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}

	var err error
	if effectivePath != "" {
		// The logger isn't configured yet, so stay quiet here.
		err = loadFromFile(effectivePath, cfg, false)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg, false)
	}
	cfg.validate()
	return cfg, effectivePath, err
}

// LoadConfig loads the configuration once and stores it for Get.
// It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadedPath, loadErr = Load(configFilePath, flags)
	})
	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}

// Path returns the file LoadConfig read from (it may not exist yet).
func Path() string {
	return loadedPath
}

// SaveThemePreference records the theme choice in the [theme] table of the
// config file at path, keeping every other table the file already has.
func SaveThemePreference(path, name string, dark bool) error {
	if path == "" {
		return fmt.Errorf("save theme preference: no config file path")
	}

	doc := map[string]interface{}{}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &doc); err != nil {
			return fmt.Errorf("read config file '%s': %w", path, err)
		}
	}
	doc["theme"] = map[string]interface{}{
		"name": name,
		"dark": dark,
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config file '%s': %w", path, err)
	}
	logger.DebugTagf("config", "Saved theme preference %q (dark=%v) to %s", name, dark, path)
	return nil
}

// PluginValue returns plugins.<plugin>.<key> from the loaded config.
func (c *Config) PluginValue(plugin, key string) (interface{}, bool) {
	section, ok := c.Plugins[plugin]
	if !ok {
		return nil, false
	}
	v, ok := section[key]
	return v, ok
}

// DraftsDir returns the directory autosave writes unnamed drafts to.
func DraftsDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return DraftsDirName
	}
	return filepath.Join(configDir, ConfigDirName, DraftsDirName)
}
