// internal/theme/manager.go
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/postfmt/internal/logger"
)

// ErrThemeNotFound is returned when no loaded theme has the requested name.
var ErrThemeNotFound = errors.New("theme not found")

// Manager holds loaded themes and manages the active theme.
type Manager struct {
	themes      map[string]*Theme // lowercase name -> theme
	activeTheme *Theme
	themesDir   string
	mutex       sync.RWMutex
}

// NewManager loads the built-in themes and every .toml file in themesDir
// (skipped when empty), then activates initial. An unknown initial name
// falls back to the built-in theme matching dark.
func NewManager(themesDir, initial string, dark bool) *Manager {
	mgr := &Manager{
		themes:    make(map[string]*Theme),
		themesDir: themesDir,
	}
	mgr.add(PostfmtDark)
	mgr.add(PostfmtLight)

	if themesDir != "" {
		if err := mgr.LoadThemesFromDir(); err != nil {
			logger.Errorf("Error loading themes from '%s': %v", themesDir, err)
		}
	}

	if err := mgr.SetTheme(initial); err != nil {
		fallback := PostfmtLight
		if dark {
			fallback = PostfmtDark
		}
		if initial != "" {
			logger.Warnf("Theme '%s' not found, using '%s'", initial, fallback.Name)
		}
		mgr.activeTheme = fallback
	}
	logger.Infof("Initial active theme set to: %s", mgr.activeTheme.Name)
	return mgr
}

func (m *Manager) add(t *Theme) {
	key := strings.ToLower(t.Name)
	if existing, ok := m.themes[key]; ok {
		logger.Warnf("Theme '%s' overrides existing theme '%s'", t.Name, existing.Name)
	}
	m.themes[key] = t
}

// LoadThemesFromDir loads every .toml file in the themes directory. A
// missing directory is not an error.
func (m *Manager) LoadThemesFromDir() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.themesDir == "" {
		return errors.New("theme directory path is not set")
	}
	files, err := os.ReadDir(m.themesDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Infof("Theme directory '%s' does not exist. No custom themes loaded.", m.themesDir)
			return nil
		}
		return fmt.Errorf("failed to read theme directory '%s': %w", m.themesDir, err)
	}

	loadedCount := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			continue
		}
		filePath := filepath.Join(m.themesDir, file.Name())
		theme, err := LoadThemeFromFile(filePath)
		if err != nil {
			logger.Warnf("Failed to load theme from '%s': %v", filePath, err)
			continue
		}
		m.add(theme)
		loadedCount++
	}
	logger.Infof("Loaded %d custom themes.", loadedCount)
	return nil
}

// Current returns the currently active theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.activeTheme
}

// SetTheme activates the theme named name, ignoring case.
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	theme, ok := m.themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrThemeNotFound, name)
	}
	if m.activeTheme != theme {
		m.activeTheme = theme
		logger.Infof("Active theme set to: %s", theme.Name)
	}
	return nil
}

// Toggle switches between the dark and light built-ins and returns the
// newly active theme. A custom theme toggles to the built-in of the
// opposite brightness.
func (m *Manager) Toggle() *Theme {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	next := PostfmtDark
	if m.activeTheme != nil && m.activeTheme.IsDark {
		next = PostfmtLight
	}
	m.activeTheme = m.themes[strings.ToLower(next.Name)]
	logger.Infof("Theme toggled to: %s", m.activeTheme.Name)
	return m.activeTheme
}

// ListThemes returns the names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.themes))
	for _, theme := range m.themes {
		names = append(names, theme.Name)
	}
	sort.Strings(names)
	return names
}

// GetTheme returns a theme by name, ignoring case.
func (m *Manager) GetTheme(name string) (*Theme, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	theme, ok := m.themes[strings.ToLower(name)]
	return theme, ok
}
