// Package clipboard copies post text to the system clipboard, falling back
// to an in-process register when no system clipboard is available.
package clipboard

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/postfmt/internal/logger"
)

// System is the subset of github.com/atotto/clipboard the manager uses.
type System interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type atottoClipboard struct{}

func (atottoClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (atottoClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Manager holds the internal register and, optionally, the system clipboard.
type Manager struct {
	mu        sync.Mutex
	system    System
	useSystem bool
	register  string
}

// NewManager creates a clipboard manager. With useSystem set, copies also
// go to the OS clipboard when one is reachable.
func NewManager(useSystem bool) *Manager {
	return newManager(atottoClipboard{}, useSystem && !clipboard.Unsupported)
}

func newManager(system System, useSystem bool) *Manager {
	return &Manager{system: system, useSystem: useSystem}
}

// Copy stores text in the register and, if enabled, the system clipboard.
// The register always receives the text; a system failure is returned but
// leaves the copy usable inside the editor.
func (m *Manager) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.register = text
	if !m.useSystem {
		logger.DebugTagf("clipboard", "Copied %d bytes to internal register", len(text))
		return nil
	}
	if err := m.system.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard write: %w", err)
	}
	logger.DebugTagf("clipboard", "Copied %d bytes to system clipboard", len(text))
	return nil
}

// Paste returns the system clipboard content when enabled and readable,
// otherwise the internal register.
func (m *Manager) Paste() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.useSystem {
		text, err := m.system.ReadAll()
		if err == nil {
			return text
		}
		logger.Warnf("Clipboard: system read failed, using internal register: %v", err)
	}
	return m.register
}

// UsesSystem reports whether the system clipboard is in use.
func (m *Manager) UsesSystem() bool {
	return m.useSystem
}
