// Package highlight runs the token highlighter in the background, a short
// while after the post stops changing.
package highlight

import (
	"context"
	"sync"
	"time"

	"github.com/bethropolis/postfmt/internal/highlighter"
	"github.com/bethropolis/postfmt/internal/logger"
)

// DebounceHighlightDuration is how long the post must be idle before it is
// highlighted again.
const DebounceHighlightDuration = 65 * time.Millisecond

// Store receives finished highlight results.
type Store interface {
	UpdateHighlights(highlighter.HighlightResult)
}

// Manager handles debounced asynchronous highlighting.
type Manager struct {
	store       Store
	highlighter *highlighter.Highlighter
	appRedraw   func()
	delay       time.Duration

	mu          sync.Mutex // Protects everything below
	timer       *time.Timer
	pendingText string
	pendingCtx  context.Context
	cancelFunc  context.CancelFunc
	runCancel   context.CancelFunc // Cancels the running task's context
	isRunning   bool
	rerun       bool // Text changed while a task was running
	closed      bool
}

// NewManager creates a highlighting manager writing into store. redrawFunc
// is called from a background goroutine after each update.
func NewManager(store Store, h *highlighter.Highlighter, redrawFunc func()) *Manager {
	if redrawFunc == nil {
		redrawFunc = func() {}
	}
	return &Manager{
		store:       store,
		highlighter: h,
		appRedraw:   redrawFunc,
		delay:       DebounceHighlightDuration,
	}
}

// Trigger schedules highlighting of text, replacing any pending request.
// It must be handed a copy of the post, never the live buffer.
func (m *Manager) Trigger(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}

	m.pendingText = text
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	if m.runCancel != nil {
		m.runCancel()
	}
	m.pendingCtx, m.cancelFunc = context.WithCancel(context.Background())

	if m.timer != nil {
		m.timer.Reset(m.delay)
		logger.DebugTagf("highlight", "HighlightingManager: Debounce timer reset.")
		return
	}
	logger.DebugTagf("highlight", "HighlightingManager: Starting debounce timer (%v).", m.delay)
	m.timer = time.AfterFunc(m.delay, m.runHighlightUpdate)
}

// HighlightNow highlights text synchronously, skipping the debounce. Used
// for the first paint.
func (m *Manager) HighlightNow(text string) {
	m.store.UpdateHighlights(m.highlighter.HighlightText(text))
}

func (m *Manager) runHighlightUpdate() {
	m.mu.Lock()
	m.timer = nil
	if m.closed || m.pendingCtx == nil {
		m.mu.Unlock()
		return
	}
	if m.isRunning {
		m.rerun = true
		m.mu.Unlock()
		logger.DebugTagf("highlight", "HighlightingManager: Task running, queued a rerun.")
		return
	}
	m.isRunning = true
	text, ctx := m.pendingText, m.pendingCtx
	m.runCancel = m.cancelFunc
	m.pendingCtx, m.cancelFunc = nil, nil
	m.mu.Unlock()

	go func(text string, taskCtx context.Context) {
		result := m.highlighter.HighlightText(text)

		m.mu.Lock()
		m.isRunning = false
		m.runCancel = nil
		rerun := m.rerun && m.pendingCtx != nil
		m.rerun = false
		m.mu.Unlock()

		if taskCtx.Err() != nil {
			logger.DebugTagf("highlight", "HighlightingManager: Result superseded, dropped.")
		} else {
			logger.DebugTagf("highlight", "HighlightingManager: Updated %d line(s).", len(result))
			m.store.UpdateHighlights(result)
			m.appRedraw()
		}
		if rerun {
			m.runHighlightUpdate()
		}
	}(text, ctx)
}

// Shutdown cancels any pending task. Later triggers are ignored.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	if m.cancelFunc != nil {
		logger.DebugTagf("highlight", "HighlightingManager: Shutting down, cancelling pending task.")
		m.cancelFunc()
		m.cancelFunc = nil
	}
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}
