// Package autosave periodically writes a modified post to disk. A post
// without a file name is saved as a draft under the drafts directory.
package autosave

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bethropolis/postfmt/internal/config"
	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/plugin"
	"github.com/google/uuid"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

const (
	defaultEnabled  = false
	defaultInterval = 1 * time.Minute
)

// AutoSave plugin automatically saves modified posts.
type AutoSave struct {
	api plugin.EditorAPI

	mutex     sync.RWMutex // Protects access to config fields below
	enabled   bool
	interval  time.Duration
	draftsDir string

	draftPath string // chosen on the first save of an unnamed post

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates a new instance of the AutoSave plugin.
func New() plugin.Plugin {
	return &AutoSave{
		enabled:  defaultEnabled,
		interval: defaultInterval,
	}
}

// Name returns the unique name of the plugin.
func (p *AutoSave) Name() string {
	return "autosave"
}

// Initialize reads configuration and starts the auto-save loop if enabled.
func (p *AutoSave) Initialize(api plugin.EditorAPI) error {
	p.api = api
	pluginName := p.Name()

	p.mutex.Lock()
	if enabledVal, ok := api.GetPluginConfig(pluginName, "enabled"); ok {
		if boolVal, isBool := enabledVal.(bool); isBool {
			p.enabled = boolVal
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", pluginName, enabledVal, p.enabled)
		}
	}

	if intervalVal, ok := api.GetPluginConfig(pluginName, "interval"); ok {
		if interval, err := parseInterval(intervalVal); err != nil {
			logger.Warnf("%s: %v. Using default (%v)", pluginName, err, p.interval)
		} else {
			p.interval = interval
		}
	}

	p.draftsDir = config.DraftsDir()
	if dirVal, ok := api.GetPluginConfig(pluginName, "drafts_dir"); ok {
		if dir, isStr := dirVal.(string); isStr && dir != "" {
			p.draftsDir = dir
		}
	}

	isEnabled, interval := p.enabled, p.interval
	p.mutex.Unlock()

	logger.Infof("%s initialized. Enabled: %v, Interval: %v", pluginName, isEnabled, interval)

	if err := api.RegisterCommand("autosave", p.executeToggle); err != nil {
		return fmt.Errorf("failed to register 'autosave' command: %w", err)
	}
	if isEnabled {
		p.start(interval)
	}
	return nil
}

// parseInterval accepts a duration string ("30s") or whole seconds.
func parseInterval(v interface{}) (time.Duration, error) {
	var d time.Duration
	switch val := v.(type) {
	case string:
		parsed, err := time.ParseDuration(val)
		if err != nil {
			return 0, fmt.Errorf("invalid 'interval' config ('%s'): %w", val, err)
		}
		d = parsed
	case int64:
		d = time.Duration(val) * time.Second
	case int:
		d = time.Duration(val) * time.Second
	default:
		return 0, fmt.Errorf("invalid type for 'interval' config (%T)", v)
	}
	if d <= 0 {
		return 0, fmt.Errorf("'interval' config must be positive (%v)", d)
	}
	return d, nil
}

func (p *AutoSave) start(interval time.Duration) {
	p.stopChan = make(chan struct{})
	p.wg.Add(1)
	go p.saverLoop(p.stopChan, interval)
	logger.Debugf("%s: Saver goroutine started.", p.Name())
}

func (p *AutoSave) stop() {
	if p.stopChan == nil {
		return
	}
	close(p.stopChan)
	p.wg.Wait()
	p.stopChan = nil
	logger.Debugf("%s: Saver goroutine stopped.", p.Name())
}

// executeToggle handles ":autosave [on|off]". With no argument it reports
// the current state.
func (p *AutoSave) executeToggle(args []string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if len(args) == 0 {
		state := "off"
		if p.enabled {
			state = "on"
		}
		p.api.SetStatusMessage("Autosave is %s (every %v)", state, p.interval)
		return nil
	}

	switch args[0] {
	case "on":
		if !p.enabled {
			p.enabled = true
			p.start(p.interval)
		}
	case "off":
		if p.enabled {
			p.enabled = false
			p.stop()
		}
	default:
		return fmt.Errorf("usage: autosave [on|off]")
	}
	p.api.SetStatusMessage("Autosave %s", args[0])
	return nil
}

// Shutdown signals the saver goroutine to stop and waits for it.
func (p *AutoSave) Shutdown() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.stop()
	return nil
}

// saverLoop is the main loop for the auto-save functionality.
func (p *AutoSave) saverLoop(stop <-chan struct{}, interval time.Duration) {
	defer p.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.saveIfModified(); err != nil {
				logger.Errorf("%s: Auto-save failed: %v", p.Name(), err)
			}
		case <-stop:
			return
		}
	}
}

// saveIfModified writes the post when it has unsaved changes. It returns
// the error of the save, if any.
func (p *AutoSave) saveIfModified() error {
	if !p.api.IsBufferModified() {
		logger.DebugTagf("autosave", "Post not modified, skipping auto-save.")
		return nil
	}

	filePath := p.api.GetBufferFilePath()
	if filePath != "" {
		logger.Infof("%s: Auto-saving post: %s", p.Name(), filePath)
		return p.api.SaveBuffer()
	}

	if p.draftPath == "" {
		if err := os.MkdirAll(p.draftsDir, 0o755); err != nil {
			return fmt.Errorf("create drafts directory: %w", err)
		}
		p.draftPath = filepath.Join(p.draftsDir, "draft-"+uuid.NewString()+".md")
	}
	logger.Infof("%s: Saving unnamed post as draft: %s", p.Name(), p.draftPath)
	if err := p.api.SaveBuffer(p.draftPath); err != nil {
		return err
	}
	p.api.SetStatusMessage("Draft saved to %s", p.draftPath)
	return nil
}
