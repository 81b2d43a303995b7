// Package autosave periodically saves a modified, named document.
package autosave

import (
	"sync"
	"time"

	"github.com/bethropolis/inkpad/internal/event"
	"github.com/bethropolis/inkpad/internal/logger"
	"github.com/bethropolis/inkpad/internal/plugin"
	"github.com/bethropolis/inkpad/internal/utils"
)

// Ensure AutoSave implements plugin.Plugin
var _ plugin.Plugin = (*AutoSave)(nil)

const (
	// Default configuration values
	defaultEnabled  = false
	defaultInterval = 1 * time.Minute
)

// AutoSave saves the document every interval while it is modified. With
// idle set it also saves once edits have paused for that long.
//
//	[plugins.autosave]
//	enabled = true
//	interval = "30s"
//	idle = "5s"
type AutoSave struct {
	api plugin.AnnotatorAPI

	// Configuration
	mutex    sync.RWMutex // Protects access to config fields below
	enabled  bool
	interval time.Duration
	idle     time.Duration

	// Runtime state
	debouncer utils.Debouncer
	stopChan  chan struct{}
	wg        sync.WaitGroup
	stopOnce  sync.Once
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
func (p *AutoSave) Initialize(api plugin.AnnotatorAPI) error {
	p.api = api
	pluginName := p.Name()

	p.mutex.Lock()
	if enabledVal, ok := api.GetPluginConfigValue(pluginName, "enabled"); ok {
		if boolVal, isBool := enabledVal.(bool); isBool {
			p.enabled = boolVal
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", pluginName, enabledVal, p.enabled)
		}
	}
	p.interval = p.durationValue("interval", p.interval)
	p.idle = p.durationValue("idle", p.idle)
	isEnabled, interval, idle := p.enabled, p.interval, p.idle
	p.mutex.Unlock()

	logger.Infof("%s initialized. Enabled: %v, Interval: %v, Idle: %v", pluginName, isEnabled, interval, idle)
	if !isEnabled {
		return nil
	}

	p.stopChan = make(chan struct{})
	p.wg.Add(1)
	go p.saverLoop(interval)

	if idle > 0 {
		api.SubscribeEvent(event.TypeAnnotationsChanged, func(event.Event) bool {
			p.debouncer.Debounce(idle, p.saveIfModified)
			return false
		})
	}
	return nil
}

// durationValue reads a duration string such as "30s"; invalid or
// non-positive values keep def. Caller holds the lock.
func (p *AutoSave) durationValue(key string, def time.Duration) time.Duration {
	val, ok := p.api.GetPluginConfigValue(p.Name(), key)
	if !ok {
		return def
	}
	strVal, isStr := val.(string)
	if !isStr {
		logger.Warnf("%s: Invalid type for '%s' config (%T), using default (%v)", p.Name(), key, val, def)
		return def
	}
	d, err := time.ParseDuration(strVal)
	if err != nil || d <= 0 {
		logger.Warnf("%s: Invalid '%s' config ('%s'), using default (%v)", p.Name(), key, strVal, def)
		return def
	}
	return d
}

// Shutdown signals the saver goroutine to stop and waits for it.
func (p *AutoSave) Shutdown() error {
	p.debouncer.Stop()
	if p.stopChan == nil {
		return nil
	}
	p.stopOnce.Do(func() {
		close(p.stopChan)
		p.wg.Wait()
		logger.Debugf("%s: Saver goroutine stopped.", p.Name())
	})
	return nil
}

func (p *AutoSave) saverLoop(interval time.Duration) {
	defer p.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.saveIfModified()
		case <-p.stopChan:
			return
		}
	}
}

// saveIfModified saves a modified document that has a file name.
func (p *AutoSave) saveIfModified() {
	if !p.api.IsModified() {
		return
	}
	filePath := p.api.FilePath()
	if filePath == "" {
		logger.Debugf("%s: Document is modified but has no name, skipping auto-save.", p.Name())
		return
	}

	if err := p.api.SaveDocument(""); err != nil {
		logger.Errorf("%s: Auto-save failed for '%s': %v", p.Name(), filePath, err)
		return
	}
	logger.Infof("%s: Auto-saved '%s'", p.Name(), filePath)
}
