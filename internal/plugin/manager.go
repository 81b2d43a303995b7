package plugin

import (
	"fmt"
	"sync"

	"github.com/bethropolis/inkpad/internal/logger"
)

// Manager handles the registration, initialization, and lifecycle of plugins.
// Plugins are initialized in registration order and shut down in reverse.
type Manager struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	order   []string
	active  []Plugin
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin. Call before InitializePlugins.
func (m *Manager) Register(p Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := p.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = p
	m.order = append(m.order, name)
	logger.Debugf("Plugin Manager: Registered plugin '%s'", name)
	return nil
}

// InitializePlugins initializes every registered plugin. A plugin that
// fails to initialize is logged and left out of shutdown.
func (m *Manager) InitializePlugins(api AnnotatorAPI) {
	m.mu.RLock()
	toInit := make([]Plugin, 0, len(m.order))
	for _, name := range m.order {
		toInit = append(toInit, m.plugins[name])
	}
	m.mu.RUnlock()

	logger.Infof("Plugin Manager: Initializing %d plugins...", len(toInit))
	var active []Plugin
	for _, p := range toInit {
		if err := p.Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: ERROR initializing plugin '%s': %v", p.Name(), err)
			continue
		}
		active = append(active, p)
		logger.Debugf("Plugin Manager: Successfully initialized plugin '%s'", p.Name())
	}

	m.mu.Lock()
	m.active = active
	m.mu.Unlock()
}

// ShutdownPlugins shuts down the initialized plugins in reverse order.
func (m *Manager) ShutdownPlugins() {
	m.mu.Lock()
	active := m.active
	m.active = nil
	m.mu.Unlock()

	logger.Infof("Plugin Manager: Shutting down %d plugins...", len(active))
	for i := len(active) - 1; i >= 0; i-- {
		p := active[i]
		if err := p.Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: ERROR shutting down plugin '%s': %v", p.Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}
