package app

import (
	"fmt"

	"github.com/bethropolis/inkpad/internal/logger"
	"github.com/bethropolis/inkpad/internal/plugin"
	"github.com/bethropolis/inkpad/plugins/autosave"
	"github.com/bethropolis/inkpad/plugins/wordcount"
)

// pluginConstructors lists the built-in plugins in initialization order.
var pluginConstructors = []func() plugin.Plugin{
	wordcount.New,
	autosave.New,
}

// registerPlugins registers every built-in plugin with pm and returns the
// first registration error.
func registerPlugins(pm *plugin.Manager) error {
	if pm == nil {
		return fmt.Errorf("plugin manager is nil")
	}

	var finalErr error
	for _, newPlugin := range pluginConstructors {
		p := newPlugin()
		logger.Debugf("Registering plugin: %s", p.Name())
		if err := pm.Register(p); err != nil {
			wrappedErr := fmt.Errorf("failed to register plugin '%s': %w", p.Name(), err)
			logger.Errorf("%v", wrappedErr)
			if finalErr == nil {
				finalErr = wrappedErr
			}
		}
	}
	return finalErr
}
