package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/inkpad/internal/logger"
)

// ErrEmpty is returned by Paste when there is nothing to paste.
var ErrEmpty = errors.New("clipboard is empty")

// Manager copies annotation text to the system clipboard, keeping an
// internal copy for when the system clipboard is disabled or unavailable.
type Manager struct {
	mu       sync.Mutex
	system   bool
	internal string

	// write and read default to the atotto/clipboard functions.
	write func(string) error
	read  func() (string, error)
}

// NewManager returns a clipboard manager. With useSystem false only the
// internal clipboard is used.
func NewManager(useSystem bool) *Manager {
	if useSystem && clipboard.Unsupported {
		logger.Warnf("ClipboardManager: no system clipboard available, using internal clipboard")
		useSystem = false
	}
	return &Manager{
		system: useSystem,
		write:  clipboard.WriteAll,
		read:   clipboard.ReadAll,
	}
}

// UsesSystem reports whether the system clipboard is in use.
func (m *Manager) UsesSystem() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.system
}

// Copy stores text. A system clipboard failure is returned, but the text
// is still kept internally.
func (m *Manager) Copy(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.internal = text
	logger.Debugf("ClipboardManager: copied %d bytes", len(text))
	if !m.system {
		return nil
	}
	if err := m.write(text); err != nil {
		return fmt.Errorf("system clipboard write: %w", err)
	}
	return nil
}

// Paste returns the clipboard text, preferring the system clipboard and
// falling back to the internal copy when it fails or is empty.
func (m *Manager) Paste() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.system {
		text, err := m.read()
		if err != nil {
			logger.Warnf("ClipboardManager: system clipboard read failed, using internal copy: %v", err)
		} else if text != "" {
			return text, nil
		}
	}
	if m.internal == "" {
		return "", ErrEmpty
	}
	return m.internal, nil
}
