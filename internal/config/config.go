// Package config loads inkpad's TOML configuration and applies
// command-line overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/inkpad/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger  logger.Config             `toml:"logger"`
	Canvas  CanvasConfig              `toml:"canvas"`
	Editor  EditorConfig              `toml:"editor"`
	Plugins map[string]map[string]any `toml:"plugins"`
}

// CanvasConfig holds the annotation canvas settings.
type CanvasConfig struct {
	CellWidth        float64  `toml:"cell_width"`
	CellHeight       float64  `toml:"cell_height"`
	OriginX          float64  `toml:"origin_x"`
	OriginY          float64  `toml:"origin_y"`
	DefaultFont      string   `toml:"default_font"`
	DefaultFontSize  int      `toml:"default_font_size"`
	Fonts            []string `toml:"fonts"`
	MaxHistory       int      `toml:"max_history"`
	NudgeStep        int      `toml:"nudge_step"` // cells per arrow key press
	ExportWidth      int      `toml:"export_width"`
	ExportHeight     int      `toml:"export_height"`
	ExportBackground string   `toml:"export_background"`
	ExportInk        string   `toml:"export_ink"`
}

// EditorConfig holds front-end settings.
type EditorConfig struct {
	SystemClipboard bool   `toml:"system_clipboard"`
	StatusBarHeight int    `toml:"status_bar_height"`
	Theme           string `toml:"theme"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	lc := logger.NewConfig()
	lc.LogFilePath = DefaultLogFileName
	return &Config{
		Logger: lc,
		Canvas: CanvasConfig{
			CellWidth:        DefaultCellWidth,
			CellHeight:       DefaultCellHeight,
			OriginX:          DefaultOriginX,
			OriginY:          DefaultOriginY,
			DefaultFont:      DefaultFont,
			DefaultFontSize:  DefaultFontSize,
			Fonts:            slices.Clone(DefaultFonts),
			MaxHistory:       DefaultMaxHistory,
			NudgeStep:        DefaultNudgeStep,
			ExportWidth:      DefaultExportWidth,
			ExportHeight:     DefaultExportHeight,
			ExportBackground: DefaultExportBackground,
			ExportInk:        DefaultExportInk,
		},
		Editor: EditorConfig{
			SystemClipboard: SystemClipboard,
			StatusBarHeight: StatusBarHeight,
		},
		Plugins: map[string]map[string]any{},
	}
}

// DefaultConfigPath returns <user config dir>/inkpad/config.toml, or "".
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// decodeFile decodes filePath over cfg, so keys the file leaves out keep
// their current values. A missing file is not an error.
func decodeFile(filePath string, cfg *Config) error {
	metadata, err := toml.DecodeFile(filePath, cfg)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		// Plugin tables are free-form and always decode, so these are typos.
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	return nil
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}

	cv := &c.Canvas
	if cv.CellWidth <= 0 {
		cv.CellWidth = defaults.Canvas.CellWidth
	}
	if cv.CellHeight <= 0 {
		cv.CellHeight = defaults.Canvas.CellHeight
	}
	if cv.DefaultFont == "" {
		cv.DefaultFont = defaults.Canvas.DefaultFont
	}
	if cv.DefaultFontSize <= 0 {
		cv.DefaultFontSize = defaults.Canvas.DefaultFontSize
	}
	if len(cv.Fonts) == 0 {
		cv.Fonts = defaults.Canvas.Fonts
	}
	if cv.MaxHistory <= 0 {
		cv.MaxHistory = defaults.Canvas.MaxHistory
	}
	if cv.NudgeStep <= 0 {
		cv.NudgeStep = defaults.Canvas.NudgeStep
	}
	if cv.ExportWidth <= 0 {
		cv.ExportWidth = defaults.Canvas.ExportWidth
	}
	if cv.ExportHeight <= 0 {
		cv.ExportHeight = defaults.Canvas.ExportHeight
	}
	if cv.ExportBackground == "" {
		cv.ExportBackground = defaults.Canvas.ExportBackground
	}
	if cv.ExportInk == "" {
		cv.ExportInk = defaults.Canvas.ExportInk
	}

	if c.Editor.StatusBarHeight <= 0 {
		c.Editor.StatusBarHeight = defaults.Editor.StatusBarHeight
	}
	if c.Plugins == nil {
		c.Plugins = map[string]map[string]any{}
	}
}

// Load builds a configuration from defaults, the file at configFilePath
// (the default location when empty) and flag overrides. The returned
// config is always usable; the error reports a file that failed to parse.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultConfigPath()
	}

	var err error
	if effectivePath != "" {
		if err = decodeFile(effectivePath, cfg); err != nil {
			cfg = NewDefaultConfig()
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, err
}

// LoadConfig loads the configuration once for the process; later calls
// return the first result.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadErr = Load(configFilePath, flags)
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

// PluginConfig returns the [plugins.<name>] table, or nil.
func (c *Config) PluginConfig(name string) map[string]any {
	return c.Plugins[name]
}
