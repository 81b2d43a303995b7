package config

import "time"

// Base application details
const AppName = "inkpad"
const Version = "0.3.0"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "inkpad.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Canvas defaults. Coordinates are canvas units; the terminal maps one
// cell to DefaultCellWidth x DefaultCellHeight of them.
const DefaultCellWidth = 8.0
const DefaultCellHeight = 16.0
const DefaultOriginX = 100.0
const DefaultOriginY = 100.0
const DefaultFont = "go"
const DefaultFontSize = 16
const DefaultMaxHistory = 100
const DefaultNudgeStep = 1

// PNG export defaults
const DefaultExportWidth = 800
const DefaultExportHeight = 600
const DefaultExportBackground = "#ffffff"
const DefaultExportInk = "#000000"

const SystemClipboard = true

// DefaultFonts is the font cycle used by the f/F keys.
var DefaultFonts = []string{"go", "go-mono", "go-medium", "go-smallcaps"}
