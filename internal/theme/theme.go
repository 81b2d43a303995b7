// Package theme maps style names to tcell styles and manages the
// built-in and user themes.
package theme

import (
	"strings"

	"github.com/bethropolis/inkpad/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names used by the renderers.
const (
	StyleDefault           = "Default"
	StyleCanvas            = "Canvas"
	StyleSelection         = "Selection"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBarModified"
	StyleStatusBarMessage  = "StatusBarMessage"
	StyleStatusBarPrompt   = "StatusBarPrompt"
	StyleFontPrefix        = "Font."
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle looks up name, falling back to the part before the first dot
// and then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dot := strings.Index(name, "."); dot != -1 {
		if style, ok := t.Styles[name[:dot]]; ok {
			return style
		}
	}

	if def, ok := t.Styles[StyleDefault]; ok {
		return def
	}

	logger.Warnf("Theme '%s': style '%s' and 'Default' not found, using tcell default", t.Name, name)
	return tcell.StyleDefault
}

// FontStyle returns the style used to draw text in the given font family.
// Unknown families use the "Font" base style, then "Canvas".
func (t *Theme) FontStyle(family string) tcell.Style {
	if style, ok := t.Styles[StyleFontPrefix+strings.ToLower(family)]; ok {
		return style
	}
	if style, ok := t.Styles["Font"]; ok {
		return style
	}
	return t.GetStyle(StyleCanvas)
}

// InkDark is the built-in dark theme.
var InkDark Theme

func init() {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)
	blue := tcell.NewHexColor(0x61afef)
	magenta := tcell.NewHexColor(0xc678dd)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)

	InkDark = Theme{
		Name:   "Ink Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:   base,
			StyleCanvas:    base,
			StyleSelection: base.Reverse(true),

			StyleStatusBar:         tcell.StyleDefault.Background(background).Foreground(foreground),
			StyleStatusBarModified: tcell.StyleDefault.Background(background).Foreground(yellow),
			StyleStatusBarMessage:  tcell.StyleDefault.Background(background).Foreground(foreground).Bold(true),
			StyleStatusBarPrompt:   tcell.StyleDefault.Background(background).Foreground(green).Bold(true),

			"Font":              base.Foreground(foreground),
			"Font.go":           base.Foreground(foreground),
			"Font.go-medium":    base.Foreground(cyan),
			"Font.go-mono":      base.Foreground(green),
			"Font.go-smallcaps": base.Foreground(magenta),
			"Font.sans-serif":   base.Foreground(foreground),
			"Font.serif":        base.Foreground(orange),
			"Font.monospace":    base.Foreground(green),
			"Font.cursive":      base.Foreground(blue),
			"Font.muted":        base.Foreground(muted),
		},
	}
}
