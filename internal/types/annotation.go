// Package types holds the value types shared by the annotation store,
// renderers and the front end.
package types

import (
	"fmt"
	"strings"
)

// Alignment selects how an annotation is placed horizontally on the surface.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the lowercase name used in documents and commands.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment parses "left", "center" or "right" (case-insensitive).
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l":
		return AlignLeft, nil
	case "center", "centre", "c":
		return AlignCenter, nil
	case "right", "r":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alignment) UnmarshalText(text []byte) error {
	v, err := ParseAlignment(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Style is a set of text decoration flags.
type Style uint8

const (
	StyleBold Style = 1 << iota
	StyleItalic
	StyleUnderline

	StyleNone Style = 0
)

// Has reports whether all flags in f are set.
func (s Style) Has(f Style) bool { return s&f == f }

// String lists the set flags, e.g. "bold+underline", or "plain".
func (s Style) String() string {
	var parts []string
	if s.Has(StyleBold) {
		parts = append(parts, "bold")
	}
	if s.Has(StyleItalic) {
		parts = append(parts, "italic")
	}
	if s.Has(StyleUnderline) {
		parts = append(parts, "underline")
	}
	if len(parts) == 0 {
		return "plain"
	}
	return strings.Join(parts, "+")
}

// Point is a location on the canvas, in canvas units.
type Point struct {
	X, Y float64
}

// Annotation is a positioned, styled text label. Y is the text baseline.
type Annotation struct {
	Text        string    `toml:"text"`
	Font        string    `toml:"font"`
	FontSize    int       `toml:"font_size"`
	X           float64   `toml:"x"`
	Y           float64   `toml:"y"`
	IsBold      bool      `toml:"bold"`
	IsItalic    bool      `toml:"italic"`
	IsUnderline bool      `toml:"underline"`
	Alignment   Alignment `toml:"alignment"`
}

// Style returns the decoration flags of the annotation.
func (a Annotation) Style() Style {
	var s Style
	if a.IsBold {
		s |= StyleBold
	}
	if a.IsItalic {
		s |= StyleItalic
	}
	if a.IsUnderline {
		s |= StyleUnderline
	}
	return s
}

// WithStyle returns a copy of a with exactly the flags in s set.
func (a Annotation) WithStyle(s Style) Annotation {
	a.IsBold = s.Has(StyleBold)
	a.IsItalic = s.Has(StyleItalic)
	a.IsUnderline = s.Has(StyleUnderline)
	return a
}

// Position returns the anchor point of the annotation.
func (a Annotation) Position() Point {
	return Point{X: a.X, Y: a.Y}
}

// Summary describes the annotation for the status bar.
func (a Annotation) Summary() string {
	return fmt.Sprintf("%s %dpx %s %s", a.Font, a.FontSize, a.Style(), a.Alignment)
}
