// Package render draws annotation lists onto a surface: the terminal
// (tcell) or a raster image (x/image). Both share the layout rules here.
package render

import "github.com/bethropolis/inkpad/internal/types"

// RightMargin is the gap kept between right-aligned text and the surface edge.
const RightMargin = 20.0

// Measurer reports text and surface metrics in canvas units.
type Measurer interface {
	// TextWidth is the advance width of the annotation's text in its
	// font, size and style.
	TextWidth(a types.Annotation) float64
	// SurfaceWidth is the width of the drawing surface.
	SurfaceWidth() float64
	// Extent is the distance the text reaches above and below its baseline.
	Extent(a types.Annotation) (ascent, descent float64)
}

// AlignedX returns the left edge at which a is drawn. Left alignment uses
// the annotation's own X; center and right ignore it.
func AlignedX(a types.Annotation, m Measurer) float64 {
	switch a.Alignment {
	case types.AlignCenter:
		return (m.SurfaceWidth() - m.TextWidth(a)) / 2
	case types.AlignRight:
		return m.SurfaceWidth() - m.TextWidth(a) - RightMargin
	}
	return a.X
}

// Rect is an axis-aligned box; Min is inclusive and Max exclusive.
type Rect struct {
	Min, Max types.Point
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p types.Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Bounds returns the box covered by a's text.
func Bounds(a types.Annotation, m Measurer) Rect {
	x := AlignedX(a, m)
	ascent, descent := m.Extent(a)
	return Rect{
		Min: types.Point{X: x, Y: a.Y - ascent},
		Max: types.Point{X: x + m.TextWidth(a), Y: a.Y + descent},
	}
}

// HitTest returns the index of the topmost annotation containing p, or -1.
// Later annotations are drawn over earlier ones, so the search runs
// backwards.
func HitTest(list []types.Annotation, p types.Point, m Measurer) int {
	for i := len(list) - 1; i >= 0; i-- {
		if Bounds(list[i], m).Contains(p) {
			return i
		}
	}
	return -1
}
