package render

import (
	"math"

	"github.com/bethropolis/inkpad/internal/theme"
	"github.com/bethropolis/inkpad/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Terminal lays annotations out on a grid of character cells. One cell
// covers CellWidth x CellHeight canvas units; text is one row tall and
// sits on the row holding the middle of its line box.
type Terminal struct {
	CellWidth  float64
	CellHeight float64
	Columns    int
	Rows       int
}

// NewTerminal returns a terminal layout for a columns x rows canvas.
func NewTerminal(cellWidth, cellHeight float64, columns, rows int) *Terminal {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	if cellHeight <= 0 {
		cellHeight = 1
	}
	t := &Terminal{CellWidth: cellWidth, CellHeight: cellHeight}
	t.Resize(columns, rows)
	return t
}

// Resize updates the canvas size in cells.
func (t *Terminal) Resize(columns, rows int) {
	t.Columns = max(columns, 0)
	t.Rows = max(rows, 0)
}

// TextWidth is the display width of the text in cells, scaled to canvas
// units. Font, size and style do not change cell widths.
func (t *Terminal) TextWidth(a types.Annotation) float64 {
	return float64(uniseg.StringWidth(a.Text)) * t.CellWidth
}

// SurfaceWidth is the canvas width in canvas units.
func (t *Terminal) SurfaceWidth() float64 {
	return float64(t.Columns) * t.CellWidth
}

// Extent reports one cell of ascent and no descent.
func (t *Terminal) Extent(types.Annotation) (ascent, descent float64) {
	return t.CellHeight, 0
}

// RowOf returns the row an annotation with baseline y is drawn on.
func (t *Terminal) RowOf(y float64) int {
	return int(math.Floor(y/t.CellHeight - 0.5))
}

// ColOf returns the column containing canvas x.
func (t *Terminal) ColOf(x float64) int {
	return int(math.Floor(x / t.CellWidth))
}

// CellOf returns the first cell of a's text.
func (t *Terminal) CellOf(a types.Annotation) (col, row int) {
	return t.ColOf(AlignedX(a, t)), t.RowOf(a.Y)
}

// PointAt returns the canvas point at the center of a cell.
func (t *Terminal) PointAt(col, row int) types.Point {
	return types.Point{
		X: (float64(col) + 0.5) * t.CellWidth,
		Y: (float64(row) + 0.5) * t.CellHeight,
	}
}

// HitTest returns the index of the topmost annotation drawn over the cell,
// or -1.
func (t *Terminal) HitTest(list []types.Annotation, col, row int) int {
	for i := len(list) - 1; i >= 0; i-- {
		a := list[i]
		c, r := t.CellOf(a)
		if r == row && col >= c && col < c+max(uniseg.StringWidth(a.Text), 1) {
			return i
		}
	}
	return -1
}

// AnnotationStyle returns the cell style for a, highlighted when selected.
func AnnotationStyle(th *theme.Theme, a types.Annotation, selected bool) tcell.Style {
	style := th.FontStyle(a.Font)
	if selected {
		style = th.GetStyle(theme.StyleSelection)
	}
	if a.IsBold {
		style = style.Bold(true)
	}
	if a.IsItalic {
		style = style.Italic(true)
	}
	if a.IsUnderline {
		style = style.Underline(true)
	}
	return style
}

// Draw clears the canvas rows and draws list in order, so later
// annotations cover earlier ones. current is the selected index or -1.
func (t *Terminal) Draw(screen tcell.Screen, list []types.Annotation, current int, th *theme.Theme) {
	canvas := th.GetStyle(theme.StyleCanvas)
	for row := 0; row < t.Rows; row++ {
		for col := 0; col < t.Columns; col++ {
			screen.SetContent(col, row, ' ', nil, canvas)
		}
	}

	for i, a := range list {
		col, row := t.CellOf(a)
		if row < 0 || row >= t.Rows {
			continue
		}
		t.drawText(screen, col, row, a.Text, AnnotationStyle(th, a, i == current))
	}
}

func (t *Terminal) drawText(screen tcell.Screen, col, row int, text string, style tcell.Style) {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		runes := gr.Runes()
		width := gr.Width()
		if width == 0 {
			continue
		}
		if col >= t.Columns {
			return
		}
		if col >= 0 {
			screen.SetContent(col, row, runes[0], runes[1:], style)
		}
		col += width
	}
}
