package render

import (
	"testing"

	"github.com/bethropolis/inkpad/internal/types"
)

// fixedMeasurer gives every rune the same advance.
type fixedMeasurer struct {
	runeWidth float64
	width     float64
	ascent    float64
}

func (m fixedMeasurer) TextWidth(a types.Annotation) float64 {
	return float64(len([]rune(a.Text))) * m.runeWidth
}
func (m fixedMeasurer) SurfaceWidth() float64 { return m.width }
func (m fixedMeasurer) Extent(types.Annotation) (float64, float64) {
	return m.ascent, 4
}

func TestAlignedX(t *testing.T) {
	m := fixedMeasurer{runeWidth: 10, width: 800, ascent: 12}
	a := types.Annotation{Text: "hello", X: 37, Y: 100}

	tests := []struct {
		align types.Alignment
		want  float64
	}{
		{types.AlignLeft, 37},
		{types.AlignCenter, (800 - 50) / 2},
		{types.AlignRight, 800 - 50 - 20},
	}
	for _, tt := range tests {
		a.Alignment = tt.align
		if got := AlignedX(a, m); got != tt.want {
			t.Errorf("AlignedX(%v) = %v, want %v", tt.align, got, tt.want)
		}
	}
}

func TestBoundsAndHitTest(t *testing.T) {
	m := fixedMeasurer{runeWidth: 10, width: 800, ascent: 12}
	list := []types.Annotation{
		{Text: "under", X: 100, Y: 100},
		{Text: "over", X: 120, Y: 104},
	}

	b := Bounds(list[0], m)
	if b.Min != (types.Point{X: 100, Y: 88}) || b.Max != (types.Point{X: 150, Y: 104}) {
		t.Errorf("Bounds = %+v", b)
	}

	tests := []struct {
		p    types.Point
		want int
	}{
		{types.Point{X: 105, Y: 95}, 0},
		{types.Point{X: 125, Y: 100}, 1}, // both contain it; the later one wins
		{types.Point{X: 155, Y: 100}, 1},
		{types.Point{X: 99, Y: 95}, -1},
		{types.Point{X: 105, Y: 110}, -1},
	}
	for _, tt := range tests {
		if got := HitTest(list, tt.p, m); got != tt.want {
			t.Errorf("HitTest(%+v) = %d, want %d", tt.p, got, tt.want)
		}
	}
}
