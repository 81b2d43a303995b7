package render

import (
	"testing"

	"github.com/bethropolis/inkpad/internal/theme"
	"github.com/bethropolis/inkpad/internal/types"
	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func rowText(s tcell.Screen, row, from, to int) string {
	var out []rune
	for x := from; x < to; x++ {
		r, _, _, _ := s.GetContent(x, row)
		out = append(out, r)
	}
	return string(out)
}

func TestTerminal_Layout(t *testing.T) {
	term := NewTerminal(8, 16, 40, 10)

	if got := term.SurfaceWidth(); got != 320 {
		t.Errorf("SurfaceWidth = %v", got)
	}
	a := types.Annotation{Text: "héllo", X: 16, Y: 40}
	if got := term.TextWidth(a); got != 40 {
		t.Errorf("TextWidth = %v, want 40", got)
	}
	if col, row := term.CellOf(a); col != 2 || row != 2 {
		t.Errorf("CellOf = %d,%d, want 2,2", col, row)
	}

	a.Alignment = types.AlignRight
	// (320 - 40 - 20) / 8 = 32.5
	if col, _ := term.CellOf(a); col != 32 {
		t.Errorf("right aligned col = %d, want 32", col)
	}
	a.Alignment = types.AlignCenter
	if col, _ := term.CellOf(a); col != 17 {
		t.Errorf("centered col = %d, want 17", col)
	}

	if p := term.PointAt(2, 2); p != (types.Point{X: 20, Y: 40}) {
		t.Errorf("PointAt = %+v", p)
	}
}

func TestTerminal_HitTest(t *testing.T) {
	term := NewTerminal(8, 16, 40, 10)
	list := []types.Annotation{
		{Text: "abcd", X: 16, Y: 40},
		{Text: "xy", X: 32, Y: 40},
	}
	tests := []struct {
		col, row, want int
	}{
		{2, 2, 0},
		{4, 2, 1},
		{5, 2, 1},
		{6, 2, -1},
		{2, 3, -1},
		{1, 2, -1},
	}
	for _, tt := range tests {
		if got := term.HitTest(list, tt.col, tt.row); got != tt.want {
			t.Errorf("HitTest(%d,%d) = %d, want %d", tt.col, tt.row, got, tt.want)
		}
	}
}

func TestTerminal_Draw(t *testing.T) {
	screen := newSimScreen(t, 20, 4)
	term := NewTerminal(8, 16, 20, 3)
	th := &theme.InkDark

	list := []types.Annotation{
		{Text: "plain", Font: "go", X: 0, Y: 24},
		{Text: "bold", Font: "go-mono", X: 80, Y: 24, IsBold: true, IsUnderline: true},
		{Text: "offscreen", X: 0, Y: 400},
	}
	term.Draw(screen, list, 1, th)

	if got := rowText(screen, 1, 0, 14); got != "plain     bold" {
		t.Errorf("row 1 = %q", got)
	}

	_, _, style, _ := screen.GetContent(10, 1)
	_, _, attrs := style.Decompose()
	if attrs&tcell.AttrBold == 0 || attrs&tcell.AttrUnderline == 0 || attrs&tcell.AttrReverse == 0 {
		t.Errorf("selected bold cell attrs = %v", attrs)
	}
	_, _, style, _ = screen.GetContent(0, 1)
	if want := th.FontStyle("go"); style != want {
		t.Errorf("plain cell style = %v, want %v", style, want)
	}
}

func TestTerminal_DrawClipsRight(t *testing.T) {
	screen := newSimScreen(t, 6, 2)
	term := NewTerminal(8, 16, 6, 2)
	term.Draw(screen, []types.Annotation{{Text: "overflowing", X: 16, Y: 24}}, -1, &theme.InkDark)

	if got := rowText(screen, 1, 0, 6); got != "  over" {
		t.Errorf("row 1 = %q", got)
	}
}
