package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"
)

const paperTheme = `
name = "Paper"
is_dark = false

[styles.Default]
fg = "#202020"
bg = "#ffffff"

[styles.Selection]
reverse = true

[styles."Font.go-mono"]
fg = "darkgreen"
bold = true
`

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme(paperTheme)
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	if th.Name != "Paper" || th.IsDark {
		t.Errorf("got name=%q dark=%v", th.Name, th.IsDark)
	}

	base := tcell.StyleDefault.Foreground(tcell.NewHexColor(0x202020)).Background(tcell.NewHexColor(0xffffff))
	if got := th.GetStyle(StyleDefault); got != base {
		t.Errorf("Default = %v, want %v", got, base)
	}
	if got, want := th.GetStyle(StyleSelection), base.Reverse(true); got != want {
		t.Errorf("Selection = %v, want %v", got, want)
	}
	if got, want := th.FontStyle("GO-MONO"), base.Foreground(tcell.ColorDarkGreen).Bold(true); got != want {
		t.Errorf("Font.go-mono = %v, want %v", got, want)
	}
	// No Font or Canvas styles, so an unknown family falls back to Default.
	if got := th.FontStyle("comic"); got != base {
		t.Errorf("unknown font = %v, want Default", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{in: "#ff0000", want: tcell.NewHexColor(0xff0000)},
		{in: " RESET ", want: tcell.ColorReset},
		{in: "default", want: tcell.ColorDefault},
		{in: "red", want: tcell.ColorRed},
		{in: "#fff", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "octarine", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestManager_LoadsDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "paper.toml"), []byte(paperTheme), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.toml"), []byte("name = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	mgr := NewManager(dir)
	if diff := cmp.Diff([]string{"Ink Dark", "Paper"}, mgr.ListThemes()); diff != "" {
		t.Errorf("ListThemes (-want +got):\n%s", diff)
	}
	if got := mgr.Current().Name; got != "Ink Dark" {
		t.Errorf("initial theme = %q", got)
	}
	if err := mgr.SetTheme("paper"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if got := mgr.Current().Name; got != "Paper" {
		t.Errorf("after SetTheme = %q", got)
	}
	if err := mgr.SetTheme("nope"); err == nil {
		t.Error("SetTheme of unknown theme succeeded")
	}
}

func TestManager_MissingDirectory(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "absent"))
	if diff := cmp.Diff([]string{"Ink Dark"}, mgr.ListThemes()); diff != "" {
		t.Errorf("ListThemes (-want +got):\n%s", diff)
	}
}
