package commands

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/bethropolis/inkpad/internal/core"
	"github.com/bethropolis/inkpad/internal/event"
	"github.com/bethropolis/inkpad/internal/plugin"
	"github.com/bethropolis/inkpad/internal/theme"
	"github.com/bethropolis/inkpad/internal/types"
)

// fakeAPI backs the commands with a real store and records side effects.
type fakeAPI struct {
	store    *core.Store
	themes   *theme.Manager
	commands map[string]plugin.CommandFunc
	status   string
	saved    []string
	loaded   []string
	exported []string
	clip     string
	quits    []bool
}

var _ plugin.AnnotatorAPI = (*fakeAPI)(nil)

func newFakeAPI() *fakeAPI {
	api := &fakeAPI{
		store:    core.NewStore(core.DefaultDefaults(), 20),
		themes:   theme.NewManager(""),
		commands: map[string]plugin.CommandFunc{},
	}
	RegisterAppCommands(api)
	return api
}

func (f *fakeAPI) run(line string, args ...string) error {
	fn, ok := f.commands[line]
	if !ok {
		return fmt.Errorf("no command %q", line)
	}
	return fn(args)
}

func (f *fakeAPI) Annotations() []types.Annotation { return f.store.Annotations() }
func (f *fakeAPI) Selected() (types.Annotation, int, bool) { return f.store.Selected() }
func (f *fakeAPI) Execute(cmd core.Command) bool { return f.store.Execute(cmd) }
func (f *fakeAPI) HistoryDepth() (int, int) { return f.store.HistoryDepth() }
func (f *fakeAPI) FilePath() string { return f.store.FilePath() }
func (f *fakeAPI) IsModified() bool { return f.store.IsModified() }
func (f *fakeAPI) DispatchEvent(event.Type, any) {}
func (f *fakeAPI) SubscribeEvent(event.Type, event.Handler) {}
func (f *fakeAPI) GetThemeStyle(name string) tcell.Style { return f.themes.Current().GetStyle(name) }
func (f *fakeAPI) SetTheme(name string) error { return f.themes.SetTheme(name) }
func (f *fakeAPI) GetTheme() *theme.Theme { return f.themes.Current() }
func (f *fakeAPI) ListThemes() []string { return f.themes.ListThemes() }
func (f *fakeAPI) GetPluginConfigValue(string, string) (any, bool) { return nil, false }

func (f *fakeAPI) SaveDocument(path string) error {
	if path == "" && f.store.FilePath() == "" {
		return errors.New("no file name")
	}
	f.saved = append(f.saved, path)
	f.store.MarkSaved(path)
	return nil
}

func (f *fakeAPI) LoadDocument(path string) error {
	f.loaded = append(f.loaded, path)
	f.store.Load([]types.Annotation{{Text: "loaded", Font: "go", FontSize: 12}}, path)
	return nil
}

func (f *fakeAPI) ExportPNG(path string) error {
	f.exported = append(f.exported, path)
	return nil
}

func (f *fakeAPI) CopyText(text string) error { f.clip = text; return nil }
func (f *fakeAPI) PasteText() (string, error) {
	if f.clip == "" {
		return "", errors.New("clipboard is empty")
	}
	return f.clip, nil
}

func (f *fakeAPI) RegisterCommand(name string, fn plugin.CommandFunc) error {
	if _, ok := f.commands[name]; ok {
		return fmt.Errorf("command '%s' already registered", name)
	}
	f.commands[name] = fn
	return nil
}

func (f *fakeAPI) SetStatusMessage(format string, args ...any) { f.status = fmt.Sprintf(format, args...) }

func (f *fakeAPI) RequestQuit(force bool) bool {
	f.quits = append(f.quits, force)
	return true
}

func TestAnnotationCommands(t *testing.T) {
	api := newFakeAPI()

	if err := api.run("add", "Hello", "world"); err != nil {
		t.Fatalf("add: %v", err)
	}
	steps := []struct {
		name string
		args []string
	}{
		{"font", []string{"go-mono"}},
		{"size", []string{"30"}},
		{"align", []string{"right"}},
		{"bold", nil},
		{"underline", nil},
		{"italic", nil},
		{"italic", nil},
	}
	for _, s := range steps {
		if err := api.run(s.name, s.args...); err != nil {
			t.Fatalf("%s %v: %v", s.name, s.args, err)
		}
	}

	a, _, _ := api.Selected()
	want := types.Annotation{
		Text: "Hello world", Font: "go-mono", FontSize: 30, X: 100, Y: 100,
		IsBold: true, IsUnderline: true, Alignment: types.AlignRight,
	}
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("annotation (-want +got):\n%s", diff)
	}

	if err := api.run("undo"); err != nil {
		t.Fatal(err)
	}
	if a, _, _ := api.Selected(); !a.IsItalic {
		t.Error("undo did not restore italic")
	}
	if err := api.run("redo"); err != nil {
		t.Fatal(err)
	}
	if err := api.run("delete"); err != nil {
		t.Fatal(err)
	}
	if n := len(api.Annotations()); n != 0 {
		t.Errorf("%d annotations after delete", n)
	}
}

func TestAnnotationCommands_Errors(t *testing.T) {
	api := newFakeAPI()

	if err := api.run("bold"); !errors.Is(err, errNoSelection) {
		t.Errorf("bold without selection: %v", err)
	}
	if err := api.run("add"); err == nil {
		t.Error("add without text succeeded")
	}
	api.run("add", "x")
	for _, args := range [][]string{nil, {"0"}, {"big"}} {
		if err := api.run("size", args...); err == nil {
			t.Errorf("size %v succeeded", args)
		}
	}
	if err := api.run("align", "justify"); err == nil {
		t.Error("align justify succeeded")
	}
	api.run("undo")
	api.run("undo")
	if api.status != "Nothing to undo" {
		t.Errorf("status = %q", api.status)
	}
}

func TestDocumentCommands(t *testing.T) {
	api := newFakeAPI()

	if err := api.run("w"); err == nil {
		t.Error(":w on an unnamed document succeeded")
	}
	api.run("add", "keep")
	if err := api.run("e", "other.toml"); err == nil {
		t.Error(":e discarded unsaved changes")
	}
	if err := api.run("w", "doc.toml"); err != nil {
		t.Fatalf(":w doc.toml: %v", err)
	}
	if api.status != "Saved doc.toml" {
		t.Errorf("status = %q", api.status)
	}
	if err := api.run("e", "other.toml"); err != nil {
		t.Fatalf(":e: %v", err)
	}
	if err := api.run("export", "out.png"); err != nil {
		t.Fatalf(":export: %v", err)
	}
	if diff := cmp.Diff([]string{"other.toml"}, api.loaded); diff != "" {
		t.Errorf("loaded (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"out.png"}, api.exported); diff != "" {
		t.Errorf("exported (-want +got):\n%s", diff)
	}

	api.run("q")
	api.run("q!")
	if diff := cmp.Diff([]bool{false, true}, api.quits); diff != "" {
		t.Errorf("quits (-want +got):\n%s", diff)
	}
}

func TestCopyPaste(t *testing.T) {
	api := newFakeAPI()
	if err := api.run("paste"); err == nil {
		t.Error("paste from empty clipboard succeeded")
	}
	api.run("add", "copied", "text")
	if err := api.run("copy"); err != nil {
		t.Fatal(err)
	}
	api.clip = "  multi\nline  "
	if err := api.run("paste"); err != nil {
		t.Fatal(err)
	}
	list := api.Annotations()
	if len(list) != 2 || list[1].Text != "multi line" {
		t.Errorf("annotations = %+v", list)
	}
}

func TestThemeCommands(t *testing.T) {
	api := newFakeAPI()
	api.run("theme")
	if api.status != "Current theme: Ink Dark" {
		t.Errorf("status = %q", api.status)
	}
	if err := api.run("theme", "nope"); err == nil {
		t.Error("unknown theme accepted")
	}
	api.run("themes")
	if api.status != "Available themes: Ink Dark" {
		t.Errorf("status = %q", api.status)
	}
}
