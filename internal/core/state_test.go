package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/bethropolis/inkpad/internal/core/history"
	"github.com/bethropolis/inkpad/internal/types"
)

// stateOpts compares states by content; the history log is compared
// through its exported depth accessors instead of its private stacks.
var stateOpts = cmp.Options{
	cmpopts.EquateEmpty(),
	cmp.Transformer("history", func(l history.Log) [2][]history.Record {
		return [2][]history.Record{l.UndoRecords(), l.RedoRecords()}
	}),
}

func newTestState() State {
	return NewState(DefaultDefaults(), 0)
}

func TestAddDefaults(t *testing.T) {
	s := Add(newTestState(), "hello", "", 0)

	want := []types.Annotation{{
		Text:      "hello",
		Font:      "go",
		FontSize:  16,
		X:         100,
		Y:         100,
		Alignment: types.AlignLeft,
	}}
	if diff := cmp.Diff(want, s.Annotations); diff != "" {
		t.Fatalf("annotations mismatch (-want +got):\n%s", diff)
	}
	if s.Current != 0 {
		t.Errorf("Current = %d, want 0", s.Current)
	}
	if got := s.History.UndoDepth(); got != 1 {
		t.Errorf("UndoDepth = %d, want 1", got)
	}
}

func TestAddIgnoresBlankText(t *testing.T) {
	for _, text := range []string{"", "   ", "\t\n"} {
		s := Add(newTestState(), text, "go", 12)
		if len(s.Annotations) != 0 || s.History.CanUndo() {
			t.Errorf("Add(%q) created an annotation or history record", text)
		}
	}
}

func TestAddThenUndoAllIsEmpty(t *testing.T) {
	s := newTestState()
	const n = 5
	for i := 0; i < n; i++ {
		s = Add(s, "label", "go", 14)
	}
	if len(s.Annotations) != n {
		t.Fatalf("got %d annotations, want %d", len(s.Annotations), n)
	}
	for i := 0; i < n; i++ {
		s = Undo(s)
	}
	if len(s.Annotations) != 0 {
		t.Errorf("got %d annotations after undoing all adds, want 0", len(s.Annotations))
	}
	if s.HasSelection() {
		t.Errorf("selection %d survived undoing every add", s.Current)
	}
	if s.History.RedoDepth() != n {
		t.Errorf("RedoDepth = %d, want %d", s.History.RedoDepth(), n)
	}
}

// TestUndoRedoRoundTrip checks that any single mutation followed by undo
// and redo leaves exactly the state the mutation produced.
func TestUndoRedoRoundTrip(t *testing.T) {
	base := Add(Add(newTestState(), "first", "go", 12), "second", "go-mono", 20)
	base = Select(base, 0)

	mutations := []struct {
		name string
		cmd  Command
	}{
		{"add", Command{Kind: CmdAdd, Text: "third"}},
		{"delete", Command{Kind: CmdDelete}},
		{"bold", Command{Kind: CmdToggleBold}},
		{"italic", Command{Kind: CmdToggleItalic}},
		{"underline", Command{Kind: CmdToggleUnderline}},
		{"set-style", Command{Kind: CmdSetStyle, Style: types.StyleBold | types.StyleUnderline}},
		{"font", Command{Kind: CmdSetFont, Font: "go-smallcaps"}},
		{"size", Command{Kind: CmdSetFontSize, Size: 48}},
		{"align-center", Command{Kind: CmdAlign, Alignment: types.AlignCenter}},
		{"align-right", Command{Kind: CmdAlign, Alignment: types.AlignRight}},
		{"move", Command{Kind: CmdMove, DX: 15, DY: -4}},
	}

	for _, tc := range mutations {
		t.Run(tc.name, func(t *testing.T) {
			mutated := Apply(base, tc.cmd)
			if !mutated.History.CanUndo() || mutated.History.UndoDepth() != base.History.UndoDepth()+1 {
				t.Fatalf("mutation did not record exactly one history entry")
			}

			undone := Undo(mutated)
			if diff := cmp.Diff(base.Annotations, undone.Annotations); diff != "" {
				t.Fatalf("undo did not restore the list (-want +got):\n%s", diff)
			}

			redone := Redo(undone)
			if diff := cmp.Diff(mutated, redone, stateOpts); diff != "" {
				t.Fatalf("redo did not restore the mutated state (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDeleteClearsSelection(t *testing.T) {
	s := Add(Add(Add(newTestState(), "a", "", 0), "b", "", 0), "c", "", 0)
	s = Select(s, 1)

	s = Delete(s)

	var texts []string
	for _, a := range s.Annotations {
		texts = append(texts, a.Text)
	}
	if diff := cmp.Diff([]string{"a", "c"}, texts); diff != "" {
		t.Fatalf("list after delete (-want +got):\n%s", diff)
	}
	if s.HasSelection() {
		t.Errorf("selection = %d after delete, want none", s.Current)
	}
}

func TestUndoDeleteRestoresPosition(t *testing.T) {
	s := Add(Add(Add(newTestState(), "a", "", 0), "b", "", 0), "c", "", 0)
	s = Select(s, 1)
	s = ToggleStyle(s, types.StyleItalic)
	want := s.Annotations

	s = Undo(Delete(s))

	if diff := cmp.Diff(want, s.Annotations); diff != "" {
		t.Fatalf("undo delete (-want +got):\n%s", diff)
	}
	if s.Current != 1 {
		t.Errorf("Current = %d after undoing delete, want 1", s.Current)
	}
}

func TestNoSelectionIsNoOp(t *testing.T) {
	s := Deselect(Add(newTestState(), "a", "", 0))
	depth := s.History.UndoDepth()

	ops := map[string]func(State) State{
		"bold":   func(s State) State { return ToggleStyle(s, types.StyleBold) },
		"font":   func(s State) State { return SetFont(s, "go-mono") },
		"size":   func(s State) State { return SetFontSize(s, 30) },
		"align":  func(s State) State { return SetAlignment(s, types.AlignRight) },
		"move":   func(s State) State { return Move(s, 1, 1) },
		"delete": Delete,
	}
	for name, op := range ops {
		got := op(s)
		if diff := cmp.Diff(s.Annotations, got.Annotations); diff != "" {
			t.Errorf("%s without selection changed the list:\n%s", name, diff)
		}
		if got.History.UndoDepth() != depth {
			t.Errorf("%s without selection recorded history", name)
		}
	}
}

func TestMutationClearsRedo(t *testing.T) {
	s := Add(Add(newTestState(), "a", "", 0), "b", "", 0)
	s = Undo(s)
	if !s.History.CanRedo() {
		t.Fatal("expected a redo record after undo")
	}

	s = Add(s, "c", "", 0)
	if s.History.CanRedo() {
		t.Fatal("redo stack not cleared by add")
	}

	before := s
	s = Redo(s)
	if diff := cmp.Diff(before, s, stateOpts); diff != "" {
		t.Fatalf("redo right after add changed state:\n%s", diff)
	}
}

func TestUnchangedEditRecordsNothing(t *testing.T) {
	s := Add(newTestState(), "a", "go", 16)
	s = Undo(Add(s, "b", "", 0))
	depth := s.History.UndoDepth()
	s = Select(s, 0)

	s = SetFont(s, "go")
	s = SetFontSize(s, 16)
	s = SetAlignment(s, types.AlignLeft)
	s = Move(s, 0, 0)
	s = SetFontSize(s, -3)

	if s.History.UndoDepth() != depth {
		t.Errorf("UndoDepth = %d, want %d", s.History.UndoDepth(), depth)
	}
	if !s.History.CanRedo() {
		t.Error("no-op edit cleared the redo stack")
	}
}

func TestUndoModifyRestoresFieldsOfTouchedAnnotation(t *testing.T) {
	s := Add(Add(newTestState(), "a", "", 0), "b", "", 0)
	s = Select(s, 0)
	s = SetFontSize(s, 40)
	original := s.Annotations[0]
	s = ToggleStyle(s, types.StyleBold)
	// Selection moves away before undo; undo must still target "a".
	s = Select(s, 1)

	s = Undo(s)

	if diff := cmp.Diff(original, s.Annotations[0]); diff != "" {
		t.Errorf("undo modify (-want +got):\n%s", diff)
	}
	if s.Annotations[1].IsBold {
		t.Error("undo touched the wrong annotation")
	}
	if s.Current != 0 {
		t.Errorf("Current = %d, want the restored annotation 0", s.Current)
	}
}

func TestDragChangesOnlyPosition(t *testing.T) {
	s := Add(newTestState(), "drag me", "go", 18)
	s = SetStyle(s, types.StyleItalic)
	s = SetAlignment(s, types.AlignLeft)
	before := s.Annotations[0]
	depth := s.History.UndoDepth()

	s = Deselect(s)
	s = BeginDrag(s, types.Point{X: 110, Y: 95}, 0)
	s = DragTo(s, types.Point{X: 150, Y: 120})
	s = DragTo(s, types.Point{X: 210, Y: 135})
	if got := s.History.UndoDepth(); got != depth {
		t.Fatalf("history recorded during drag: depth %d, want %d", got, depth)
	}
	s = EndDrag(s)

	want := before
	want.X, want.Y = 200, 140
	if diff := cmp.Diff(want, s.Annotations[0]); diff != "" {
		t.Fatalf("dragged annotation (-want +got):\n%s", diff)
	}
	if got := s.History.UndoDepth(); got != depth+1 {
		t.Fatalf("UndoDepth = %d after drag, want %d", got, depth+1)
	}

	s = Undo(s)
	if diff := cmp.Diff(before, s.Annotations[0]); diff != "" {
		t.Errorf("undo drag (-want +got):\n%s", diff)
	}
}

func TestEditDuringDragRecordsMoveFirst(t *testing.T) {
	tests := []struct {
		name string
		edit func(State) State
		want func(types.Annotation) types.Annotation
	}{
		{
			name: "move",
			edit: func(s State) State { return Move(s, 8, 0) },
			want: func(a types.Annotation) types.Annotation {
				a.X, a.Y = 208, 200
				return a
			},
		},
		{
			name: "toggle bold",
			edit: func(s State) State { return ToggleStyle(s, types.StyleBold) },
			want: func(a types.Annotation) types.Annotation {
				a.X, a.Y = 200, 200
				a.IsBold = true
				return a
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Add(newTestState(), "drag me", "go", 16)
			original := s.Annotations[0]
			depth := s.History.UndoDepth()

			s = BeginDrag(s, types.Point{X: 105, Y: 95}, 0)
			s = DragTo(s, types.Point{X: 205, Y: 195})
			s = tt.edit(s)
			if s.Drag.Active {
				t.Fatal("drag still active after edit")
			}
			s = EndDrag(s)

			if diff := cmp.Diff(tt.want(original), s.Annotations[0]); diff != "" {
				t.Fatalf("after edit (-want +got):\n%s", diff)
			}
			if got := s.History.UndoDepth(); got != depth+2 {
				t.Fatalf("UndoDepth = %d, want %d", got, depth+2)
			}
			s = Undo(Undo(s))
			if diff := cmp.Diff(original, s.Annotations[0]); diff != "" {
				t.Errorf("after undoing both (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectDuringDragRecordsMove(t *testing.T) {
	s := Add(Add(newTestState(), "a", "go", 16), "b", "go", 16)
	original := s.Annotations[0]
	depth := s.History.UndoDepth()

	s = BeginDrag(s, types.Point{X: 105, Y: 95}, 0)
	s = DragTo(s, types.Point{X: 205, Y: 195})
	s = Select(s, 1)
	s = EndDrag(s)

	if got := s.History.UndoDepth(); got != depth+1 {
		t.Fatalf("UndoDepth = %d, want %d", got, depth+1)
	}
	if got := s.Annotations[0].Position(); got != (types.Point{X: 200, Y: 200}) {
		t.Fatalf("dragged position = %v, want (200, 200)", got)
	}
	s = Undo(s)
	if diff := cmp.Diff(original, s.Annotations[0]); diff != "" {
		t.Errorf("undo move (-want +got):\n%s", diff)
	}
}

func TestDeleteDuringDragRecordsMoveFirst(t *testing.T) {
	s := Add(newTestState(), "drag me", "go", 16)
	original := s.Annotations[0]
	depth := s.History.UndoDepth()

	s = BeginDrag(s, types.Point{X: 105, Y: 95}, 0)
	s = DragTo(s, types.Point{X: 205, Y: 195})
	s = Delete(s)
	if len(s.Annotations) != 0 {
		t.Fatalf("len = %d after delete, want 0", len(s.Annotations))
	}
	if got := s.History.UndoDepth(); got != depth+2 {
		t.Fatalf("UndoDepth = %d, want %d", got, depth+2)
	}

	dragged := original
	dragged.X, dragged.Y = 200, 200
	s = Undo(s)
	if diff := cmp.Diff([]types.Annotation{dragged}, s.Annotations); diff != "" {
		t.Fatalf("undo delete (-want +got):\n%s", diff)
	}
	s = Undo(s)
	if diff := cmp.Diff([]types.Annotation{original}, s.Annotations); diff != "" {
		t.Errorf("undo move (-want +got):\n%s", diff)
	}
}

func TestDragWithoutMovementRecordsNothing(t *testing.T) {
	s := Add(newTestState(), "x", "", 0)
	depth := s.History.UndoDepth()
	s = EndDrag(BeginDrag(s, types.Point{X: 101, Y: 99}, NoSelection))
	if s.History.UndoDepth() != depth {
		t.Errorf("click without drag recorded a move")
	}
}

func TestDragWithoutTargetIsNoOp(t *testing.T) {
	s := Deselect(Add(newTestState(), "x", "", 0))
	s = BeginDrag(s, types.Point{X: 5, Y: 5}, NoSelection)
	if s.Drag.Active {
		t.Fatal("drag started without a selection or hit")
	}
	s = EndDrag(DragTo(s, types.Point{X: 50, Y: 50}))
	if s.Annotations[0].X != 100 || s.Annotations[0].Y != 100 {
		t.Errorf("annotation moved to %v", s.Annotations[0].Position())
	}
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	s := Add(Add(newTestState(), "a", "", 0), "b", "", 0)
	snapshot := s
	want := append([]types.Annotation(nil), s.Annotations...)

	for _, c := range []Command{
		{Kind: CmdToggleBold},
		{Kind: CmdMove, DX: 3},
		{Kind: CmdDelete},
		{Kind: CmdUndo},
		{Kind: CmdUndo},
		{Kind: CmdRedo},
	} {
		s = Apply(s, c)
	}

	if diff := cmp.Diff(want, snapshot.Annotations); diff != "" {
		t.Errorf("earlier state was modified (-want +got):\n%s", diff)
	}
	if snapshot.History.UndoDepth() != 2 || snapshot.History.CanRedo() {
		t.Errorf("earlier history was modified: undo=%d redo=%d",
			snapshot.History.UndoDepth(), snapshot.History.RedoDepth())
	}
}

func TestSelectCycling(t *testing.T) {
	s := Deselect(Add(Add(Add(newTestState(), "a", "", 0), "b", "", 0), "c", "", 0))

	var got []int
	for i := 0; i < 4; i++ {
		s = SelectNext(s)
		got = append(got, s.Current)
	}
	for i := 0; i < 2; i++ {
		s = SelectPrev(s)
		got = append(got, s.Current)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 0, 2, 1}, got); diff != "" {
		t.Errorf("selection order (-want +got):\n%s", diff)
	}
}

func TestReplaceClearsHistory(t *testing.T) {
	s := Add(newTestState(), "old", "", 0)
	s = Replace(s, []types.Annotation{{Text: "loaded", Font: "go", FontSize: 10}})
	if s.History.CanUndo() || s.History.CanRedo() || s.HasSelection() {
		t.Errorf("Replace kept history or selection")
	}
	if len(s.Annotations) != 1 || s.Annotations[0].Text != "loaded" {
		t.Errorf("Replace list = %+v", s.Annotations)
	}
}
