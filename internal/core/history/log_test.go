package history

import (
	"testing"

	"github.com/bethropolis/inkpad/internal/types"
)

func rec(text string) Record {
	return Record{Type: AddAction, After: types.Annotation{Text: text}}
}

func TestLog_UndoRedoMovesRecords(t *testing.T) {
	l := New(0).Record(rec("a")).Record(rec("b"))

	r, l, ok := l.Undo()
	if !ok || r.After.Text != "b" {
		t.Fatalf("Undo() = %q, %v; want b, true", r.After.Text, ok)
	}
	if l.UndoDepth() != 1 || l.RedoDepth() != 1 {
		t.Fatalf("depths after undo = %d/%d, want 1/1", l.UndoDepth(), l.RedoDepth())
	}

	r, l, ok = l.Redo()
	if !ok || r.After.Text != "b" {
		t.Fatalf("Redo() = %q, %v; want b, true", r.After.Text, ok)
	}
	if l.UndoDepth() != 2 || l.RedoDepth() != 0 {
		t.Fatalf("depths after redo = %d/%d, want 2/0", l.UndoDepth(), l.RedoDepth())
	}
}

func TestLog_EmptyStacks(t *testing.T) {
	l := New(10)
	if _, _, ok := l.Undo(); ok {
		t.Error("Undo on empty log reported ok")
	}
	if _, _, ok := l.Redo(); ok {
		t.Error("Redo on empty log reported ok")
	}
}

func TestLog_RecordClearsRedo(t *testing.T) {
	l := New(0).Record(rec("a"))
	_, l, _ = l.Undo()
	l = l.Record(rec("b"))
	if l.CanRedo() {
		t.Fatal("redo stack survived a new record")
	}
}

func TestLog_EvictsOldest(t *testing.T) {
	l := New(3)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		l = l.Record(rec(s))
	}
	got := l.UndoRecords()
	if len(got) != 3 {
		t.Fatalf("kept %d records, want 3", len(got))
	}
	if got[0].After.Text != "c" || got[2].After.Text != "e" {
		t.Errorf("kept %q..%q, want c..e", got[0].After.Text, got[2].After.Text)
	}
}

func TestLog_ValueSemantics(t *testing.T) {
	base := New(0).Record(rec("a")).Record(rec("b"))
	_, undone, _ := base.Undo()

	// Branching off an older log must not disturb either branch.
	left := undone.Record(rec("left"))
	right := undone.Record(rec("right"))

	if base.UndoDepth() != 2 || base.CanRedo() {
		t.Fatalf("base changed: undo=%d redo=%d", base.UndoDepth(), base.RedoDepth())
	}
	if got := left.UndoRecords()[1].After.Text; got != "left" {
		t.Errorf("left branch top = %q, want left", got)
	}
	if got := right.UndoRecords()[1].After.Text; got != "right" {
		t.Errorf("right branch top = %q, want right", got)
	}
	if !undone.CanRedo() {
		t.Error("undone log lost its redo record")
	}
}
