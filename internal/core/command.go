package core

import "github.com/bethropolis/inkpad/internal/types"

// CommandKind identifies a store operation.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdAdd
	CmdDelete
	CmdToggleBold
	CmdToggleItalic
	CmdToggleUnderline
	CmdSetStyle
	CmdSetFont
	CmdSetFontSize
	CmdAlign
	CmdMove
	CmdUndo
	CmdRedo
	CmdSelect
	CmdSelectNext
	CmdSelectPrev
	CmdDeselect
	CmdDragBegin
	CmdDragTo
	CmdDragEnd
)

var commandNames = map[CommandKind]string{
	CmdNone:            "none",
	CmdAdd:             "add",
	CmdDelete:          "delete",
	CmdToggleBold:      "toggle-bold",
	CmdToggleItalic:    "toggle-italic",
	CmdToggleUnderline: "toggle-underline",
	CmdSetStyle:        "set-style",
	CmdSetFont:         "set-font",
	CmdSetFontSize:     "set-font-size",
	CmdAlign:           "align",
	CmdMove:            "move",
	CmdUndo:            "undo",
	CmdRedo:            "redo",
	CmdSelect:          "select",
	CmdSelectNext:      "select-next",
	CmdSelectPrev:      "select-prev",
	CmdDeselect:        "deselect",
	CmdDragBegin:       "drag-begin",
	CmdDragTo:          "drag-to",
	CmdDragEnd:         "drag-end",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is one UI action and its arguments. Only the fields used by
// Kind are read.
type Command struct {
	Kind      CommandKind
	Text      string          // CmdAdd
	Font      string          // CmdAdd, CmdSetFont
	Size      int             // CmdAdd, CmdSetFontSize
	Style     types.Style     // CmdSetStyle
	Alignment types.Alignment // CmdAlign
	DX, DY    float64         // CmdMove
	Point     types.Point     // CmdDragBegin, CmdDragTo
	Index     int             // CmdSelect; CmdDragBegin hit index
}

// Apply runs c against s and returns the resulting state. s is not modified.
func Apply(s State, c Command) State {
	switch c.Kind {
	case CmdAdd:
		return Add(s, c.Text, c.Font, c.Size)
	case CmdDelete:
		return Delete(s)
	case CmdToggleBold:
		return ToggleStyle(s, types.StyleBold)
	case CmdToggleItalic:
		return ToggleStyle(s, types.StyleItalic)
	case CmdToggleUnderline:
		return ToggleStyle(s, types.StyleUnderline)
	case CmdSetStyle:
		return SetStyle(s, c.Style)
	case CmdSetFont:
		return SetFont(s, c.Font)
	case CmdSetFontSize:
		return SetFontSize(s, c.Size)
	case CmdAlign:
		return SetAlignment(s, c.Alignment)
	case CmdMove:
		return Move(s, c.DX, c.DY)
	case CmdUndo:
		return Undo(s)
	case CmdRedo:
		return Redo(s)
	case CmdSelect:
		return Select(s, c.Index)
	case CmdSelectNext:
		return SelectNext(s)
	case CmdSelectPrev:
		return SelectPrev(s)
	case CmdDeselect:
		return Deselect(s)
	case CmdDragBegin:
		return BeginDrag(s, c.Point, c.Index)
	case CmdDragTo:
		return DragTo(s, c.Point)
	case CmdDragEnd:
		return EndDrag(s)
	}
	return s
}
