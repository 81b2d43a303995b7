package input

// Action is a front-end operation decoded from a key event.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown   Action = iota
	ActionQuit             // Esc: clears the selection first, then quits
	ActionForceQuit        // Quit without checking modified status
	ActionSave

	// --- Annotation edits ---
	ActionAdd // enters Insert mode to type the text
	ActionDelete
	ActionToggleBold
	ActionToggleItalic
	ActionToggleUnderline
	ActionNextFont
	ActionPrevFont
	ActionFontBigger
	ActionFontSmaller
	ActionAlignLeft
	ActionAlignCenter
	ActionAlignRight
	ActionUndo
	ActionRedo

	// --- Position and selection ---
	ActionNudgeUp
	ActionNudgeDown
	ActionNudgeLeft
	ActionNudgeRight
	ActionSelectNext
	ActionSelectPrev

	// --- Text entry (Insert and Command modes) ---
	ActionInsertRune
	ActionInsertNewLine
	ActionDeleteCharBackward

	ActionEnterCommandMode
)

var actionNames = map[Action]string{
	ActionUnknown:            "unknown",
	ActionQuit:               "quit",
	ActionForceQuit:          "force-quit",
	ActionSave:               "save",
	ActionAdd:                "add",
	ActionDelete:             "delete",
	ActionToggleBold:         "toggle-bold",
	ActionToggleItalic:       "toggle-italic",
	ActionToggleUnderline:    "toggle-underline",
	ActionNextFont:           "next-font",
	ActionPrevFont:           "prev-font",
	ActionFontBigger:         "font-bigger",
	ActionFontSmaller:        "font-smaller",
	ActionAlignLeft:          "align-left",
	ActionAlignCenter:        "align-center",
	ActionAlignRight:         "align-right",
	ActionUndo:               "undo",
	ActionRedo:               "redo",
	ActionNudgeUp:            "nudge-up",
	ActionNudgeDown:          "nudge-down",
	ActionNudgeLeft:          "nudge-left",
	ActionNudgeRight:         "nudge-right",
	ActionSelectNext:         "select-next",
	ActionSelectPrev:         "select-prev",
	ActionInsertRune:         "insert-rune",
	ActionInsertNewLine:      "insert-newline",
	ActionDeleteCharBackward: "delete-char-backward",
	ActionEnterCommandMode:   "command-mode",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent is a decoded key event. Rune is set for rune keys, so modes
// that take text can use it even when Normal mode binds the key.
type ActionEvent struct {
	Action Action
	Rune   rune
}

// PointerKind classifies a left-button mouse event.
type PointerKind int

const (
	PointerNone PointerKind = iota
	PointerPress
	PointerDrag
	PointerRelease
)

// PointerEvent is a decoded mouse event in screen cells.
type PointerEvent struct {
	Kind     PointerKind
	Col, Row int
}
