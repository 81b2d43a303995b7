package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action
type RuneKeymap map[rune]Action
type ModKeymap map[tcell.ModMask]Keymap

// InputProcessor translates tcell events into ActionEvents and
// PointerEvents. It tracks the left button so motion can be told apart
// from dragging.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
	modKeymap  ModKeymap

	buttonDown bool
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
		modKeymap:  make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionNudgeUp
	p.keymap[tcell.KeyDown] = ActionNudgeDown
	p.keymap[tcell.KeyLeft] = ActionNudgeLeft
	p.keymap[tcell.KeyRight] = ActionNudgeRight
	p.keymap[tcell.KeyTab] = ActionSelectNext
	p.keymap[tcell.KeyBacktab] = ActionSelectPrev
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDelete
	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine

	// tcell reports Ctrl+letter as its own key with ModCtrl set.
	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlS] = ActionSave
	ctrlMap[tcell.KeyCtrlQ] = ActionForceQuit
	ctrlMap[tcell.KeyCtrlC] = ActionQuit
	ctrlMap[tcell.KeyCtrlN] = ActionAdd
	ctrlMap[tcell.KeyCtrlZ] = ActionUndo
	ctrlMap[tcell.KeyCtrlY] = ActionRedo
	ctrlMap[tcell.KeyCtrlR] = ActionRedo
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	p.runeKeymap[':'] = ActionEnterCommandMode
	p.runeKeymap['a'] = ActionAdd
	p.runeKeymap['x'] = ActionDelete
	p.runeKeymap['b'] = ActionToggleBold
	p.runeKeymap['i'] = ActionToggleItalic
	p.runeKeymap['u'] = ActionToggleUnderline
	p.runeKeymap['f'] = ActionNextFont
	p.runeKeymap['F'] = ActionPrevFont
	p.runeKeymap['+'] = ActionFontBigger
	p.runeKeymap['='] = ActionFontBigger
	p.runeKeymap['-'] = ActionFontSmaller
	p.runeKeymap['l'] = ActionAlignLeft
	p.runeKeymap['c'] = ActionAlignCenter
	p.runeKeymap['r'] = ActionAlignRight
}

// ProcessEvent maps a key event to its Normal-mode action. Unbound runes
// come back as ActionInsertRune; other modes read ActionEvent.Rune.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	if modKeyMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		// Some terminals omit ModCtrl; the key itself implies it.
		if action, ok := p.modKeymap[tcell.ModCtrl][key]; ok {
			return ActionEvent{Action: action}
		}
		mod &^= tcell.ModCtrl
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		if action, ok := p.runeKeymap[runeVal]; ok {
			return ActionEvent{Action: action, Rune: runeVal}
		}
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}

	return ActionEvent{Action: ActionUnknown}
}

// ProcessMouse maps a mouse event to a pointer event. Only the left
// button is used; wheel and motion without a press yield PointerNone.
func (p *InputProcessor) ProcessMouse(ev *tcell.EventMouse) PointerEvent {
	col, row := ev.Position()
	left := ev.Buttons()&tcell.Button1 != 0

	switch {
	case left && !p.buttonDown:
		p.buttonDown = true
		return PointerEvent{Kind: PointerPress, Col: col, Row: row}
	case left:
		return PointerEvent{Kind: PointerDrag, Col: col, Row: row}
	case p.buttonDown:
		p.buttonDown = false
		return PointerEvent{Kind: PointerRelease, Col: col, Row: row}
	}
	return PointerEvent{Kind: PointerNone, Col: col, Row: row}
}
