// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action        // For special keys (Enter, Arrows, Ctrl+letter)
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Shift, Alt)

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap    Keymap
	modKeymap ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:    make(Keymap),
		modKeymap: make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings. Every printable
// rune inserts, so commands live on Ctrl chords.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward // Often used for Backspace
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyTab] = ActionPickSuggestion
	p.keymap[tcell.KeyEscape] = ActionQuit // Primary quit action (checks modified)
	p.keymap[tcell.KeyF3] = ActionFindNext

	// --- Ctrl chords ---
	// The key code already implies Ctrl, so these live in the plain map.
	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlQ] = ActionForceQuit
	p.keymap[tcell.KeyCtrlA] = ActionSelectAll
	p.keymap[tcell.KeyCtrlC] = ActionCopy
	p.keymap[tcell.KeyCtrlX] = ActionCut
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlB] = ActionBold
	p.keymap[tcell.KeyCtrlT] = ActionItalic
	p.keymap[tcell.KeyCtrlO] = ActionMonospace
	p.keymap[tcell.KeyCtrlU] = ActionUnderline
	p.keymap[tcell.KeyCtrlL] = ActionBulletList
	p.keymap[tcell.KeyCtrlN] = ActionNumberedList
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlG] = ActionAppendHashtags
	p.keymap[tcell.KeyCtrlR] = ActionResetPost
	p.keymap[tcell.KeyCtrlK] = ActionCopyPost
	p.keymap[tcell.KeyCtrlE] = ActionExportPost
	p.keymap[tcell.KeyCtrlD] = ActionToggleTheme
	p.keymap[tcell.KeyCtrlP] = ActionEnterCommandMode
	p.keymap[tcell.KeyCtrlF] = ActionEnterFindMode

	// --- Shift: extend the selection ---
	shiftMap := make(Keymap)
	shiftMap[tcell.KeyUp] = ActionSelectUp
	shiftMap[tcell.KeyDown] = ActionSelectDown
	shiftMap[tcell.KeyLeft] = ActionSelectLeft
	shiftMap[tcell.KeyRight] = ActionSelectRight
	shiftMap[tcell.KeyHome] = ActionSelectHome
	shiftMap[tcell.KeyEnd] = ActionSelectEnd
	shiftMap[tcell.KeyF3] = ActionFindPrevious
	p.modKeymap[tcell.ModShift] = shiftMap
}

// ProcessEvent takes a tcell key event and returns the corresponding
// ActionEvent. Mode-specific interpretation is left to the caller.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// 1. Check Modifier + Key combinations
	if modKeyMap, modOk := p.modKeymap[mod]; modOk {
		if action, keyOk := modKeyMap[key]; keyOk {
			return ActionEvent{Action: action}
		}
	}
	// Ctrl+S arrives as KeyCtrlS with ModCtrl set; drop the redundant modifier.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	// 2. Check simple Key mappings
	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 3. Plain runes (Shift is allowed for capitals and symbols)
	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}

	// 4. No mapping found
	return ActionEvent{Action: ActionUnknown}
}
