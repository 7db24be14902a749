// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

// Define the set of possible editor actions.
const (
	// --- Meta Actions ---
	ActionUnknown   Action = iota // Default/invalid action
	ActionQuit                    // Esc: leaves a prompt, clears highlights, or quits
	ActionForceQuit               // Quit without checking modified status
	ActionSave

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line

	// --- Selection ---
	ActionSelectUp
	ActionSelectDown
	ActionSelectLeft
	ActionSelectRight
	ActionSelectHome
	ActionSelectEnd
	ActionSelectAll

	// --- Text Manipulation ---
	ActionInsertRune         // Requires Rune argument
	ActionInsertNewLine      // Enter
	ActionDeleteCharForward  // Delete key
	ActionDeleteCharBackward // Backspace key
	ActionCopy
	ActionCut
	ActionPaste

	// --- Formatting ---
	ActionBold
	ActionItalic
	ActionMonospace
	ActionUnderline
	ActionBulletList
	ActionNumberedList

	// --- History ---
	ActionUndo
	ActionRedo

	// --- Post ---
	ActionAppendHashtags // default hashtag block
	ActionResetPost
	ActionCopyPost
	ActionExportPost
	ActionToggleTheme
	ActionPickSuggestion // enter hashtag suggestion picking

	// --- Editor Mode ---
	ActionEnterCommandMode
	ActionEnterFindMode
	ActionFindNext
	ActionFindPrevious
)

var actionNames = map[Action]string{
	ActionQuit:             "quit",
	ActionForceQuit:        "force-quit",
	ActionSave:             "save",
	ActionSelectAll:        "select-all",
	ActionCopy:             "copy",
	ActionCut:              "cut",
	ActionPaste:            "paste",
	ActionBold:             "bold",
	ActionItalic:           "italic",
	ActionMonospace:        "monospace",
	ActionUnderline:        "underline",
	ActionBulletList:       "bullet-list",
	ActionNumberedList:     "numbered-list",
	ActionUndo:             "undo",
	ActionRedo:             "redo",
	ActionAppendHashtags:   "hashtags",
	ActionResetPost:        "reset",
	ActionCopyPost:         "copy-post",
	ActionExportPost:       "export",
	ActionToggleTheme:      "toggle-theme",
	ActionPickSuggestion:   "suggestions",
	ActionEnterCommandMode: "command",
	ActionEnterFindMode:    "find",
	ActionFindNext:         "find-next",
	ActionFindPrevious:     "find-previous",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
}
