package modehandler

import (
	"errors"

	"github.com/bethropolis/postfmt/internal/buffer"
	"github.com/bethropolis/postfmt/internal/core"
	"github.com/bethropolis/postfmt/internal/input"
	"github.com/bethropolis/postfmt/internal/list"
	"github.com/bethropolis/postfmt/internal/logger"
	"github.com/bethropolis/postfmt/internal/style"
)

// styleActions maps formatting keys to style names.
var styleActions = map[input.Action]string{
	input.ActionBold:      style.Bold,
	input.ActionItalic:    style.Italic,
	input.ActionMonospace: style.Monospace,
	input.ActionUnderline: style.Underline,
}

// commandActions are keys that run a registered command.
var commandActions = map[input.Action]string{
	input.ActionAppendHashtags: "hashtags",
	input.ActionResetPost:      "reset",
	input.ActionCopyPost:       "copy",
	input.ActionExportPost:     "export",
	input.ActionToggleTheme:    "toggletheme",
}

// handleActionNormal handles actions when in ModeNormal.
func (mh *ModeHandler) handleActionNormal(actionEvent input.ActionEvent) bool {
	actionProcessed := true
	action := actionEvent.Action

	if name, ok := styleActions[action]; ok {
		mh.applyStyle(name)
		mh.forceQuitPending = false
		return true
	}
	if name, ok := commandActions[action]; ok {
		mh.runCommand(name, nil)
		mh.forceQuitPending = false
		return true
	}

	switch action {
	// Mode Switching
	case input.ActionEnterCommandMode:
		mh.editor.ClearSelection()
		mh.cmdBuffer = ""
		mh.setMode(ModeCommand)
		mh.statusBar.SetPrompt(":")

	case input.ActionEnterFindMode:
		mh.editor.ClearSelection()
		mh.findBuffer = ""
		mh.editor.ClearSearchHighlights()
		mh.setMode(ModeFind)
		mh.statusBar.SetPrompt("/")

	case input.ActionPickSuggestion:
		actionProcessed = mh.enterSuggestMode()

	// Quit/Save actions
	case input.ActionQuit: // ESC in Normal Mode
		switch {
		case len(mh.editor.GetSearchHighlights()) > 0:
			mh.editor.ClearSearchHighlights()
			mh.statusBar.SetTemporaryMessage("Highlights cleared")
		case mh.editor.HasSelection():
			mh.editor.ClearSelection()
		default:
			mh.RequestQuit(false)
		}
		return true
	case input.ActionForceQuit:
		mh.quit()
		actionProcessed = false

	case input.ActionSave:
		mh.editor.ClearSelection()
		if err := mh.editor.SaveBuffer(); err != nil {
			if errors.Is(err, buffer.ErrNoPath) {
				mh.statusBar.SetTemporaryMessage("No file name, use :w <path>")
			} else {
				mh.statusBar.SetTemporaryMessage("Save FAILED: %v", err)
			}
			logger.Warnf("Save failed: %v", err)
		} else {
			mh.statusBar.SetTemporaryMessage("Post saved to %s", mh.editor.GetBuffer().FilePath())
		}

	// Find Next/Previous
	case input.ActionFindNext:
		actionProcessed = mh.findAgain(mh.lastSearchForward)
	case input.ActionFindPrevious:
		actionProcessed = mh.findAgain(!mh.lastSearchForward)

	// Movement actions
	case input.ActionMoveUp, input.ActionMoveDown, input.ActionMoveLeft, input.ActionMoveRight,
		input.ActionMovePageUp, input.ActionMovePageDown, input.ActionMoveHome, input.ActionMoveEnd:
		mh.editor.ClearSelection()
		mh.move(action)
	case input.ActionSelectUp:
		mh.editor.StartOrUpdateSelection()
		mh.move(input.ActionMoveUp)
	case input.ActionSelectDown:
		mh.editor.StartOrUpdateSelection()
		mh.move(input.ActionMoveDown)
	case input.ActionSelectLeft:
		mh.editor.StartOrUpdateSelection()
		mh.move(input.ActionMoveLeft)
	case input.ActionSelectRight:
		mh.editor.StartOrUpdateSelection()
		mh.move(input.ActionMoveRight)
	case input.ActionSelectHome:
		mh.editor.StartOrUpdateSelection()
		mh.move(input.ActionMoveHome)
	case input.ActionSelectEnd:
		mh.editor.StartOrUpdateSelection()
		mh.move(input.ActionMoveEnd)
	case input.ActionSelectAll:
		mh.editor.SelectAll()

	// Clipboard actions
	case input.ActionCopy, input.ActionCut:
		copied, err := mh.editor.CopySelection()
		switch {
		case err != nil:
			mh.statusBar.SetTemporaryMessage("Copy failed: %v", err)
			logger.Warnf("Copy error: %v", err)
		case !copied:
			mh.statusBar.SetTemporaryMessage("Nothing selected to copy")
		case action == input.ActionCut:
			mh.report(mh.editor.DeleteBackward(), "Cut")
		default:
			mh.statusBar.SetTemporaryMessage("Selection copied")
		}

	case input.ActionPaste:
		pasted, err := mh.editor.Paste()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Paste failed: %v", err)
			logger.Warnf("Paste error: %v", err)
		} else if !pasted {
			mh.statusBar.SetTemporaryMessage("Clipboard empty - nothing to paste")
			actionProcessed = false
		}

	// Formatting
	case input.ActionBulletList:
		mh.report(mh.editor.ToggleList(list.Bullet), "Bullet list")
	case input.ActionNumberedList:
		mh.report(mh.editor.ToggleList(list.Numbered), "Numbered list")

	// Undo/Redo actions
	case input.ActionUndo:
		if !mh.editor.Undo() {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
		}
	case input.ActionRedo:
		if !mh.editor.Redo() {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
		}

	// Text Modification actions
	case input.ActionInsertRune:
		mh.report(mh.editor.InsertRune(actionEvent.Rune), "Insert")
	case input.ActionInsertNewLine:
		mh.report(mh.editor.InsertNewLine(), "Insert")
	case input.ActionDeleteCharBackward:
		mh.report(mh.editor.DeleteBackward(), "Delete")
	case input.ActionDeleteCharForward:
		mh.report(mh.editor.DeleteForward(), "Delete")

	default:
		actionProcessed = false
	}

	if action != input.ActionUnknown && actionProcessed {
		mh.forceQuitPending = false
	}
	return actionProcessed
}

func (mh *ModeHandler) move(action input.Action) {
	switch action {
	case input.ActionMoveUp:
		mh.editor.MoveCursor(-1, 0)
	case input.ActionMoveDown:
		mh.editor.MoveCursor(1, 0)
	case input.ActionMoveLeft:
		mh.editor.MoveCursor(0, -1)
	case input.ActionMoveRight:
		mh.editor.MoveCursor(0, 1)
	case input.ActionMovePageUp:
		mh.editor.PageMove(-1)
	case input.ActionMovePageDown:
		mh.editor.PageMove(1)
	case input.ActionMoveHome:
		mh.editor.Home()
	case input.ActionMoveEnd:
		mh.editor.End()
	}
}

func (mh *ModeHandler) applyStyle(name string) {
	err := mh.editor.ApplyStyle(name)
	if errors.Is(err, core.ErrNoSelection) {
		mh.statusBar.SetTemporaryMessage("Select text to apply %s", name)
		return
	}
	mh.report(err, "Style")
}

// report shows a failed edit in the status bar.
func (mh *ModeHandler) report(err error, what string) {
	if err == nil {
		return
	}
	mh.statusBar.SetTemporaryMessage("%s failed: %v", what, err)
	logger.Warnf("%s failed: %v", what, err)
}
