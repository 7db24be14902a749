package modehandler

import (
	"unicode/utf8"

	"github.com/bethropolis/postfmt/internal/input"
	"github.com/bethropolis/postfmt/internal/logger"
)

// handleActionFind handles actions when in ModeFind.
func (mh *ModeHandler) handleActionFind(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.findBuffer += string(actionEvent.Rune)

	case input.ActionDeleteCharBackward:
		if mh.findBuffer == "" {
			mh.cancelFindMode()
			return true
		}
		_, size := utf8.DecodeLastRuneInString(mh.findBuffer)
		mh.findBuffer = mh.findBuffer[:len(mh.findBuffer)-size]

	case input.ActionInsertNewLine: // Enter key: Execute search
		term := mh.findBuffer
		mh.leavePrompt()
		if term == "" {
			mh.editor.ClearSearchHighlights()
			return true
		}
		mh.lastSearchTerm = term
		mh.lastSearchForward = true
		mh.executeFind(term)
		return true

	case input.ActionQuit:
		mh.cancelFindMode()
		return true

	default:
		return false
	}

	mh.statusBar.SetPrompt("/" + mh.findBuffer)
	return true
}

// cancelFindMode leaves find mode without searching.
func (mh *ModeHandler) cancelFindMode() {
	mh.leavePrompt()
	mh.editor.ClearSearchHighlights()
	logger.DebugTagf("mode", "Canceled find mode")
}

// executeFind highlights every match of term and jumps to the first one
// at or after the cursor.
func (mh *ModeHandler) executeFind(term string) {
	foundPos, found, err := mh.editor.Find(term)
	if err != nil {
		mh.statusBar.SetTemporaryMessage("Find failed: %v", err)
		return
	}
	if !found {
		mh.statusBar.SetTemporaryMessage("Pattern not found: %s", term)
		return
	}
	mh.editor.ScrollToCursor()
	mh.statusBar.SetTemporaryMessage("Found %d match(es) for '%s'", len(mh.editor.GetSearchHighlights()), term)
	logger.DebugTagf("mode", "Found '%s' at %v", term, foundPos)
}

// findAgain jumps to the next or previous match of the last search.
func (mh *ModeHandler) findAgain(forward bool) bool {
	if mh.lastSearchTerm == "" {
		mh.statusBar.SetTemporaryMessage("No previous search term")
		return true
	}
	if len(mh.editor.GetSearchHighlights()) == 0 {
		mh.executeFind(mh.lastSearchTerm)
		return true
	}
	if _, found := mh.editor.FindNext(forward); !found {
		mh.statusBar.SetTemporaryMessage("Pattern not found: %s", mh.lastSearchTerm)
		return true
	}
	mh.editor.ScrollToCursor()
	return true
}
