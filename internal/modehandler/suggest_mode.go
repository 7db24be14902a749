package modehandler

import (
	"github.com/bethropolis/postfmt/internal/input"
)

// enterSuggestMode starts picking from the hashtag suggestion strip.
func (mh *ModeHandler) enterSuggestMode() bool {
	if len(mh.statusBar.Suggestions()) == 0 {
		mh.statusBar.SetTemporaryMessage("No hashtag suggestions yet")
		return true
	}
	mh.editor.ClearSelection()
	mh.activeTag = 0
	mh.statusBar.SetActiveSuggestion(0)
	mh.setMode(ModeSuggest)
	return true
}

// handleActionSuggest handles actions when in ModeSuggest: Left/Right (or
// Tab) pick, Enter appends the picked tag, Esc leaves.
func (mh *ModeHandler) handleActionSuggest(actionEvent input.ActionEvent) bool {
	tags := mh.statusBar.Suggestions()
	if len(tags) == 0 {
		mh.leaveSuggestMode()
		return true
	}

	switch actionEvent.Action {
	case input.ActionMoveRight, input.ActionPickSuggestion:
		mh.activeTag = (mh.activeTag + 1) % len(tags)
	case input.ActionMoveLeft:
		mh.activeTag = (mh.activeTag - 1 + len(tags)) % len(tags)
	case input.ActionInsertNewLine:
		if mh.activeTag >= len(tags) {
			mh.activeTag = len(tags) - 1
		}
		tag := tags[mh.activeTag]
		mh.leaveSuggestMode()
		mh.editor.AppendTag(tag)
		mh.statusBar.SetTemporaryMessage("Added %s", tag)
		return true
	case input.ActionQuit:
		mh.leaveSuggestMode()
		return true
	default:
		return false
	}

	mh.statusBar.SetActiveSuggestion(mh.activeTag)
	return true
}

func (mh *ModeHandler) leaveSuggestMode() {
	mh.activeTag = 0
	mh.statusBar.SetActiveSuggestion(-1)
	mh.setMode(ModeNormal)
}
