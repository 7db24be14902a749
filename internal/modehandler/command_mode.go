package modehandler

import (
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/postfmt/internal/input"
	"github.com/bethropolis/postfmt/internal/logger"
)

// handleActionCommand handles actions when in ModeCommand.
func (mh *ModeHandler) handleActionCommand(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.cmdBuffer += string(actionEvent.Rune)

	case input.ActionDeleteCharBackward: // Backspace
		if mh.cmdBuffer == "" {
			mh.leavePrompt()
			return true
		}
		_, size := utf8.DecodeLastRuneInString(mh.cmdBuffer)
		mh.cmdBuffer = mh.cmdBuffer[:len(mh.cmdBuffer)-size]

	case input.ActionInsertNewLine: // Enter: Execute command
		cmd := mh.cmdBuffer
		mh.leavePrompt()
		mh.executeCommand(cmd)
		return true

	case input.ActionQuit: // Escape: Cancel command
		mh.leavePrompt()
		logger.DebugTagf("mode", "Canceled command mode")
		return true

	default:
		return false
	}

	mh.statusBar.SetPrompt(":" + mh.cmdBuffer)
	return true
}

// leavePrompt returns from command or find mode to normal mode.
func (mh *ModeHandler) leavePrompt() {
	mh.cmdBuffer = ""
	mh.findBuffer = ""
	mh.statusBar.SetPrompt("")
	mh.setMode(ModeNormal)
}

// executeCommand parses and runs a command line. "s/old/new/g" is split
// after the "s" so the pattern keeps its spaces.
func (mh *ModeHandler) executeCommand(cmdStr string) {
	cmdStr = strings.TrimSpace(cmdStr)
	if cmdStr == "" {
		return
	}
	if strings.HasPrefix(cmdStr, "s/") {
		mh.runCommand("s", []string{cmdStr[1:]})
		return
	}

	parts := strings.Fields(cmdStr)
	mh.runCommand(parts[0], parts[1:])
}

// runCommand runs a registered command and reports errors in the status bar.
func (mh *ModeHandler) runCommand(name string, args []string) {
	cmdFunc, exists := mh.commands[name]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", name)
		return
	}
	logger.DebugTagf("mode", "Executing command ':%s' with args %v", name, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", name, err)
		logger.Warnf("Command ':%s' failed: %v", name, err)
	}
}
