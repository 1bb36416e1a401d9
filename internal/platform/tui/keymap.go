package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paddles/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	bindings map[string]core.Action
}

// NewKeyMapper creates a key mapper with the default bindings. WASD and the
// arrow keys both steer.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		bindings: map[string]core.Action{
			"ctrl+c": core.ActionQuit,
			"q":      core.ActionQuit,
			"w":      core.ActionUp,
			"up":     core.ActionUp,
			"s":      core.ActionDown,
			"down":   core.ActionDown,
			"a":      core.ActionLeft,
			"left":   core.ActionLeft,
			"d":      core.ActionRight,
			"right":  core.ActionRight,
			" ":      core.ActionServe,
			"enter":  core.ActionConfirm,
			"b":      core.ActionBack,
			"esc":    core.ActionBack,
			"p":      core.ActionPause,
			"r":      core.ActionRestart,
		},
	}
}

// MapKey returns the action bound to msg, or ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	if a, ok := km.bindings[msg.String()]; ok {
		return a
	}
	return core.ActionNone
}

// MapKeyToFrame adds the action bound to msg to frame. It reports whether
// the key asked to quit.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action := km.MapKey(msg)
	if action == core.ActionQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
