package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fillets/internal/core"
)

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

func bind(action core.Action, keys ...string) actionBinding {
	return actionBinding{binding: key.NewBinding(key.WithKeys(keys...)), action: action}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// Bindings are checked in order; the first match wins.
type KeyMapper struct {
	quit  key.Binding
	game  []actionBinding
	menus []menuBinding
}

type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	menu := func(action MenuAction, keys ...string) menuBinding {
		return menuBinding{binding: key.NewBinding(key.WithKeys(keys...)), action: action}
	}
	return &KeyMapper{
		quit: key.NewBinding(key.WithKeys("ctrl+c", "q")),
		game: []actionBinding{
			bind(core.ActionUp, "w", "up"),
			bind(core.ActionDown, "s", "down"),
			bind(core.ActionLeft, "a", "left"),
			bind(core.ActionRight, "d", "right"),
			bind(core.ActionSwitch, " ", "space", "tab"),
			bind(core.ActionRestart, "r", "backspace"),
			bind(core.ActionSave, "f2"),
			bind(core.ActionLoad, "f3"),
			bind(core.ActionDemo, "f4"),
			bind(core.ActionConfirm, "enter"),
			bind(core.ActionBack, "b", "esc"),
			bind(core.ActionPause, "p"),
		},
		menus: []menuBinding{
			menu(MenuActionUp, "w", "up", "k"),
			menu(MenuActionDown, "s", "down", "j"),
			menu(MenuActionSelect, "enter", " ", "space"),
			menu(MenuActionBack, "b", "esc"),
			menu(MenuActionSolutions, "tab"),
		},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame records the key's action in frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionSolutions
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, km.quit) {
		return MenuActionQuit
	}
	for _, b := range km.menus {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}
