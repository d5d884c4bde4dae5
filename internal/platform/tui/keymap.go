package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shapecast/internal/core"
)

// DemoKeyMap defines the key bindings of the interactive demo.
type DemoKeyMap struct {
	NextScene  key.Binding
	PrevScene  key.Binding
	Rotate     key.Binding
	ToggleAuto key.Binding
	Reset      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k DemoKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextScene, k.Rotate, k.Reset, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k DemoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextScene, k.PrevScene},
		{k.Rotate, k.ToggleAuto},
		{k.Reset, k.Help, k.Quit},
	}
}

// DefaultDemoKeyMap returns default key bindings.
func DefaultDemoKeyMap() DemoKeyMap {
	return DemoKeyMap{
		NextScene: key.NewBinding(
			key.WithKeys("n", "tab"),
			key.WithHelp("n/tab", "next scene"),
		),
		PrevScene: key.NewBinding(
			key.WithKeys("p", "shift+tab"),
			key.WithHelp("p/S-tab", "prev scene"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rotate slopes"),
		),
		ToggleAuto: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto rotate"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x", "backspace"),
			key.WithHelp("x", "drop box"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea messages to demo input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys DemoKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultDemoKeyMap()}
}

// Keys exposes the bindings for the help view.
func (km *KeyMapper) Keys() DemoKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.NextScene):
		return core.ActionNextScene, false
	case key.Matches(msg, k.PrevScene):
		return core.ActionPrevScene, false
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate, false
	case key.Matches(msg, k.ToggleAuto):
		return core.ActionToggleAuto, false
	case key.Matches(msg, k.Reset):
		return core.ActionReset, false
	case key.Matches(msg, k.Help):
		return core.ActionHelp, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a mouse event in the frame.
// Only the left button presses. Terminals without SGR mouse mode report
// releases without a button, so any release counts. Edges accumulate until
// the frame is cleared so a quick click inside one tick is not lost.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	frame.MoveTo(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			frame.Pointer.Pressed = true
		}
	case tea.MouseActionRelease:
		frame.Pointer.Released = true
	}
}
