package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skycat/internal/core"
	"github.com/vovakirdan/skycat/internal/game"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Start      key.Binding
	Jump       key.Binding
	StrongJump key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Jump, k.StrongJump, k.Restart, k.Help, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Jump, k.StrongJump},
		{k.Restart, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter/s", "start"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "j"),
			key.WithHelp("space/j", "jump"),
		),
		StrongJump: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "jump jump"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SetState enables only the bindings that make sense in state, so the help
// line follows the control panel.
func (k *KeyMap) SetState(state game.State) {
	k.Start.SetEnabled(state == game.NotStarted)
	k.Jump.SetEnabled(state == game.Running)
	k.StrongJump.SetEnabled(state == game.Running)
	k.Restart.SetEnabled(state == game.Dead)
}

// Action translates a key message to a game action. Disabled bindings never
// match. Screenshot is handled by the model and maps to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.StrongJump):
		return core.ActionStrongJump
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}
