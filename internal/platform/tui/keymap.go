package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Place       key.Binding
	Cell        key.Binding
	Mode        key.Binding
	Difficulty  key.Binding
	PlayX       key.Binding
	PlayO       key.Binding
	Reset       key.Binding
	ResetScores key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Place, k.Cell, k.Reset, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Place, k.Cell, k.Reset, k.ResetScores},
		{k.Mode, k.Difficulty, k.PlayX, k.PlayO},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "move right"),
		),
		Place: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "place"),
		),
		Cell: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "place on cell"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle mode"),
		),
		Difficulty: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "difficulty"),
		),
		PlayX: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "play as X"),
		),
		PlayO: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "play as O"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new round"),
		),
		ResetScores: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear scores"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// For the digit keys it also returns the addressed cell; otherwise cell is -1.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, cell int) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, -1
	case key.Matches(msg, k.Up):
		return core.ActionUp, -1
	case key.Matches(msg, k.Down):
		return core.ActionDown, -1
	case key.Matches(msg, k.Left):
		return core.ActionLeft, -1
	case key.Matches(msg, k.Right):
		return core.ActionRight, -1
	case key.Matches(msg, k.Place):
		return core.ActionPlace, -1
	case key.Matches(msg, k.Cell):
		return core.ActionPlace, int(msg.String()[0] - '1')
	case key.Matches(msg, k.Mode):
		return core.ActionToggleMode, -1
	case key.Matches(msg, k.Difficulty):
		return core.ActionCycleDifficulty, -1
	case key.Matches(msg, k.PlayX):
		return core.ActionPlayX, -1
	case key.Matches(msg, k.PlayO):
		return core.ActionPlayO, -1
	case key.Matches(msg, k.Reset):
		return core.ActionReset, -1
	case key.Matches(msg, k.ResetScores):
		return core.ActionResetScores, -1
	case key.Matches(msg, k.Help):
		return core.ActionHelp, -1
	}
	return core.ActionNone, -1
}
