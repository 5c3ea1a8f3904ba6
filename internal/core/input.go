// Package core provides platform-neutral types shared by the UI layers.
// It has no Bubble Tea dependency so input handling stays testable.
package core

// Action represents a semantic game action, abstracted from physical key
// presses. The TUI maps keys to actions and actions to controller calls.
type Action int

const (
	ActionNone            Action = iota
	ActionUp                     // Up arrow, k - move cursor up
	ActionDown                   // Down arrow, j - move cursor down
	ActionLeft                   // Left arrow, h - move cursor left
	ActionRight                  // Right arrow, l - move cursor right
	ActionPlace                  // Enter, Space - place mark under cursor
	ActionReset                  // R - start a new round
	ActionResetScores            // C - clear the scoreboard
	ActionToggleMode             // M - switch pvp / cpu
	ActionCycleDifficulty        // D - easy -> medium -> hard
	ActionPlayX                  // X - human plays X
	ActionPlayO                  // O - human plays O
	ActionHelp                   // ? - toggle full help
	ActionQuit                   // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPlace:
		return "Place"
	case ActionReset:
		return "Reset"
	case ActionResetScores:
		return "ResetScores"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionCycleDifficulty:
		return "CycleDifficulty"
	case ActionPlayX:
		return "PlayX"
	case ActionPlayO:
		return "PlayO"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Cursor is a position on the 3x3 grid.
type Cursor struct {
	Row, Col int
}

// CursorAt returns the cursor for a row-major cell index.
func CursorAt(index int) Cursor {
	return Cursor{Row: index / 3, Col: index % 3}
}

// Index returns the row-major cell index.
func (c Cursor) Index() int {
	return c.Row*3 + c.Col
}

// Move applies a directional action, clamping at the grid edges.
// Non-directional actions leave the cursor unchanged.
func (c Cursor) Move(a Action) Cursor {
	switch a {
	case ActionUp:
		c.Row = clamp(c.Row-1, 0, 2)
	case ActionDown:
		c.Row = clamp(c.Row+1, 0, 2)
	case ActionLeft:
		c.Col = clamp(c.Col-1, 0, 2)
	case ActionRight:
		c.Col = clamp(c.Col+1, 0, 2)
	}
	return c
}

// clamp restricts a value to be within [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
