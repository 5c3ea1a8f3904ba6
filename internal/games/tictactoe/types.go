package tictactoe

import (
	"fmt"
	"strings"
)

// Mode selects who plays the second seat.
type Mode int

const (
	// ModeHumanVsHuman has two humans sharing the same input.
	ModeHumanVsHuman Mode = iota

	// ModeHumanVsComputer pits the human against the move selector.
	ModeHumanVsComputer
)

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeHumanVsHuman:
		return "pvp"
	case ModeHumanVsComputer:
		return "cpu"
	default:
		return "unknown"
	}
}

// Label returns a display name for the mode.
func (m Mode) Label() string {
	switch m {
	case ModeHumanVsHuman:
		return "Human vs Human"
	case ModeHumanVsComputer:
		return "Human vs Computer"
	default:
		return "Unknown"
	}
}

// ParseMode accepts "pvp"/"hvh"/"human" and "cpu"/"hvc"/"computer".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pvp", "hvh", "human":
		return ModeHumanVsHuman, nil
	case "cpu", "hvc", "computer":
		return ModeHumanVsComputer, nil
	}
	return ModeHumanVsHuman, fmt.Errorf("tictactoe: unknown mode %q", s)
}

// Difficulty is the computer strength tier. Only meaningful in
// ModeHumanVsComputer.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// String returns the config name of the tier.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Next cycles easy -> medium -> hard -> easy.
func (d Difficulty) Next() Difficulty {
	switch d {
	case Easy:
		return Medium
	case Medium:
		return Hard
	default:
		return Easy
	}
}

// ParseDifficulty parses a tier name. "normal" is accepted for medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium", "normal":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("tictactoe: unknown difficulty %q", s)
}
