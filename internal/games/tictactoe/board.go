// Package tictactoe implements the 3x3 tic-tac-toe rules engine and the
// computer opponent. It has no UI dependencies; the platform layer drives it
// through the Controller entry points and renders from VisibleState.
package tictactoe

import (
	"errors"
	"fmt"
)

// BoardSize is the number of cells on the board.
const BoardSize = 9

// Center is the index of the middle cell.
const Center = 4

// Errors returned by board and move selection operations.
var (
	ErrInvalidMove = errors.New("tictactoe: invalid move")
	ErrNoLegalMove = errors.New("tictactoe: no legal move")
)

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns "X", "O" or a blank for an empty cell.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ParseMark parses "x" or "o" (any case).
func ParseMark(s string) (Mark, error) {
	switch s {
	case "x", "X":
		return X, nil
	case "o", "O":
		return O, nil
	}
	return Empty, fmt.Errorf("tictactoe: unknown symbol %q", s)
}

// Board is the 3x3 grid stored row-major, indices 0-8.
type Board [BoardSize]Mark

// EmptyBoard returns a board with every cell empty.
func EmptyBoard() Board {
	return Board{}
}

// Place returns a copy of the board with mark set at index.
// The receiver is never modified.
func (b Board) Place(index int, mark Mark) (Board, error) {
	if index < 0 || index >= BoardSize {
		return b, fmt.Errorf("%w: index %d out of range", ErrInvalidMove, index)
	}
	if b[index] != Empty {
		return b, fmt.Errorf("%w: cell %d occupied by %s", ErrInvalidMove, index, b[index])
	}
	b[index] = mark
	return b, nil
}

// At returns the mark at index, or Empty for out-of-range indices.
func (b Board) At(index int) Mark {
	if index < 0 || index >= BoardSize {
		return Empty
	}
	return b[index]
}

// IsFull reports whether no cell is empty.
func (b Board) IsFull() bool {
	for _, m := range b {
		if m == Empty {
			return false
		}
	}
	return true
}

// EmptyCells returns the indices of all empty cells in ascending order.
func (b Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, m := range b {
		if m == Empty {
			cells = append(cells, i)
		}
	}
	return cells
}

// Count returns how many cells hold mark.
func (b Board) Count(mark Mark) int {
	n := 0
	for _, m := range b {
		if m == mark {
			n++
		}
	}
	return n
}
