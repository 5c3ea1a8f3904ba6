package tictactoe

import (
	"fmt"
	"math/rand"
)

// Strategy picks a move for computer on a board that has at least one empty
// cell. Strategies never modify shared state; rng is only used for
// tie-breaking random choices.
type Strategy func(b Board, computer, human Mark, rng *rand.Rand) int

// strategies dispatches each tier to its move function.
var strategies = map[Difficulty]Strategy{
	Easy:   RandomMove,
	Medium: HeuristicMove,
	Hard:   SearchMove,
}

// SelectMove returns the index the computer plays at the given tier.
// It fails with ErrNoLegalMove when the board is full.
func SelectMove(b Board, computer, human Mark, tier Difficulty, rng *rand.Rand) (int, error) {
	if b.IsFull() {
		return -1, ErrNoLegalMove
	}
	strategy, ok := strategies[tier]
	if !ok {
		return -1, fmt.Errorf("tictactoe: no strategy for difficulty %d", tier)
	}
	return strategy(b, computer, human, rng), nil
}

// RandomMove picks uniformly among the empty cells.
func RandomMove(b Board, _, _ Mark, rng *rand.Rand) int {
	cells := b.EmptyCells()
	return cells[rng.Intn(len(cells))]
}

// HeuristicMove wins if it can, otherwise blocks, otherwise takes the
// center, otherwise plays randomly.
func HeuristicMove(b Board, computer, human Mark, rng *rand.Rand) int {
	if i, ok := winningMove(b, computer); ok {
		return i
	}
	if i, ok := winningMove(b, human); ok {
		return i
	}
	if b[Center] == Empty {
		return Center
	}
	return RandomMove(b, computer, human, rng)
}

// winningMove returns the lowest empty index that completes a line for mark.
func winningMove(b Board, mark Mark) (int, bool) {
	for _, i := range b.EmptyCells() {
		next := b
		next[i] = mark
		if _, ok := FindWin(next, mark); ok {
			return i, true
		}
	}
	return -1, false
}
