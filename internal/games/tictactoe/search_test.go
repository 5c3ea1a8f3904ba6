package tictactoe

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMoveAnswersCenterWithCorner(t *testing.T) {
	b := boardOf([]int{Center}, nil)
	got := SearchMove(b, O, X, nil)
	assert.Contains(t, []int{0, 2, 6, 8}, got)
	assert.Equal(t, 0, got, "first corner in index order")
}

func TestSearchMovePrefersImmediateWin(t *testing.T) {
	// X can win at 2 now or block at 5; winning is worth more.
	b := boardOf([]int{0, 1}, []int{3, 4})
	assert.Equal(t, 2, SearchMove(b, X, O, nil))
}

func TestSearchMoveHoldsDraw(t *testing.T) {
	b := boardOf([]int{0, 4}, []int{8})
	got := SearchMove(b, O, X, nil)
	next := b
	next[got] = O
	assert.False(t, humanCanWin(next, X, O, true), "reply %d loses", got)
}

func TestSearchMoveSingleCell(t *testing.T) {
	b := boardOf([]int{0, 2, 3, 7}, []int{1, 4, 5, 6})
	assert.Equal(t, 8, SearchMove(b, X, O, nil))
}

func TestHardNeverLoses(t *testing.T) {
	t.Run("computer plays X", func(t *testing.T) {
		next := EmptyBoard()
		next[SearchMove(next, X, O, nil)] = X
		assert.False(t, humanCanWin(next, O, X, true))
	})
	t.Run("computer plays O", func(t *testing.T) {
		assert.False(t, humanCanWin(EmptyBoard(), X, O, true))
	})
}

// humanCanWin reports whether any sequence of human moves beats the hard
// tier from b.
func humanCanWin(b Board, human, computer Mark, humanToMove bool) bool {
	if r := Evaluate(b); r.Terminal() {
		return r.Status == StatusWon && r.Winner == human
	}
	if !humanToMove {
		next := b
		next[SearchMove(b, computer, human, nil)] = computer
		return humanCanWin(next, human, computer, true)
	}
	for _, i := range b.EmptyCells() {
		next := b
		next[i] = human
		if humanCanWin(next, human, computer, false) {
			return true
		}
	}
	return false
}

func TestSearchMoveAnswersEveryOpening(t *testing.T) {
	corners := []int{0, 2, 6, 8}
	edges := []int{1, 3, 5, 7}

	for opening := 0; opening < BoardSize; opening++ {
		b := boardOf([]int{opening}, nil)
		reply := SearchMove(b, O, X, nil)
		require.Contains(t, b.EmptyCells(), reply)

		next := b
		next[reply] = O
		assert.False(t, humanCanWin(next, X, O, true), "opening %d, reply %d loses", opening, reply)

		switch {
		case slices.Contains(corners, opening):
			assert.Equal(t, Center, reply, "corner opening %d", opening)
		case opening == Center:
			assert.Contains(t, corners, reply)
		case slices.Contains(edges, reply):
			// Only the edge across the board holds an edge opening.
			assert.Equal(t, BoardSize-1-opening, reply, "edge opening %d", opening)
		}
	}
}
