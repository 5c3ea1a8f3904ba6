package tictactoe

import (
	"math"
	"math/rand"
)

// winScore is the value of an immediate win. Each ply of delay costs one
// point, so faster wins and slower losses score better.
const winScore = 10

// SearchMove runs a full minimax search with alpha-beta pruning and returns
// the best move for computer. Among equally scored moves the lowest index
// wins.
func SearchMove(b Board, computer, human Mark, _ *rand.Rand) int {
	best, bestScore := -1, math.MinInt
	alpha, beta := math.MinInt, math.MaxInt

	for _, i := range b.EmptyCells() {
		next := b
		next[i] = computer
		score := alphaBeta(next, 1, alpha, beta, false, computer, human)
		if score > bestScore {
			best, bestScore = i, score
		}
		alpha = max(alpha, bestScore)
	}
	return best
}

// alphaBeta scores b from the computer's point of view. depth is the number
// of plies already played since the decision point.
func alphaBeta(b Board, depth, alpha, beta int, maximizing bool, computer, human Mark) int {
	switch r := Evaluate(b); r.Status {
	case StatusWon:
		if r.Winner == computer {
			return winScore - depth
		}
		return depth - winScore
	case StatusTied:
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, i := range b.EmptyCells() {
			next := b
			next[i] = computer
			best = max(best, alphaBeta(next, depth+1, alpha, beta, false, computer, human))
			alpha = max(alpha, best)
			if alpha >= beta {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for _, i := range b.EmptyCells() {
		next := b
		next[i] = human
		best = min(best, alphaBeta(next, depth+1, alpha, beta, true, computer, human))
		beta = min(beta, best)
		if alpha >= beta {
			break
		}
	}
	return best
}
