package tictactoe

// Outcome keys the scoreboard.
type Outcome int

const (
	OutcomeX Outcome = iota
	OutcomeO
	OutcomeTie
)

// String returns "X", "O" or "tie".
func (o Outcome) String() string {
	switch o {
	case OutcomeX:
		return "X"
	case OutcomeO:
		return "O"
	case OutcomeTie:
		return "tie"
	default:
		return "unknown"
	}
}

// OutcomeOf maps a terminal result to its scoreboard key.
// The second return value is false for rounds still in progress.
func OutcomeOf(r Result) (Outcome, bool) {
	switch r.Status {
	case StatusWon:
		if r.Winner == X {
			return OutcomeX, true
		}
		return OutcomeO, true
	case StatusTied:
		return OutcomeTie, true
	}
	return 0, false
}

// Scoreboard holds the win and tie counts across rounds.
type Scoreboard struct {
	X    int
	O    int
	Ties int
}

// Total returns the number of finished rounds counted.
func (s Scoreboard) Total() int {
	return s.X + s.O + s.Ties
}

// ScoreTracker accumulates outcomes. It is owned by a Controller, which
// serializes access; it is not safe for concurrent use on its own.
type ScoreTracker struct {
	board Scoreboard
}

// NewScoreTracker returns a tracker with all counts at zero.
func NewScoreTracker() *ScoreTracker {
	return &ScoreTracker{}
}

// Record increments the counter for outcome.
func (t *ScoreTracker) Record(o Outcome) {
	switch o {
	case OutcomeX:
		t.board.X++
	case OutcomeO:
		t.board.O++
	case OutcomeTie:
		t.board.Ties++
	}
}

// Reset zeroes every counter.
func (t *ScoreTracker) Reset() {
	t.board = Scoreboard{}
}

// Scoreboard returns a copy of the current counts.
func (t *ScoreTracker) Scoreboard() Scoreboard {
	return t.board
}
