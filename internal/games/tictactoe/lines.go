package tictactoe

// Line is a triple of cell indices that wins when held by one mark.
type Line [3]int

// WinningLines lists every winning line: rows, then columns, then diagonals.
// FindWin reports the first match in this order.
var WinningLines = [8]Line{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Contains reports whether index is part of the line.
func (l Line) Contains(index int) bool {
	return l[0] == index || l[1] == index || l[2] == index
}

// FindWin returns the first line fully held by mark.
func FindWin(b Board, mark Mark) (Line, bool) {
	if mark == Empty {
		return Line{}, false
	}
	for _, ln := range WinningLines {
		if b[ln[0]] == mark && b[ln[1]] == mark && b[ln[2]] == mark {
			return ln, true
		}
	}
	return Line{}, false
}

// Status is the coarse state of a round.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusTied
)

// String returns a lowercase name for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in-progress"
	case StatusWon:
		return "won"
	case StatusTied:
		return "tied"
	default:
		return "unknown"
	}
}

// Result is the evaluation of a board. Winner and Line are set only when
// Status is StatusWon.
type Result struct {
	Status Status
	Winner Mark
	Line   Line
}

// Terminal reports whether the round is over.
func (r Result) Terminal() bool {
	return r.Status != StatusInProgress
}

// Evaluate computes the result of a board. X is checked before O so that
// the answer is deterministic even for boards unreachable in play.
func Evaluate(b Board) Result {
	if ln, ok := FindWin(b, X); ok {
		return Result{Status: StatusWon, Winner: X, Line: ln}
	}
	if ln, ok := FindWin(b, O); ok {
		return Result{Status: StatusWon, Winner: O, Line: ln}
	}
	if b.IsFull() {
		return Result{Status: StatusTied}
	}
	return Result{Status: StatusInProgress}
}
