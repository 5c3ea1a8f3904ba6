package tictactoe

import "fmt"

// VisibleState is a read-only snapshot of everything the presentation
// layer needs to draw the board, the controls and the status line.
type VisibleState struct {
	Board         Board
	CurrentTurn   Mark
	Status        Status
	Winner        Mark  // set only when Status is StatusWon
	WinningLine   []int // nil unless Status is StatusWon
	Mode          Mode
	Difficulty    Difficulty
	PlayerSymbol  Mark // mark of the round on screen
	NextSymbol    Mark // mark the next round starts with
	Scoreboard    Scoreboard
	StatusMessage string
	Moves         []int

	// ComputerThinking is true while a computer move is scheduled.
	ComputerThinking bool
}

// VisibleState returns a snapshot of the current round and scores.
func (c *Controller) VisibleState() VisibleState {
	c.mu.Lock()
	defer c.mu.Unlock()

	r := c.round
	vs := VisibleState{
		Board:            r.Board,
		CurrentTurn:      r.Turn,
		Status:           r.Result.Status,
		Mode:             r.Mode,
		Difficulty:       r.Difficulty,
		PlayerSymbol:     r.Human,
		NextSymbol:       c.nextHuman,
		Scoreboard:       c.scores.Scoreboard(),
		StatusMessage:    StatusMessage(r),
		Moves:            append([]int(nil), r.Moves...),
		ComputerThinking: c.pending != nil,
	}
	if r.Result.Status == StatusWon {
		vs.Winner = r.Result.Winner
		vs.WinningLine = []int{r.Result.Line[0], r.Result.Line[1], r.Result.Line[2]}
	}
	return vs
}

// StatusMessage derives the status line for a round. Against the computer
// the text is phrased from the human's side.
func StatusMessage(r Round) string {
	if r.Mode == ModeHumanVsComputer {
		switch r.Result.Status {
		case StatusWon:
			if r.Result.Winner == r.Human {
				return "You win!"
			}
			return "Computer wins!"
		case StatusTied:
			return "It's a tie!"
		}
		if r.Turn == r.Human {
			return "Your turn"
		}
		return "Computer's turn"
	}

	switch r.Result.Status {
	case StatusWon:
		return fmt.Sprintf("Player %s wins!", r.Result.Winner)
	case StatusTied:
		return "It's a tie!"
	}
	return fmt.Sprintf("Player %s's turn", r.Turn)
}
