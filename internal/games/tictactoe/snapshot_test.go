package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMessage(t *testing.T) {
	won := func(m Mark) Result { return Result{Status: StatusWon, Winner: m} }
	tied := Result{Status: StatusTied}

	tests := []struct {
		name  string
		round Round
		want  string
	}{
		{"pvp X to move", Round{Turn: X}, "Player X's turn"},
		{"pvp O to move", Round{Turn: O}, "Player O's turn"},
		{"pvp O wins", Round{Turn: O, Result: won(O)}, "Player O wins!"},
		{"pvp tie", Round{Turn: X, Result: tied}, "It's a tie!"},
		{"cpu human to move", Round{Mode: ModeHumanVsComputer, Human: O, Turn: O}, "Your turn"},
		{"cpu computer to move", Round{Mode: ModeHumanVsComputer, Human: O, Turn: X}, "Computer's turn"},
		{"cpu human wins", Round{Mode: ModeHumanVsComputer, Human: O, Result: won(O)}, "You win!"},
		{"cpu computer wins", Round{Mode: ModeHumanVsComputer, Human: O, Result: won(X)}, "Computer wins!"},
		{"cpu tie", Round{Mode: ModeHumanVsComputer, Human: X, Result: tied}, "It's a tie!"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusMessage(tc.round))
		})
	}
}

func TestVisibleStateIsACopy(t *testing.T) {
	c, _ := newTestController(Options{})
	play(c, 0, 1, 4, 2, 8)

	vs := c.VisibleState()
	vs.WinningLine[0] = 7
	vs.Moves[0] = 7

	again := c.VisibleState()
	assert.Equal(t, []int{0, 4, 8}, again.WinningLine)
	assert.Equal(t, 0, again.Moves[0])
}

func TestParseModeAndDifficulty(t *testing.T) {
	for in, want := range map[string]Mode{"pvp": ModeHumanVsHuman, "CPU": ModeHumanVsComputer, " computer ": ModeHumanVsComputer} {
		got, err := ParseMode(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("online")
	assert.Error(t, err)

	for in, want := range map[string]Difficulty{"easy": Easy, "normal": Medium, "Hard": Hard} {
		got, err := ParseDifficulty(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err = ParseDifficulty("impossible")
	assert.Error(t, err)

	assert.Equal(t, Medium, Easy.Next())
	assert.Equal(t, Easy, Hard.Next())
}
