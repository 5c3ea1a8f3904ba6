package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

const cellWidth = 5

// Styles holds every lipgloss style of the game screen. They are built
// from a renderer so SSH sessions get the color profile of their client.
type Styles struct {
	Title    lipgloss.Style
	Grid     lipgloss.Style
	X        lipgloss.Style
	O        lipgloss.Style
	Empty    lipgloss.Style
	Win      lipgloss.Style
	Status   lipgloss.Style
	Finished lipgloss.Style
	Thinking lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Panel    lipgloss.Style
	Help     lipgloss.Style

	CursorBg lipgloss.Color
}

// NewStyles creates the game styles for the given renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	cell := r.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	return Styles{
		Title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Grid:     r.NewStyle().Foreground(lipgloss.Color("240")),
		X:        cell.Foreground(lipgloss.Color("9")).Bold(true),
		O:        cell.Foreground(lipgloss.Color("14")).Bold(true),
		Empty:    cell.Foreground(lipgloss.Color("238")),
		Win:      cell.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Bold(true),
		Status:   r.NewStyle().Foreground(lipgloss.Color("255")),
		Finished: r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Thinking: r.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Label:    r.NewStyle().Foreground(lipgloss.Color("245")),
		Value:    r.NewStyle().Foreground(lipgloss.Color("255")),
		Muted:    r.NewStyle().Foreground(lipgloss.Color("240")),
		Panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Help:     r.NewStyle().Foreground(lipgloss.Color("241")),
		CursorBg: lipgloss.Color("57"),
	}
}

// renderBoard draws the 3x3 grid. Empty cells show their number key; the
// winning line is highlighted once the round is won.
func (s Styles) renderBoard(vs tictactoe.VisibleState, cursor core.Cursor, showCursor bool) string {
	sep := s.Grid.Render(strings.Repeat("─", cellWidth) + "┼" + strings.Repeat("─", cellWidth) + "┼" + strings.Repeat("─", cellWidth))
	bar := s.Grid.Render("│")

	rows := make([]string, 0, 5)
	for r := 0; r < 3; r++ {
		cells := make([]string, 3)
		for c := 0; c < 3; c++ {
			i := r*3 + c
			onCursor := showCursor && cursor.Index() == i
			cells[c] = s.renderCell(vs.Board.At(i), i, slices.Contains(vs.WinningLine, i), onCursor)
		}
		rows = append(rows, strings.Join(cells, bar))
		if r < 2 {
			rows = append(rows, sep)
		}
	}
	return strings.Join(rows, "\n")
}

func (s Styles) renderCell(mark tictactoe.Mark, index int, winning, onCursor bool) string {
	var st lipgloss.Style
	text := mark.String()
	switch {
	case winning:
		st = s.Win
	case mark == tictactoe.X:
		st = s.X
	case mark == tictactoe.O:
		st = s.O
	default:
		st = s.Empty
		text = strconv.Itoa(index + 1)
	}
	if onCursor {
		st = st.Background(s.CursorBg)
	}
	return st.Render(text)
}

// renderStatus renders the status message and the thinking indicator.
func (s Styles) renderStatus(vs tictactoe.VisibleState) string {
	if vs.Status != tictactoe.StatusInProgress {
		return s.Finished.Render(vs.StatusMessage) + s.Muted.Render("  press r for a new round")
	}
	line := s.Status.Render(vs.StatusMessage)
	if vs.ComputerThinking {
		line += s.Thinking.Render("  thinking...")
	}
	return line
}

// renderSettings lists the current mode, difficulty and symbol.
func (s Styles) renderSettings(vs tictactoe.VisibleState) string {
	row := func(label, value string, active bool) string {
		v := s.Value.Render(value)
		if !active {
			v = s.Muted.Render(value)
		}
		return s.Label.Render(fmt.Sprintf("%-11s", label)) + v
	}
	cpu := vs.Mode == tictactoe.ModeHumanVsComputer
	symbol := vs.PlayerSymbol.String()
	if vs.NextSymbol != vs.PlayerSymbol {
		symbol += fmt.Sprintf(" (%s next round)", vs.NextSymbol)
	}
	return strings.Join([]string{
		row("Mode", vs.Mode.Label(), true),
		row("Difficulty", vs.Difficulty.String(), cpu),
		row("You play", symbol, cpu),
	}, "\n")
}

// renderHistory renders the moves of the round as cell numbers, e.g. "X5 O1 X9".
func (s Styles) renderHistory(moves []int) string {
	if len(moves) == 0 {
		return s.Muted.Render("No moves yet")
	}
	parts := make([]string, len(moves))
	mark := tictactoe.X
	for i, m := range moves {
		parts[i] = mark.String() + strconv.Itoa(m+1)
		mark = mark.Opponent()
	}
	return s.Label.Render("Moves ") + s.Value.Render(strings.Join(parts, " "))
}
