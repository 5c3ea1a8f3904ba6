package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

// TotalsSource provides journal totals shown next to the session scores.
type TotalsSource interface {
	Totals() (storage.Totals, error)
}

// ModelOptions configures a game Model.
type ModelOptions struct {
	Game     tictactoe.Options
	Totals   TotalsSource       // optional; enables the "Server" column
	Renderer *lipgloss.Renderer // defaults to lipgloss.DefaultRenderer()
	Title    string

	// Initial terminal size; later sizes arrive as tea.WindowSizeMsg.
	Width  int
	Height int
}

// Model is the Bubble Tea model for a tic-tac-toe session. It owns one
// Controller and forwards every key press to it.
type Model struct {
	ctrl     *tictactoe.Controller
	notifier *changeNotifier
	totals   TotalsSource
	server   storage.Totals

	keys   KeyMap
	help   help.Model
	table  table.Model
	styles Styles
	title  string

	cursor   core.Cursor
	width    int
	height   int
	quitting bool
}

// NewModel creates a model and starts the first round.
func NewModel(opts ModelOptions) Model {
	notifier := newChangeNotifier()
	game := opts.Game
	game.OnChange = notifier.notify

	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	title := opts.Title
	if title == "" {
		title = "TIC-TAC-TOE"
	}

	m := Model{
		ctrl:     tictactoe.NewController(game),
		notifier: notifier,
		totals:   opts.Totals,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		styles:   NewStyles(r),
		title:    title,
		cursor:   core.CursorAt(tictactoe.Center),
		width:    opts.Width,
		height:   opts.Height,
	}
	m.help.Width = opts.Width
	m.table = m.createTable()
	m.refreshTotals()
	m.updateTableRows()
	return m
}

// Controller returns the controller driven by the model.
func (m Model) Controller() *tictactoe.Controller {
	return m.ctrl
}

// Close cancels any pending computer move and stops change delivery.
func (m Model) Close() {
	m.ctrl.Close()
	m.notifier.stop()
}

// createTable creates the scoreboard table.
func (m Model) createTable() table.Model {
	columns := []table.Column{
		{Title: "", Width: 14},
		{Title: "Session", Width: 8},
	}
	if m.totals != nil {
		columns = append(columns, table.Column{Title: "Server", Width: 8})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)
	// Three rows below a two-line header.
	t.SetHeight(5)
	return t
}

// updateTableRows refreshes the scoreboard from the controller and journal.
func (m *Model) updateTableRows() {
	vs := m.ctrl.VisibleState()
	session := vs.Scoreboard
	server := m.server.Scoreboard()

	xLabel, oLabel := "X wins", "O wins"
	if vs.Mode == tictactoe.ModeHumanVsComputer {
		if vs.PlayerSymbol == tictactoe.X {
			xLabel, oLabel = "X wins (you)", "O wins (cpu)"
		} else {
			xLabel, oLabel = "X wins (cpu)", "O wins (you)"
		}
	}

	row := func(label string, n, total int) table.Row {
		r := table.Row{label, strconv.Itoa(n)}
		if m.totals != nil {
			r = append(r, strconv.Itoa(total))
		}
		return r
	}
	m.table.SetRows([]table.Row{
		row(xLabel, session.X, server.X),
		row(oLabel, session.O, server.O),
		row("Ties", session.Ties, server.Ties),
	})
}

func (m *Model) refreshTotals() {
	if m.totals == nil {
		return
	}
	if t, err := m.totals.Totals(); err == nil {
		m.server = t
	}
}

// Init starts listening for controller changes.
func (m Model) Init() tea.Cmd {
	return m.notifier.waitCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ChangeMsg:
		m.refreshTotals()
		m.updateTableRows()
		return m, m.notifier.waitCmd()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cell := m.keys.MapKey(msg)
	vs := m.ctrl.VisibleState()

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.cursor = m.cursor.Move(action)
	case core.ActionPlace:
		if cell >= 0 {
			m.cursor = core.CursorAt(cell)
		}
		m.ctrl.OnCellActivated(m.cursor.Index())
	case core.ActionReset:
		m.ctrl.OnResetRequested()
	case core.ActionResetScores:
		m.ctrl.OnScoreResetRequested()
	case core.ActionToggleMode:
		next := tictactoe.ModeHumanVsComputer
		if vs.Mode == tictactoe.ModeHumanVsComputer {
			next = tictactoe.ModeHumanVsHuman
		}
		m.ctrl.OnModeChanged(next)
	case core.ActionCycleDifficulty:
		m.ctrl.OnDifficultyChanged(vs.Difficulty.Next())
	case core.ActionPlayX:
		m.ctrl.OnSymbolChanged(tictactoe.X)
	case core.ActionPlayO:
		m.ctrl.OnSymbolChanged(tictactoe.O)
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	default:
		return m, nil
	}

	m.refreshTotals()
	m.updateTableRows()
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	vs := m.ctrl.VisibleState()
	s := m.styles

	var b strings.Builder
	b.WriteString(s.Title.Render(m.title))
	b.WriteString("\n\n")

	board := s.renderBoard(vs, m.cursor, vs.Status == tictactoe.StatusInProgress)
	side := lipgloss.JoinVertical(lipgloss.Left,
		s.Panel.Render(s.renderSettings(vs)),
		s.Panel.Render(m.table.View()),
	)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, s.Panel.Render(board), "  ", side))
	b.WriteString("\n\n")

	b.WriteString(s.renderStatus(vs))
	b.WriteString("\n")
	b.WriteString(s.renderHistory(vs.Moves))
	b.WriteString("\n\n")
	b.WriteString(s.Help.Render(m.help.View(m.keys)))

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
	}
	return b.String()
}

// Run starts a local Bubble Tea program and blocks until the player quits.
func Run(opts ModelOptions) error {
	model := NewModel(opts)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
