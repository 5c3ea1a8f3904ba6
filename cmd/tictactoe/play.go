package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

var (
	flagMode       string
	flagDifficulty string
	flagSymbol     string
	flagDelayMs    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/hjkl   - Move the cursor
  Enter/Space   - Place your mark
  1-9           - Place on a cell directly
  M             - Toggle Human vs Human / Human vs Computer
  D             - Cycle difficulty (easy, medium, hard)
  X/O           - Choose your mark against the computer
  R             - New round (scores are kept)
  C             - Clear scores
  ?             - Show all keys
  Q/Ctrl+C      - Quit

Examples:
  tictactoe play
  tictactoe play --mode pvp
  tictactoe play --difficulty hard --symbol O
  tictactoe play --seed 42 --log-level debug --log-file ~/.tictactoe/play.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode: pvp or cpu")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Computer difficulty: easy, medium, hard")
	playCmd.Flags().StringVar(&flagSymbol, "symbol", "", "Your mark against the computer: X or O")
	playCmd.Flags().IntVar(&flagDelayMs, "delay", -1, "Computer delay in milliseconds")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	game := cfg.Game
	if flagMode != "" {
		game.Mode = flagMode
	}
	if flagDifficulty != "" {
		game.Difficulty = flagDifficulty
	}
	if flagSymbol != "" {
		game.Symbol = flagSymbol
	}
	if flagDelayMs >= 0 {
		game.ComputerDelayMs = flagDelayMs
	}
	cfg.Game = game
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Logs would corrupt the alternate screen; they go to a file or nowhere.
	logger, closer, err := newLogger(cfg.Log, io.Discard, "tictactoe")
	if err != nil {
		return err
	}
	defer closer.Close()

	// Get terminal size
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed
	rc.ComputerDelay = game.ComputerDelay()

	opts := game.ControllerOptions()
	opts.Seed = rc.SeedOrNow()
	opts.Delay = rc.ComputerDelay
	opts.Logger = logger

	// Local rounds are journaled too so debug logs can be matched to rounds.
	store, err := storage.Open()
	if err != nil {
		return err
	}
	defer store.Close()
	opts.Observer = store.Recorder(storage.LocalSession, logger)

	logger.Info("starting local game",
		"mode", opts.Mode,
		"difficulty", opts.Difficulty,
		"human", opts.Human,
		"seed", opts.Seed,
	)

	if err := tui.Run(tui.ModelOptions{
		Game:   opts,
		Width:  rc.ScreenW,
		Height: rc.ScreenH,
	}); err != nil {
		return err
	}

	if totals, err := store.SessionTotals(storage.LocalSession); err == nil {
		logger.Info("session finished", "rounds", totals.Rounds, "x", totals.XWins, "o", totals.OWins, "ties", totals.Ties)
	}
	return nil
}
