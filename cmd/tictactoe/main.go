// tictactoe is a terminal tic-tac-toe game against a friend or the computer.
//
// Usage:
//
//	tictactoe play     - Play in this terminal
//	tictactoe serve    - Start SSH server for remote play
//	tictactoe config   - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.tictactoe, ./configs)
//	--seed <value>      - Set RNG seed for reproducible computer play
//	--log-level <level> - debug, info, warn, error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	// cfg is loaded before any subcommand runs.
	cfg config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-tac-toe in your terminal",
	Long: `Play tic-tac-toe against a friend on the same keyboard or against the
computer at three difficulty levels.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  tictactoe play
  tictactoe play --mode cpu --difficulty hard --symbol O
  tictactoe serve --ssh :2222 --http :8080
  tictactoe config`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		loaded.Log.File = flagLogFile
	}
	cfg = loaded
	return nil
}

// newLogger builds the application logger. Logs go to the configured file,
// or to fallback when no file is set. The returned closer closes the file.
func newLogger(lc config.LogConfig, fallback io.Writer, prefix string) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if lc.Level != "" {
		parsed, err := log.ParseLevel(lc.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", lc.Level, err)
		}
		level = parsed
	}

	var out io.Writer = fallback
	var closer io.Closer = io.NopCloser(nil)
	if lc.File != "" {
		path, err := config.HomePath(lc.File)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, closer, nil
}
