package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tictactoe/internal/config"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHTTP    string
	flagHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server that lets users play tic-tac-toe remotely.

Each connection gets its own game and scoreboard. Finished rounds are kept
in an in-memory journal shared by all sessions; the footer shows the
server-wide totals. The journal is lost when the server stops.

With --http the journal is also exposed read-only:
  GET /healthz           - liveness
  GET /stats             - outcome totals
  GET /rounds?limit=N    - most recent rounds

Connect with: ssh -p 23235 localhost

Examples:
  tictactoe serve
  tictactoe serve --ssh :2222
  tictactoe serve --http :8080
  tictactoe serve --host-key /path/to/key`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH listen address (default from config)")
	serveCmd.Flags().StringVar(&flagHTTP, "http", "", "Stats API listen address (empty = disabled)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if flagSSHAddr != "" {
		cfg.Server.SSHAddress = flagSSHAddr
	}
	if flagHTTP != "" {
		cfg.Server.HTTPAddress = flagHTTP
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}

	logger, closer, err := newLogger(cfg.Log, os.Stderr, "tictactoe-ssh")
	if err != nil {
		return err
	}
	defer closer.Close()

	game := cfg.Game.ControllerOptions()
	game.Seed = flagSeed

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = cfg.Server.SSHAddress
	sshCfg.IdleTimeout = cfg.Server.IdleTimeout()
	sshCfg.HTTPAddress = cfg.Server.HTTPAddress
	sshCfg.Game = game
	if cfg.Server.HostKeyPath != "" {
		sshCfg.HostKeyPath, err = config.HomePath(cfg.Server.HostKeyPath)
		if err != nil {
			return err
		}
	}

	server, err := tui.NewSSHServer(sshCfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}
