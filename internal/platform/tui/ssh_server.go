package tui

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
	"github.com/vovakirdan/tui-tictactoe/internal/platform/httpapi"
	"github.com/vovakirdan/tui-tictactoe/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.tictactoe/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// HTTPAddress enables the read-only stats API when not empty.
	HTTPAddress string

	// Game holds the settings every session starts with.
	Game tictactoe.Options
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		IdleTimeout: 30 * time.Minute,
		Game: tictactoe.Options{
			Mode:       tictactoe.ModeHumanVsComputer,
			Difficulty: tictactoe.Medium,
			Human:      tictactoe.X,
			Delay:      tictactoe.DefaultComputerDelay,
		},
	}
}

// SSHServer serves one independent game per SSH session. All sessions
// share the round journal.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	http   *http.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tictactoe-ssh",
		})
	}

	store, err := storage.Open()
	if err != nil {
		return nil, fmt.Errorf("tui: cannot open round journal: %w", err)
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			store.Close()
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".tictactoe", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		store.Close()
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	// Create Wish server options
	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}
	srv.server = server

	if cfg.HTTPAddress != "" {
		srv.http = &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           httpapi.NewServer(store, logger.WithPrefix("http")),
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	opts := s.sessionOptions(uuid.NewString(), sshSession.User(), bubbletea.MakeRenderer(sshSession))
	opts.Width = pty.Window.Width
	opts.Height = pty.Window.Height
	model := NewModel(opts)

	// Dropped connections never send a quit key.
	go func() {
		<-sshSession.Context().Done()
		model.Close()
	}()

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// sessionOptions builds the model options of one SSH session: its own
// controller settings and random source, journaled under sessionID.
func (s *SSHServer) sessionOptions(sessionID, user string, r *lipgloss.Renderer) ModelOptions {
	logger := s.logger.With("session", sessionID, "user", user)

	game := s.config.Game
	game.Rand = nil
	game.Logger = logger
	game.Observer = s.store.Recorder(sessionID, logger)

	return ModelOptions{
		Game:     game,
		Totals:   s.store,
		Renderer: r,
		Title:    fmt.Sprintf("TIC-TAC-TOE - %s", user),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the servers and blocks until ctx is cancelled or
// a listener fails.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	errc := make(chan error, 2)

	s.logger.Info("starting SSH server", "address", s.config.Address)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- fmt.Errorf("tui: ssh server: %w", err)
		}
	}()

	if s.http != nil {
		s.logger.Info("starting stats API", "address", s.http.Addr)
		go func() {
			if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errc <- fmt.Errorf("tui: stats API: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info("shutting down...")
	case runErr = <-errc:
		s.logger.Error("server error", "error", runErr)
	}

	return errors.Join(runErr, s.Shutdown())
}

// Shutdown gracefully stops the servers and closes the journal.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error
	if err := s.server.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if err := s.store.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
