package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"github.com/pixeldeck/arcade/internal/core"
	"github.com/pixeldeck/arcade/internal/platform/term"
	"github.com/pixeldeck/arcade/internal/registry"
	"github.com/pixeldeck/arcade/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.pixeldeck/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate overrides the simulation rate for remote runs; 0 keeps each
	// game's configured rate.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.pixeldeck/scores.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves the arcade over SSH via Wish. Each session gets the menu
// as a Bubble Tea program and, once a game is picked, the gameplay frame loop
// running directly over the session's terminal.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".pixeldeck", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			srv.sessionMiddleware,
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// sessionMiddleware is the terminal handler: menu, scoreboard, and at most
// one game per connection.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.handleSession(sess)
		next(sess)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// handleSession drives the menu loop for one connection. The scoreboard can
// be visited any number of times; starting a game hands the session's
// terminal to the gameplay loop, and the session ends when the game does,
// because the game's input reader owns the byte stream from that point on.
func (s *SSHServer) handleSession(sess ssh.Session) {
	if _, _, ok := sess.Pty(); !ok {
		wish.Fatalln(sess, "a PTY is required; try: ssh -t")
		return
	}

	for {
		p := tea.NewProgram(NewMenuModel(s.store),
			tea.WithInput(sess), tea.WithOutput(sess), tea.WithAltScreen())
		finalModel, err := p.Run()
		if err != nil {
			s.logger.Warn("menu failed", "user", sess.User(), "error", err)
			return
		}

		m, ok := finalModel.(MenuModel)
		if !ok {
			return
		}

		switch {
		case m.WantsScoreboard():
			sp := tea.NewProgram(NewScoreboardModel(s.store, 80, 24),
				tea.WithInput(sess), tea.WithOutput(sess), tea.WithAltScreen())
			if _, err := sp.Run(); err != nil {
				s.logger.Warn("scoreboard failed", "user", sess.User(), "error", err)
				return
			}

		case m.Selected() != nil:
			s.runGame(sess, m.Selected().GameID)
			return

		default:
			return
		}
	}
}

// runGame runs one game over the session's terminal and records the score.
func (s *SSHServer) runGame(sess ssh.Session, gameID string) {
	game, ok := registry.Lookup(gameID)
	if !ok {
		wish.Fatalln(sess, "unknown game:", gameID)
		return
	}

	ctx, cancel := context.WithCancel(sess.Context())
	defer cancel()

	term.PrepareWriter(sess)

	keys := term.NewKeys(cancel)
	go keys.ReadLoop(sess)

	surface := term.NewSurface(sess)
	opts := registry.RunOptions{
		Runtime: core.RuntimeConfig{TickRate: s.config.TickRate},
	}

	score, err := game.Run(ctx, surface, keys, core.NewSystemClock(), opts)
	term.RestoreWriter(sess)
	if err != nil {
		s.logger.Warn("game run failed",
			"user", sess.User(), "game", gameID, "error", err)
		return
	}

	s.logger.Info("game finished",
		"user", sess.User(), "game", gameID, "score", score)

	if s.store != nil && score > 0 {
		if _, err := s.store.SaveScore(gameID, score); err != nil {
			s.logger.Warn("could not save score", "error", err)
		}
	}

	fmt.Fprintf(sess, "Final score: %d\r\nThanks for playing!\r\n", score)
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
