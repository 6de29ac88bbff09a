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
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/raycaster/internal/core"
	"github.com/vovakirdan/raycaster/internal/registry"
	"github.com/vovakirdan/raycaster/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.raycaster/host_key.
	HostKeyPath string

	// DBPath is the path to the run journal.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int

	// Hold is how long a key press keeps its action held.
	Hold time.Duration

	// Logger receives server events. A default stderr logger is used if nil.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.raycaster/runs.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    core.DefaultConfig().TickRate,
		Hold:        180 * time.Millisecond,
	}
}

// SSHServer wraps a Wish SSH server serving one arena session per connection.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "raycaster-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
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
		hostKeyPath = filepath.Join(home, ".raycaster", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

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
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	model := NewSessionModel(s.store, cfg, s.config.Hold)
	model.logger = s.logger.With("user", sshSession.User())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
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

// sessionView is the screen a SessionModel is showing.
type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewRuns
)

// SessionModel manages the full session flow: menu -> arena -> menu, with
// the runs board reachable from the menu. Every arena played gets its own
// game instance, so sessions never share a player.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	hold     time.Duration
	logger   *log.Logger
	view     sessionView
	menu     MenuModel
	game     *Model
	runs     RunboardModel
	quitting bool
}

// NewSessionModel creates a new session model starting at the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, hold time.Duration) SessionModel {
	return SessionModel{
		store:  store,
		config: cfg,
		hold:   hold,
		logger: log.Default(),
		menu:   NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewGame:
		return m.updateGame(msg)
	case viewRuns:
		return m.updateRuns(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsRuns():
		m.runs = NewRunboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.view = viewRuns
		return m, m.runs.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().ArenaID)
		if err != nil {
			// Shouldn't happen since the menu only shows registered arenas
			m.logger.Error("cannot create arena", "error", err)
			m.menu = NewMenuModel(m.store, m.config)
			return m, nil
		}

		gameModel := NewModel(game, m.store, m.config, m.hold)
		m.game = &gameModel
		m.view = viewGame
		m.logger.Info("arena started", "arena", game.ID())
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when an arena is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if !m.game.IsQuitting() && !m.game.BackToMenu() {
		return m, cmd
	}

	if err := m.game.SaveErr(); err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
	m.logger.Info("arena left", "arena", m.game.game.ID(), "runs_saved", m.game.SavedRuns())

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	m.game = nil
	m.view = viewMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// updateRuns handles updates when the runs board is open.
func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	newRuns, cmd := m.runs.Update(msg)
	if runs, ok := newRuns.(RunboardModel); ok {
		m.runs = runs
	}

	if m.runs.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.runs.IsGoingBack() {
		m.view = viewMenu
		m.menu = NewMenuModel(m.store, m.config)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewGame:
		return m.game.View()
	case viewRuns:
		return m.runs.View()
	default:
		return m.menu.View()
	}
}
