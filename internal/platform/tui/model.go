package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/raycaster/internal/core"
	"github.com/vovakirdan/raycaster/internal/registry"
	"github.com/vovakirdan/raycaster/internal/storage"
)

// Model is the Bubble Tea model running one game session.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	hold      *HoldTracker
	pacer     Pacer
	pending   core.InputFrame // one-shot actions for the next frame
	gameState core.GameState
	now       func() time.Time

	quitting   bool
	backToMenu bool
	saved      *savedRun // shared so copies made by value receivers agree
}

// savedRun records the outcome of journal writes for the session.
type savedRun struct {
	runs int
	err  error
}

// NewModel creates a new Bubble Tea model for the given game.
// hold is how long a key press keeps its action held.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, hold time.Duration) Model {
	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		hold:      NewHoldTracker(hold),
		pacer:     NewPacer(cfg.TickRate),
		pending:   core.NewInputFrame(),
		now:       time.Now,
		saved:     &savedRun{},
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		m.finish()
		m.backToMenu = true
		return m, nil

	case action == core.ActionRestart:
		m.finish()
		m.hold.ReleaseAll()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		return m, nil

	case action.Held():
		m.hold.Press(action, m.now())

	case action != core.ActionNone:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs the simulation frames due at now.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	frames := m.pacer.Advance(now)
	for i := 0; i < frames; i++ {
		in := m.hold.Frame(now)
		if i == 0 {
			for a := range m.pending.Actions {
				in.Set(a)
			}
			m.pending.Clear()
		}
		m.gameState = m.game.Step(in).State
	}

	return m, tickCmd(m.config.TickRate)
}

// finish writes the session to the run journal once per played session.
func (m *Model) finish() {
	s, ok := m.game.(registry.Summarizer)
	if !ok || m.store == nil {
		return
	}
	summary := s.Summary()
	if summary.Ticks == 0 {
		return
	}
	if _, err := m.store.SaveRun(storage.RunFromSummary(m.game.ID(), summary)); err != nil {
		m.saved.err = err
		return
	}
	m.saved.runs++
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".raycaster", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// SaveErr returns the last run journal error, if any.
func (m Model) SaveErr() error {
	return m.saved.err
}

// SavedRuns returns how many runs the session wrote to the journal.
func (m Model) SavedRuns() int {
	return m.saved.runs
}

// Run starts the Bubble Tea program for a single game and blocks until it
// exits. Back quits as well, since there is no menu to return to.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, hold time.Duration) error {
	model := NewModel(game, store, cfg, hold)

	p := tea.NewProgram(
		runOnce{model},
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if r, ok := final.(runOnce); ok && r.SaveErr() != nil {
		return fmt.Errorf("run journal: %w", r.SaveErr())
	}
	return nil
}

// runOnce quits the program when the game asks to go back.
type runOnce struct {
	Model
}

func (r runOnce) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := r.Model.Update(msg)
	r.Model = next.(Model)
	if r.BackToMenu() {
		return r, tea.Quit
	}
	return r, cmd
}
