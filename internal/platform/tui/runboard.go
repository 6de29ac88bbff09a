package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/raycaster/internal/registry"
	"github.com/vovakirdan/raycaster/internal/storage"
)

// Runs board layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the arena sidebar
	sidebarWidth       = 20  // Width of the arena sidebar
	maxRuns            = 100 // Max runs to load per arena
)

// RunboardKeyMap defines the key bindings for the runs board.
type RunboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Back      key.Binding
	Quit      key.Binding
	NextArena key.Binding
	PrevArena key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextArena, k.PrevArena, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k RunboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextArena, k.PrevArena},
		{k.Back, k.Quit},
	}
}

// DefaultRunboardKeyMap returns default key bindings.
func DefaultRunboardKeyMap() RunboardKeyMap {
	return RunboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev arena"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next arena"),
		),
		NextArena: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next arena"),
		),
		PrevArena: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev arena"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunboardModel is the Bubble Tea model for the run journal screen.
type RunboardModel struct {
	arenas      []registry.GameInfo
	cursor      int
	store       *storage.Store
	runs        []storage.Run
	stats       *storage.ArenaStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        RunboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewRunboardModel creates a new runs board model.
func NewRunboardModel(store *storage.Store, width, height int) RunboardModel {
	h := help.New()
	h.ShowAll = false

	m := RunboardModel{
		arenas:      registry.List(),
		store:       store,
		keys:        DefaultRunboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()

	if len(m.arenas) > 0 {
		m.loadRuns(m.arenas[0].ID)
	}
	return m
}

// createTable creates a new table sized to the current window.
func (m *RunboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 13},
		{Title: "Ticks", Width: 7},
		{Title: "Dist", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Slides", Width: 6},
		{Title: "Blocked", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for header, stats, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the newest runs and the aggregate line for an arena.
func (m *RunboardModel) loadRuns(arenaID string) {
	m.runs, m.stats, m.loadErr = nil, nil, nil

	if m.store != nil {
		m.runs, m.loadErr = m.store.RecentRuns(arenaID, maxRuns)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.ArenaStats(arenaID)
		}
	}
	m.updateTableRows()
}

// updateTableRows fills the table with the loaded runs.
func (m *RunboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%.2f", r.Distance),
			fmt.Sprintf("%d", r.Moves),
			fmt.Sprintf("%d", r.Slides),
			fmt.Sprintf("%d", r.Blocked),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the runs board model.
func (m RunboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs board.
func (m RunboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextArena), key.Matches(msg, m.keys.Right):
			m.selectArena(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevArena), key.Matches(msg, m.keys.Left):
			m.selectArena(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// selectArena moves the arena cursor by delta, wrapping around.
func (m *RunboardModel) selectArena(delta int) {
	n := len(m.arenas)
	if n == 0 {
		return
	}
	m.cursor = ((m.cursor+delta)%n + n) % n
	m.loadRuns(m.arenas[m.cursor].ID)
}

// View renders the runs board.
func (m RunboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RUNS"
	if len(m.arenas) > 0 {
		title = fmt.Sprintf("RUNS - %s", m.arenas[m.cursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.statsLine()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes the selected arena's journal.
func (m RunboardModel) statsLine() string {
	switch {
	case m.store == nil:
		return "Run journal unavailable."
	case m.loadErr != nil:
		return "Error: " + m.loadErr.Error()
	case m.stats == nil || m.stats.Runs == 0:
		return ""
	}
	return fmt.Sprintf("%d runs  %d ticks  %.2f cells total  best %.2f  last %s",
		m.stats.Runs, m.stats.TotalTicks, m.stats.TotalDistance, m.stats.BestDistance,
		m.stats.LastPlayed.Format("Jan 02 15:04"))
}

// renderWideLayout renders the board with a sidebar for arena selection.
func (m RunboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Arenas\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, a := range m.arenas {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + truncate(a.Title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the board with the current arena above the table.
func (m RunboardModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.arenas) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.arenas[m.cursor].Title), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m RunboardModel) renderTableContent() string {
	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No runs recorded yet.\nPlay the arena to start a journal.")
	}
	return m.table.View()
}

// truncate shortens s to n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to the menu.
func (m RunboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RunboardModel) IsQuitting() bool {
	return m.quitting
}

// RunRunboard runs the runs board screen.
// Returns true if user wants to go back to the menu, false if quitting.
func RunRunboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewRunboardModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RunboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
