package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/raycaster/internal/core"
	"github.com/vovakirdan/raycaster/internal/storage"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuListsArenas(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.Run{ArenaID: "tui-stub", Ticks: 10}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	m := NewMenuModel(store, core.DefaultConfig())

	var found bool
	for _, item := range m.items {
		if item.ArenaID == "tui-stub" {
			found = true
			if item.Title != "Stub Arena" || item.Detail != "3x3" || item.Runs != 1 {
				t.Errorf("unexpected item: %+v", item)
			}
		}
	}
	if !found {
		t.Fatal("menu is missing the registered arena")
	}

	if view := m.View(); !strings.Contains(view, "Stub Arena  3x3  (1 runs)") {
		t.Errorf("view should list the arena with its detail, got:\n%s", view)
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	r := m.result()
	if r.Quit || r.WantsRuns || r.ArenaID != m.items[0].ArenaID {
		t.Errorf("result = %+v, expected arena %q", r, m.items[0].ArenaID)
	}
}

func TestMenuResults(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected MenuResult
	}{
		{"tab opens runs", tea.KeyMsg{Type: tea.KeyTab}, MenuResult{WantsRuns: true}},
		{"q quits", runeKey('q'), MenuResult{Quit: true}},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, MenuResult{Quit: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := menuUpdate(t, NewMenuModel(nil, core.DefaultConfig()), tc.msg)
			r := m.result()
			if r.WantsRuns != tc.expected.WantsRuns || r.Quit != tc.expected.Quit || r.ArenaID != "" {
				t.Errorf("result = %+v, expected %+v", r, tc.expected)
			}
		})
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected 0", m.cursor)
	}
	for range len(m.items) + 3 {
		m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig())
	m = menuUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})

	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("config = %+v, expected 120x50", cfg)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, expected %q", got, "  ab")
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q, expected the text unchanged", got)
	}
	if got := centerText("←→", 4); got != " ←→" {
		t.Errorf("centerText = %q, expected wide runes measured by cells", got)
	}
}

func TestSessionFlow(t *testing.T) {
	s := NewSessionModel(nil, core.DefaultConfig(), 180*time.Millisecond)

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		s = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.view != viewRuns {
		t.Fatalf("view = %v, expected runs board", s.view)
	}
	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.view != viewMenu {
		t.Fatalf("view = %v, expected menu after leaving the runs board", s.view)
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.view != viewGame || s.game == nil {
		t.Fatalf("view = %v, expected an arena to be running", s.view)
	}
	step(runeKey('b'))
	if s.view != viewMenu || s.game != nil {
		t.Fatalf("view = %v, expected menu after leaving the arena", s.view)
	}

	step(runeKey('q'))
	if !s.quitting || s.View() != "" {
		t.Error("q in the menu should end the session")
	}
}
