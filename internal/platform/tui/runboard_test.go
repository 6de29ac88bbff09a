package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/raycaster/internal/storage"
)

func TestRunboardLoadsRuns(t *testing.T) {
	store := openStore(t)
	for _, d := range []float64{1.25, 3.5} {
		if _, err := store.SaveRun(storage.Run{ArenaID: "tui-stub", Ticks: 100, Distance: d}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewRunboardModel(store, 100, 30)
	for m.arenas[m.cursor].ID != "tui-stub" {
		m.selectArena(1)
	}

	if len(m.runs) != 2 {
		t.Fatalf("loaded %d runs, expected 2", len(m.runs))
	}
	if m.runs[0].Distance != 3.5 {
		t.Errorf("newest run first: got distance %v", m.runs[0].Distance)
	}
	if m.stats == nil || m.stats.Runs != 2 || m.stats.BestDistance != 3.5 {
		t.Errorf("stats = %+v, expected 2 runs with best 3.5", m.stats)
	}

	view := m.View()
	for _, want := range []string{"RUNS - Stub Arena", "2 runs", "best 3.50"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q:\n%s", want, view)
		}
	}
}

func TestRunboardWithoutStore(t *testing.T) {
	m := NewRunboardModel(nil, 60, 20)

	if m.showSidebar {
		t.Error("narrow windows should not show the sidebar")
	}
	if len(m.runs) != 0 {
		t.Error("no runs without a store")
	}
	if line := m.statsLine(); line != "Run journal unavailable." {
		t.Errorf("statsLine = %q", line)
	}
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("view should show the empty message")
	}
}

func TestRunboardSelectArenaWraps(t *testing.T) {
	m := NewRunboardModel(nil, 100, 30)
	n := len(m.arenas)

	m.selectArena(-1)
	if m.cursor != n-1 {
		t.Errorf("cursor = %d, expected wrap to %d", m.cursor, n-1)
	}
	m.selectArena(1)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, expected wrap to 0", m.cursor)
	}
}

func TestRunboardKeys(t *testing.T) {
	m := NewRunboardModel(nil, 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(RunboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(RunboardModel).IsQuitting() {
		t.Error("q should quit")
	}

	next, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if next.(RunboardModel).showSidebar {
		t.Error("shrinking the window should drop the sidebar")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Arena", 10); got != "Arena" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("Labyrinth", 5); got != "Laby." {
		t.Errorf("truncate = %q, expected %q", got, "Laby.")
	}
}
