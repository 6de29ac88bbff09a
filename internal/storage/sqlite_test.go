package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/raycaster/internal/core"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.raycaster/runs.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".raycaster", "runs.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTemp(t)

	summaries := []core.RunSummary{
		{Ticks: 100, Distance: 1.5, Moves: 60, Slides: 2, Blocked: 0},
		{Ticks: 250, Distance: 4.25, Moves: 170, Slides: 5, Blocked: 3},
		{Ticks: 40, Distance: 0.5, Moves: 20},
	}
	for _, s := range summaries {
		if _, err := store.SaveRun(RunFromSummary("maze", s)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	if _, err := store.SaveRun(RunFromSummary("room", core.RunSummary{Ticks: 9})); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.RecentRuns("maze", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}

	// Newest first
	if runs[0].Ticks != 40 || runs[2].Ticks != 100 {
		t.Errorf("runs not ordered newest first: %d, %d", runs[0].Ticks, runs[2].Ticks)
	}
	got := runs[1]
	if got.ArenaID != "maze" || got.Distance != 4.25 || got.Moves != 170 || got.Slides != 5 || got.Blocked != 3 {
		t.Errorf("run did not round-trip: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreRecentRunsLimit(t *testing.T) {
	store := openTemp(t)

	for i := 1; i <= 15; i++ {
		if _, err := store.SaveRun(Run{ArenaID: "maze", Ticks: uint64(i)}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns("maze", 5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 5 {
		t.Errorf("expected 5 runs, got %d", len(runs))
	}

	// Default limit
	runs, _ = store.RecentRuns("maze", 0)
	if len(runs) != 10 {
		t.Errorf("expected default limit of 10, got %d", len(runs))
	}
}

func TestStoreRejectsEmptyRun(t *testing.T) {
	store := openTemp(t)

	if _, err := store.SaveRun(Run{ArenaID: "maze"}); !errors.Is(err, ErrEmptyRun) {
		t.Errorf("SaveRun(empty) = %v, expected ErrEmptyRun", err)
	}
}

func TestStoreArenaStats(t *testing.T) {
	store := openTemp(t)

	empty, err := store.ArenaStats("maze")
	if err != nil {
		t.Fatalf("ArenaStats() failed: %v", err)
	}
	if empty.Runs != 0 || empty.TotalTicks != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("expected zero stats, got %+v", empty)
	}

	store.SaveRun(Run{ArenaID: "maze", Ticks: 100, Distance: 2, Slides: 1, Blocked: 4})
	store.SaveRun(Run{ArenaID: "maze", Ticks: 50, Distance: 3.5, Slides: 2})
	store.SaveRun(Run{ArenaID: "room", Ticks: 7, Distance: 9})

	st, err := store.ArenaStats("maze")
	if err != nil {
		t.Fatalf("ArenaStats() failed: %v", err)
	}
	if st.Runs != 2 || st.TotalTicks != 150 || st.TotalDistance != 5.5 || st.BestDistance != 3.5 {
		t.Errorf("unexpected stats: %+v", st)
	}
	if st.Slides != 3 || st.Blocked != 4 {
		t.Errorf("unexpected contact totals: %+v", st)
	}

	all, err := store.AllArenaStats()
	if err != nil {
		t.Fatalf("AllArenaStats() failed: %v", err)
	}
	if len(all) != 2 || all["room"].BestDistance != 9 {
		t.Errorf("unexpected all-arena stats: %+v", all)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTemp(t)

	store.SaveRun(Run{ArenaID: "maze", Ticks: 1})
	store.SaveRun(Run{ArenaID: "room", Ticks: 1})

	if err := store.ClearRuns("maze"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	if runs, _ := store.RecentRuns("maze", 10); len(runs) != 0 {
		t.Errorf("expected no maze runs, got %d", len(runs))
	}
	if runs, _ := store.RecentRuns("room", 10); len(runs) != 1 {
		t.Errorf("room runs should survive, got %d", len(runs))
	}
}
