package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/raycaster/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs <arena>",
	Short: "Show the run journal for an arena",
	Long: `Display the most recent runs recorded for the specified arena,
newest first, followed by totals.

Examples:
  raycaster runs maze
  raycaster runs maze --limit 25
  raycaster runs maze --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every run of the arena")
}

func runRuns(_ *cobra.Command, args []string) {
	game, err := createArena(args[0])
	if err != nil {
		fail("%v", err)
	}
	arenaID := game.ID()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run journal: %v", err)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(arenaID); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Cleared runs for %s.\n", game.Title())
		return
	}

	runs, err := store.RecentRuns(arenaID, flagRunsLimit)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Runs - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'raycaster play %s' to start the journal.\n", arenaID)
		return
	}

	fmt.Printf("  %-16s  %7s  %8s  %6s  %6s  %7s\n", "Date", "Ticks", "Distance", "Moves", "Slides", "Blocked")
	fmt.Printf("  %-16s  %7s  %8s  %6s  %6s  %7s\n", "----", "-----", "--------", "-----", "------", "-------")

	for _, r := range runs {
		fmt.Printf("  %-16s  %7d  %8.2f  %6d  %6d  %7d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Ticks, r.Distance, r.Moves, r.Slides, r.Blocked)
	}

	stats, err := store.ArenaStats(arenaID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Total: %d runs, %d ticks, %.2f cells (best %.2f)\n",
			stats.Runs, stats.TotalTicks, stats.TotalDistance, stats.BestDistance)
	}
}
