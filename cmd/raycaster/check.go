package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/raycaster/internal/games/birdseye"
	"github.com/vovakirdan/raycaster/internal/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate arena files",
	Long: `Load each arena file and check it can be played with the current
engine config: the layout must be a walled rectangle and the start must
lie on a floor cell. Stops at the first invalid file.

Examples:
  raycaster check ./arenas/cave.yaml
  raycaster check ./arenas/*.toml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	for _, path := range args {
		arena, err := levels.LoadFile(path)
		if err != nil {
			fail("%v", err)
		}
		if g := birdseye.New(arena); g.Err() != nil {
			fail("%s: %v", path, g.Err())
		}
		fmt.Printf("ok  %s  %s (%dx%d, %d floor cells)\n",
			path, arena.ID, arena.Map.Width(), arena.Map.Height(), arena.Map.FloorCount())
	}
}
