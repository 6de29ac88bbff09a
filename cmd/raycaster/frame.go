package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/raycaster/internal/core"
)

var (
	flagFrameWidth  int
	flagFrameHeight int
	flagAdvance     int
)

var frameCmd = &cobra.Command{
	Use:   "frame <arena>",
	Short: "Print one frame of an arena as plain text",
	Long: `Render an arena without a terminal UI and print the frame to stdout.

The player starts at the arena start and may first advance a number of
frames, resolving collisions as in play.

Examples:
  raycaster frame maze
  raycaster frame maze --advance 40
  raycaster frame room --width 100 --height 30`,
	Args: cobra.ExactArgs(1),
	Run:  runFrame,
}

func init() {
	frameCmd.Flags().IntVar(&flagFrameWidth, "width", 80, "Frame width in columns")
	frameCmd.Flags().IntVar(&flagFrameHeight, "height", 24, "Frame height in rows")
	frameCmd.Flags().IntVar(&flagAdvance, "advance", 0, "Frames of Advance to simulate before rendering")
}

func runFrame(_ *cobra.Command, args []string) {
	if flagFrameWidth <= 0 || flagFrameHeight <= 0 {
		fail("frame size must be positive, got %dx%d", flagFrameWidth, flagFrameHeight)
	}
	if flagAdvance < 0 {
		fail("--advance must not be negative, got %d", flagAdvance)
	}

	game, err := createArena(args[0])
	if err != nil {
		fail("%v", err)
	}

	game.Reset(core.RuntimeConfig{
		ScreenW:  flagFrameWidth,
		ScreenH:  flagFrameHeight,
		TickRate: flagFPS,
	})

	advance := core.FrameOf(core.ActionAdvance)
	for range flagAdvance {
		game.Step(advance)
	}

	screen := core.NewScreen(flagFrameWidth, flagFrameHeight)
	game.Render(screen)
	fmt.Println(screen.String())
}
