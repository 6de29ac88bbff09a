package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/raycaster/internal/config"
	"github.com/vovakirdan/raycaster/internal/core"
	"github.com/vovakirdan/raycaster/internal/games/birdseye"
	"github.com/vovakirdan/raycaster/internal/levels"
	"github.com/vovakirdan/raycaster/internal/platform/tui"
	"github.com/vovakirdan/raycaster/internal/registry"
	"github.com/vovakirdan/raycaster/internal/storage"
)

var (
	flagArenaFile string
	flagPace      string
)

var playCmd = &cobra.Command{
	Use:   "play [arena]",
	Short: "Play an arena",
	Long: `Start walking the specified arena.

Controls:
  Left/Right, A/D  - Turn
  Up/Down, W/S     - Advance/Retreat
  V                - Show/hide rays
  P/Space          - Pause
  R                - Restart
  B/Esc, Q/Ctrl+C  - Quit
  Ctrl+S           - Save a text screenshot

Pace options:
  slow    - Half speed, half turn rate
  normal  - Configured speed and turn rate
  fast    - Double speed, double turn rate

Examples:
  raycaster play maze
  raycaster play room --pace fast
  raycaster play --arena-file ./cave.yaml
  raycaster play maze --config ./engine.toml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagArenaFile, "arena-file", "", "Path to an arena file (YAML or TOML)")
	playCmd.Flags().StringVar(&flagPace, "pace", "", "Pace preset: slow, normal, fast")
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := applyPace(flagPace); err != nil {
		fail("%v", err)
	}

	var game registry.Game
	switch {
	case flagArenaFile != "" && len(args) > 0:
		fail("give either an arena ID or --arena-file, not both")
	case flagArenaFile != "":
		arena, err := levels.LoadFile(flagArenaFile)
		if err != nil {
			fail("%v", err)
		}
		g := birdseye.New(arena)
		if g.Err() != nil {
			fail("arena %q: %v", arena.ID, g.Err())
		}
		game = g
	case len(args) == 1:
		g, err := createArena(args[0])
		if err != nil {
			fail("%v", err)
		}
		game = g
	default:
		fail("missing arena (run 'raycaster list' to see available arenas)")
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, holdDuration())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fail("running arena: %v", runErr)
	}
}

// applyPace scales the package engine config by a pace preset.
func applyPace(name string) error {
	pace, err := config.ParsePace(name)
	if err != nil {
		return err
	}
	cfg := birdseye.EngineConfig()
	if err := config.ApplyPace(&cfg, pace); err != nil {
		return err
	}
	birdseye.SetEngineConfig(cfg)
	return nil
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (width, height int) {
	def := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return def.ScreenW, def.ScreenH
}
