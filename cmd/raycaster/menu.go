package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/raycaster/internal/core"
	"github.com/vovakirdan/raycaster/internal/platform/tui"
	"github.com/vovakirdan/raycaster/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with an arena picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play an arena.
Leaving an arena with B or Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play arena
  Tab          - Run journal
  Q            - Quit

Examples:
  raycaster menu
  raycaster menu --fps 100
  raycaster menu --db ./runs.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagPace, "pace", "", "Pace preset: slow, normal, fast")
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applyPace(flagPace); err != nil {
		fail("%v", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsRuns {
			goBack, rbErr := tui.RunRunboard(store, cfg.ScreenW, cfg.ScreenH)
			if rbErr != nil {
				logger.Error("runs board failed", "error", rbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := createArena(menuResult.ArenaID)
		if err != nil {
			logger.Error("cannot start arena", "error", err)
			continue
		}

		if err := tui.Run(game, store, cfg, holdDuration()); err != nil {
			logger.Error("arena failed", "arena", game.ID(), "error", err)
		}
	}
}
