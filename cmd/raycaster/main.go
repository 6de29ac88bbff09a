// raycaster moves a player through grid arenas in the terminal, showing its
// ray fan and facing from above.
//
// Usage:
//
//	raycaster list                 - List built-in arenas
//	raycaster play <arena>         - Play an arena
//	raycaster menu                 - Pick arenas interactively
//	raycaster frame <arena>        - Print one frame as plain text
//	raycaster check <file>...      - Validate arena files
//	raycaster runs <arena>         - Show the run journal for an arena
//	raycaster serve                - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Simulation rate (default: 200)
//	--db <path>         - Run journal path (default: ~/.raycaster/runs.db)
//	--config <path>     - Engine config file (YAML or TOML)
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/raycaster/internal/config"
	"github.com/vovakirdan/raycaster/internal/games/birdseye"
	"github.com/vovakirdan/raycaster/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raycaster",
	Short: "Raycaster - walk grid arenas in your terminal",
	Long: `Raycaster moves a player through a tile map seen from above.
The player turns and walks, slides along walls it touches, and casts a
fan of rays around itself.

Available commands:
  list     - Show all built-in arenas
  play     - Play an arena directly
  menu     - Interactive arena picker
  frame    - Render one frame as text, without a terminal UI
  check    - Validate arena files
  runs     - View the run journal
  serve    - Start SSH server for remote play

Examples:
  raycaster list
  raycaster play maze
  raycaster play --arena-file ./cave.yaml --pace slow
  raycaster frame maze --advance 40
  raycaster serve --ssh :2222`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 200, "Simulation rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.raycaster/runs.db", "Path to the run journal")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to an engine config file (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger and loads the engine config used by every arena.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "raycaster",
		Level:           level,
	})

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, err := config.LoadEngineReporting(flagConfig, func(path string, err error) {
		logger.Warn("ignoring engine config", "path", path, "error", err)
	})
	if err != nil {
		return fmt.Errorf("cannot load engine config: %w", err)
	}
	birdseye.SetEngineConfig(cfg)
	logger.Debug("engine config loaded",
		"speed", cfg.Movement.Speed,
		"look_speed", cfg.Movement.LookSpeed,
		"border", cfg.Movement.CollisionBorder,
		"rays", cfg.Rays.Count,
	)
	return nil
}

// holdDuration is how long a key press stays held, from the engine config.
func holdDuration() time.Duration {
	return time.Duration(birdseye.EngineConfig().Input.HoldMS) * time.Millisecond
}

// createArena creates a registered arena, reporting games that cannot run.
func createArena(id string) (registry.Game, error) {
	if !registry.Exists(id) {
		return nil, fmt.Errorf("unknown arena %q (run 'raycaster list' to see available arenas)", id)
	}
	game, err := registry.Create(id)
	if err != nil {
		return nil, err
	}
	if e, ok := game.(interface{ Err() error }); ok && e.Err() != nil {
		return nil, fmt.Errorf("arena %q: %w", id, e.Err())
	}
	return game, nil
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
