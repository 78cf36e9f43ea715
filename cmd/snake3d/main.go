// snake3d is a minimal snake game played on a 20x20x20 grid.
//
// Usage:
//
//	snake3d                    - Play in a 3D window
//	snake3d play [--frontend]  - Play in a 3D window or in the terminal
//	snake3d list               - List available frontends
//	snake3d scores [frontend]  - Show high scores for a frontend
//	snake3d serve              - Start SSH server for remote terminal play
//	snake3d config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible fruit placement
//	--db <path>          - Set database path (default: ~/.snake3d/scores.db)
//	--config <path>      - Use a custom YAML config
//	--log-level <level>  - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake3d/internal/config"
	"github.com/vovakirdan/snake3d/internal/core"
	"github.com/vovakirdan/snake3d/internal/registry"
	"github.com/vovakirdan/snake3d/internal/storage"

	// Import frontends to register them
	_ "github.com/vovakirdan/snake3d/internal/platform/tui"
	_ "github.com/vovakirdan/snake3d/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake3d",
	Short: "Snake on a 20x20x20 grid",
	Long: `snake3d is a minimal snake game. The snake moves through a 20x20x20
grid, grows by one segment per fruit and speeds up with every fruit eaten.

Running snake3d without a command opens the 3D window.

Available commands:
  play     - Play in the 3D window or the terminal
  list     - Show all available frontends
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake3d
  snake3d play --frontend terminal
  snake3d scores window
  snake3d serve --ssh :2222`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return play(cmd.Context(), defaultFrontend)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake3d/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger at the level given by --log-level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, nil
}

// newEnv loads the configuration and opens the score store. A store that
// cannot be opened is logged and left nil so the game still runs.
// The caller closes env.Store when it is non-nil.
func newEnv(prefix string, width, height int) (registry.Env, error) {
	logger, err := newLogger(prefix)
	if err != nil {
		return registry.Env{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return registry.Env{}, err
	}
	if rootCmd.PersistentFlags().Changed("fps") {
		cfg.Window.FPS = flagFPS
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}

	rt := core.DefaultConfig()
	if width > 0 && height > 0 {
		rt.ScreenW, rt.ScreenH = width, height
	}
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed

	return registry.Env{
		Config:  cfg,
		Runtime: rt,
		Store:   store,
		Logger:  logger,
		Player:  playerName(),
	}, nil
}

// playerName returns the local user name used for score records.
func playerName() string {
	for _, key := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(key); name != "" {
			return name
		}
	}
	return "player"
}
