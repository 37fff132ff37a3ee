// sacrifice is a side-scrolling survival runner for the terminal, SSH and
// the browser.
//
// Usage:
//
//	sacrifice play           - Play in this terminal
//	sacrifice scores         - Show high scores and run statistics
//	sacrifice serve          - Start SSH server for remote play
//	sacrifice web            - Serve the browser canvas over a websocket
//	sacrifice list           - List registered games
//	sacrifice config         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible worlds
//	--db <path>           - Set database path (default: ~/.sacrifice/scores.db)
//	--config <path>       - Load game constants from a YAML file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sacrifice-runner/internal/config"
	"github.com/vovakirdan/sacrifice-runner/internal/games/sacrifice"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// gameConfig is loaded once by setup and handed to every host
	gameConfig config.SacrificeConfig

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sacrifice",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sacrifice",
	Short: "Sacrifice Runner - survive the scroll, every third jump costs blood",
	Long: `Sacrifice Runner is a side-scrolling survival game. Your square runs
through an endless stream of obstacles, platforms and healing orbs.
Jump as often as you like, but every third jump in a row costs health.

Available commands:
  play     - Play in this terminal
  scores   - View high scores
  serve    - Start SSH server for remote play
  web      - Serve the browser version
  list     - Show registered games
  config   - Print the default configuration

Examples:
  sacrifice play
  sacrifice play --seed 42
  sacrifice serve --ssh :2222
  sacrifice web --addr :8080
  sacrifice config > ~/.sacrifice/configs/sacrifice.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sacrifice/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(webCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the global flags before any subcommand runs. A broken
// config file fails here instead of silently falling back to defaults.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	gameConfig = cfg
	sacrifice.SetConfigPath(flagConfig)
	return nil
}
