// javirun is a side-scrolling endless runner for the terminal, a desktop
// window, or an SSH session.
//
// Usage:
//
//	javirun play             - Play in the terminal
//	javirun window           - Play in a window (sprites, touch, pointer)
//	javirun serve            - Start SSH server for remote play
//	javirun scores           - Show best runs and the high score
//	javirun sim              - Run a headless autopilot game
//	javirun config           - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.javirun/scores.db)
//	--store <kind>     - High score backend: sqlite, savedata, memory
//	--config <path>    - Runner config file (.yaml or .toml)
//	--strict-config    - Reject invalid config values instead of repairing them
//	--log-level <lvl>  - debug, info, warn, error
//	--log-file <path>  - Log destination ("-" for stderr)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS          int
	flagSeed         int64
	flagDBPath       string
	flagStore        string
	flagConfig       string
	flagStrictConfig bool
	flagLogLevel     string
	flagLogFile      string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "javirun",
	Short: "Javi Run - a blue & white endless runner",
	Long: `Javi Run is a side-scrolling endless runner. Jump over obstacles
that scroll in from the right; every obstacle cleared scores a point.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View best runs
  sim      - Headless autopilot run
  config   - Print the effective configuration

Examples:
  javirun play
  javirun window --scale 1.5
  javirun serve --ssh :2222
  javirun sim --seed 42 --seconds 60
  javirun config --format toml > runner.toml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.javirun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "High score backend: sqlite, savedata, memory (default depends on command)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to runner config (.yaml or .toml)")
	rootCmd.PersistentFlags().BoolVar(&flagStrictConfig, "strict-config", false, "Fail on invalid config values instead of repairing them")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.javirun/javirun.log", `Log file ("-" for stderr)`)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
