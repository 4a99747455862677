// lander is an arcade lunar lander for the terminal.
//
// Usage:
//
//	lander list              - List available stages
//	lander play [stage]      - Fly a stage (default stage1)
//	lander menu              - Start menu to pick stages interactively
//	lander serve             - Start SSH server for remote play
//	lander flights [stage]   - Show recorded touchdowns
//	lander config            - Print the effective stage configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible terrain
//	--db <path>          - Set database path (default: ~/.lander/flights.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file while the terminal UI runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import stages to register them
	_ "github.com/vovakirdan/tui-lander/internal/games/lander"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Lunar Lander - Fly vector descents in your terminal",
	Long: `Lunar Lander is a terminal arcade game: undock from the ferry,
descend over jagged terrain and set the lander down on the pad.

Available commands:
  list     - Show all available stages
  play     - Fly a specific stage directly
  menu     - Interactive stage picker menu
  serve    - Start SSH server for remote play
  flights  - View the touchdown flight log
  config   - Print the effective configuration as YAML

Examples:
  lander list
  lander play
  lander play stage1 --difficulty hard
  lander menu
  lander serve --ssh :2222
  lander flights stage1`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lander/flights.db", "Path to flight log database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive commands (default: discard)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(flightsCmd)
	rootCmd.AddCommand(configCmd)
}
