package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/games/lander"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [stage]",
	Short: "Fly a stage",
	Long: `Start the specified stage (stage1 if omitted).

Controls:
  Up/W        - Main engine
  Left/A      - Rotate counter-clockwise
  Right/D     - Rotate clockwise
  Space       - Skip the undocking cinematic
  P           - Pause (tuning panel: 1/2 gravity, 3/4 thrust, 5/6 fuel)
  R           - Restart after touchdown
  Esc/B       - Back to the stage menu
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Gentler gravity, wider pad, looser landing limits
  normal - Stock tuning
  hard   - Heavier gravity, narrow pad, tight landing limits

Examples:
  lander play
  lander play stage1 --difficulty hard
  lander play --config ./my-lander.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addStageFlags(playCmd)
}

// addStageFlags registers the stage configuration flags on cmd.
func addStageFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom stage config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// applyStageFlags hands --config and --difficulty to the stages and checks
// the result loads, so config errors surface before the screen switches.
func applyStageFlags(logger *log.Logger) error {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	lander.SetConfigPath(flagConfig)
	lander.SetDifficultyPreset(preset)

	_, err = lander.LoadConfig(logger)
	return err
}

// runtimeConfig sizes the runtime config to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the flight log. Flying works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open flight log: %v\n", err)
		logger.Warn("flight log unavailable", "err", err)
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	stageID := lander.StageID
	if len(args) == 1 {
		stageID = args[0]
	}

	// Check if stage exists
	if !registry.Exists(stageID) {
		fmt.Fprintf(os.Stderr, "Error: unknown stage %q\n", stageID)
		fmt.Fprintln(os.Stderr, "Run 'lander list' to see available stages.")
		os.Exit(1)
	}

	logger, closeLog, err := interactiveLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := applyStageFlags(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	cfg := runtimeConfig()

	backToMenu, runErr := tui.Run(stageID, store, cfg, logger)
	if runErr == nil && backToMenu {
		// Escape leads to the stage menu
		runErr = menuLoop(store, cfg, logger)
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running stage: %v\n", runErr)
		os.Exit(1)
	}
}
