package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with a stage picker menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a stage.
Press Esc during a descent to come back here.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select stage
  Tab          - Flight log
  Q            - Quit

Examples:
  lander menu
  lander menu --fps 30
  lander menu --difficulty easy`,
	Run: runMenu,
}

func init() {
	addStageFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
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
	if store != nil {
		defer store.Close()
	}

	if err := menuLoop(store, runtimeConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// menuLoop alternates between the menu, the flight log and stages until
// the player quits.
func menuLoop(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsFlightLog {
			goBack, logErr := tui.RunFlightLog(store, cfg.ScreenW, cfg.ScreenH)
			if logErr != nil {
				return logErr
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from the flight log
		}

		if menuResult.StageID == "" {
			return nil
		}

		// Fresh terrain for each descent unless the seed is pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(menuResult.StageID, store, cfg, logger)
		if err != nil {
			logger.Error("stage failed", "stage", menuResult.StageID, "err", err)
			fmt.Fprintf(os.Stderr, "Error running stage: %v\n", err)
			continue
		}
		if !backToMenu {
			return nil
		}
	}
}
