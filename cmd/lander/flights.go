package main

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/games/lander"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	flagFlightLimit int
	flagClear       bool
)

var flightsCmd = &cobra.Command{
	Use:   "flights [stage]",
	Short: "Show recorded touchdowns for a stage",
	Long: `Display the most recent touchdowns recorded for the specified stage
(stage1 if omitted), with a summary of the whole log.

Examples:
  lander flights
  lander flights stage1 --limit 50
  lander flights stage1 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runFlights,
}

func init() {
	flightsCmd.Flags().IntVar(&flagFlightLimit, "limit", 10, "Number of flights to show")
	flightsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stage's flight log")
}

func runFlights(cmd *cobra.Command, args []string) {
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening flight log: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearFlights(stageID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("Flight log for %s cleared.\n", stageID)
		return
	}

	flights, err := store.RecentFlights(stageID, flagFlightLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving flights: %v\n", err)
		return
	}

	fmt.Printf("Flight Log - %s\n", stageID)
	fmt.Println()

	if len(flights) == 0 {
		fmt.Println("No flights recorded yet.")
		fmt.Println()
		fmt.Printf("Run 'lander play %s' to make the first touchdown!\n", stageID)
		return
	}

	fmt.Printf("  %-5s  %-8s  %7s  %5s  %7s  %5s  %7s  %s\n",
		"#", "Outcome", "Speed", "Tilt", "Offset", "Fuel", "Time", "Date")
	fmt.Printf("  %-5s  %-8s  %7s  %5s  %7s  %5s  %7s  %s\n",
		"-", "-------", "-----", "----", "------", "----", "----", "----")

	for _, f := range flights {
		fmt.Printf("  %-5d  %-8s  %7.1f  %4.0f°  %7.1f  %4.0f%%  %6.1fs  %s\n",
			f.ID, f.Outcome, f.Speed, f.Tilt*180/math.Pi, f.PadOffset, f.Fuel,
			f.FlightSecs, f.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(stageID)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Flights: %d  Landed: %d  Mean touchdown speed: %.1f\n",
		stats.Flights, stats.Landed, stats.MeanSpeed)
	if stats.Landed > 0 {
		fmt.Printf("Closest to pad center: %.1f\n", stats.BestPadOffset)
	}
}
