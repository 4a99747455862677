package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available stages",
	Long:  `Shows a list of all stages registered in the game.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	stages := registry.List()

	if len(stages) == 0 {
		fmt.Println("No stages available.")
		return
	}

	fmt.Println("Available stages:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range stages {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, s := range stages {
		fmt.Printf("  %-*s  %s\n", maxIDLen, s.ID, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'lander play <id>' to fly a stage.")
}
