package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/raycaster/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all built-in arenas",
	Long:  `Shows every arena registered with the game, with its map size.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	arenas := registry.List()

	if len(arenas) == 0 {
		fmt.Println("No arenas available.")
		return
	}

	fmt.Println("Available arenas:")
	fmt.Println()

	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, a := range arenas {
		maxIDLen = max(maxIDLen, len(a.ID))
		maxTitleLen = max(maxTitleLen, len(a.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Size")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----")

	for _, a := range arenas {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, a.ID, maxTitleLen, a.Title, a.Detail)
	}

	fmt.Println()
	fmt.Println("Run 'raycaster play <id>' to play an arena.")
}
