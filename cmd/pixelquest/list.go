package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List active quests",
	Long: `List the active quests with their position, ID and reward.

Positions and IDs can be used to refer to a quest in other commands.

Examples:
  pixelquest list
  pixelquest done 2`,
	Args: cobra.NoArgs,
	Run:  runList,
}

func runList(cmd *cobra.Command, args []string) {
	a := openApp(false)
	defer a.Close()

	snap := a.engine.Snapshot()
	if len(snap.Quests) == 0 {
		fmt.Println("No active quests.")
		fmt.Println()
		fmt.Println("Add one with 'pixelquest add <title>'.")
		return
	}

	// Print header
	fmt.Printf("  %-3s  %-8s  %-6s  %-8s  %5s  %-14s  %s\n", "#", "ID", "Diff", "Category", "XP", "Added", "Title")
	fmt.Printf("  %-3s  %-8s  %-6s  %-8s  %5s  %-14s  %s\n", "-", "--", "----", "--------", "--", "-----", "-----")

	for i, q := range snap.Quests {
		fmt.Printf("  %-3d  %-8s  %-6s  %-8s  %5d  %-14s  %s\n",
			i+1, shortID(q.ID), q.Difficulty, q.Category, q.XP, humanize.Time(q.CreatedAt), q.Title)
	}
}
