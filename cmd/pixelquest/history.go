package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished quests",
	Long: `Show completed and cancelled quests, newest first.

Examples:
  pixelquest history
  pixelquest history -n 50`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "Number of entries to show (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) {
	a := openApp(false)
	defer a.Close()

	history := a.engine.Snapshot().History
	if len(history) == 0 {
		fmt.Println("No finished quests yet.")
		return
	}
	if flagHistoryLimit > 0 && len(history) > flagHistoryLimit {
		history = history[:flagHistoryLimit]
	}

	// Print header
	fmt.Printf("  %-10s  %-6s  %5s  %-14s  %s\n", "Status", "Diff", "XP", "When", "Title")
	fmt.Printf("  %-10s  %-6s  %5s  %-14s  %s\n", "------", "----", "--", "----", "-----")

	for _, q := range history {
		when := "-"
		if q.CompletedAt != nil {
			when = humanize.Time(*q.CompletedAt)
		}
		fmt.Printf("  %-10s  %-6s  %5d  %-14s  %s\n", q.Status, q.Difficulty, q.XP, when, q.Title)
	}
}
