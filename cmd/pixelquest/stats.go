package main

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixelquest/internal/quest"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quest statistics",
	Long: `Show totals from the quest archive of the current slot.

Examples:
  pixelquest stats
  pixelquest stats --slot work`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	a := openApp(false)
	defer a.Close()

	stats, err := a.store.Stats(a.cfg.Storage.Slot)
	if err != nil {
		a.Close()
		fatalf("reading statistics: %v", err)
	}
	snap := a.engine.Snapshot()

	fmt.Printf("Statistics - slot %q\n", stats.Slot)
	fmt.Println()
	fmt.Printf("  Completed      %s\n", humanize.Comma(int64(stats.Completed)))
	fmt.Printf("  Cancelled      %s\n", humanize.Comma(int64(stats.Cancelled)))
	fmt.Printf("  XP earned      %s\n", humanize.Comma(stats.XPEarned))
	fmt.Printf("  Level          %d (%s)\n", snap.Level, snap.LevelInfo.Title)
	fmt.Printf("  Streak         %d day(s)\n", snap.Streak)
	if !stats.LastCompletion.IsZero() {
		fmt.Printf("  Last completed %s\n", humanize.Time(stats.LastCompletion))
	}

	if stats.Completed == 0 {
		return
	}

	fmt.Println()
	fmt.Println("  By difficulty")
	for _, d := range quest.Difficulties() {
		fmt.Printf("    %-10s %d\n", d, stats.ByDifficulty[d])
	}

	fmt.Println()
	fmt.Println("  By category")
	categories := make([]string, 0, len(stats.ByCategory))
	for c := range stats.ByCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		fmt.Printf("    %-10s %d\n", c, stats.ByCategory[c])
	}
}
