package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixelquest/internal/platform/tui"
)

var flagStatusCanvas bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show level and artwork progress",
	Long: `Show the current level, experience, artwork progress and streak.

Examples:
  pixelquest status
  pixelquest status --canvas`,
	Args: cobra.NoArgs,
	Run:  runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&flagStatusCanvas, "canvas", false, "Draw the current artwork canvas")
}

func runStatus(cmd *cobra.Command, args []string) {
	a := openApp(false)
	defer a.Close()

	snap := a.engine.Snapshot()
	theme := tui.DefaultTheme()

	fmt.Printf("Level %d/%d: %s\n", snap.Level, snap.MaxLevel, snap.LevelInfo.Title)
	if snap.LevelInfo.Description != "" {
		fmt.Printf("  %s\n", snap.LevelInfo.Description)
	}
	fmt.Println()

	if snap.Level >= snap.MaxLevel {
		fmt.Printf("XP       %d (max level)\n", snap.XP)
	} else {
		fmt.Printf("XP       %s %.0f/%.0f (%d%%)\n",
			tui.RenderBar(snap.LevelProgress.Percentage, 30, theme.BarFilled, theme.BarEmpty),
			snap.LevelProgress.Current, snap.LevelProgress.Needed, snap.LevelProgress.Percentage)
	}

	if snap.Artwork.ID != 0 {
		fmt.Printf("Artwork  %s %d/%d (%d%%)\n",
			tui.RenderBar(snap.ArtworkProgress.Percentage, 30, theme.ArtBarFill, theme.BarEmpty),
			snap.ArtworkProgress.Revealed, snap.ArtworkProgress.Total, snap.ArtworkProgress.Percentage)
		fmt.Printf("         #%d %s\n", snap.Artwork.ID, snap.Artwork)
	}

	fmt.Printf("Gallery  %d/%d collected\n", len(snap.CompletedArtworks), a.engine.Catalog().Len())
	fmt.Printf("Quests   %d active, %d completed\n", len(snap.Quests), snap.TotalQuestsCompleted)
	fmt.Printf("Streak   %d day(s)\n", snap.Streak)

	if flagStatusCanvas && snap.Artwork.ID != 0 {
		fmt.Println()
		fmt.Println(theme.Frame.Render(tui.RenderCanvas(snap.Artwork, snap.Revealed, theme)))
	}
}
