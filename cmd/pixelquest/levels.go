package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Show every level with its quota, experience cost and pixels per quest.

Examples:
  pixelquest levels
  pixelquest levels --config ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	// Only needs config; no database
	cfg := loadConfigOrExit()
	curve, err := cfg.Game.Curve()
	if err != nil {
		fatalf("building level curve: %v", err)
	}

	// Print header
	fmt.Printf("  %-3s  %-22s  %5s  %4s  %6s  %8s  %10s  %6s\n",
		"Lvl", "Title", "Q/Art", "Arts", "Quests", "XP", "Total XP", "Px/Q")
	fmt.Printf("  %-3s  %-22s  %5s  %4s  %6s  %8s  %10s  %6s\n",
		"---", "-----", "-----", "----", "------", "--", "--------", "----")

	for _, lvl := range curve.Levels() {
		fmt.Printf("  %-3d  %-22s  %5d  %4d  %6d  %8s  %10s  %6d\n",
			lvl.Number,
			lvl.Title,
			lvl.QuestsPerArtwork,
			lvl.ArtworksNeeded,
			curve.QuestsRequired(lvl.Number),
			humanize.Comma(int64(curve.XPRequiredRounded(lvl.Number))),
			humanize.Comma(int64(curve.CumulativeXP(lvl.Number+1))),
			curve.PixelsPerQuest(lvl.Number),
		)
	}
}
