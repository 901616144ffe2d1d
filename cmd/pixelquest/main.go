// pixelquest is a quest tracker that turns finished tasks into experience,
// levels and slowly revealed pixel-art masterpieces.
//
// Usage:
//
//	pixelquest add <title>       - Add a quest
//	pixelquest list              - List active quests
//	pixelquest done <quest>      - Complete a quest
//	pixelquest cancel <quest>    - Cancel a quest
//	pixelquest delete <quest>    - Delete a quest
//	pixelquest edit <quest>      - Change a quest
//	pixelquest status            - Show level and artwork progress
//	pixelquest board             - Interactive quest board
//	pixelquest gallery [query]   - Show the artwork gallery
//	pixelquest history           - Show finished quests
//	pixelquest stats             - Show quest statistics
//	pixelquest levels            - Show the level table
//	pixelquest export <file>     - Export progress to a file
//	pixelquest import <file>     - Import progress from a file
//	pixelquest slots             - List save slots
//	pixelquest reset             - Start over
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.pixelquest, ./configs)
//	--db <path>         - Database path (default from config)
//	--slot <name>       - Save slot (default from config)
//	--seed <value>      - RNG seed for pixel reveals
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSlot     string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixelquest",
	Short: "Pixel Quest - Complete quests, level up, collect art",
	Long: `Pixel Quest is a gamified quest tracker for your terminal.

Every completed quest earns experience and reveals pixels of a famous
artwork. Fill a canvas to add the artwork to your gallery; level up to
unlock new ones.

Examples:
  pixelquest add "Read 20 pages" -d easy -c learning
  pixelquest list
  pixelquest done 1
  pixelquest status --canvas
  pixelquest board`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagSlot, "slot", "", "Save slot name (default from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for pixel reveals (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(galleryCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(revealCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(resetCmd)
}
