package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixelquest/internal/storage"
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List save slots",
	Long: `List the save slots stored in the database.

Select a slot for any command with --slot.

Examples:
  pixelquest slots
  pixelquest status --slot work`,
	Args: cobra.NoArgs,
	Run:  runSlots,
}

func runSlots(cmd *cobra.Command, args []string) {
	// Only needs the database
	cfg := loadConfigOrExit()
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fatalf("opening progress database: %v", err)
	}
	defer store.Close()

	slots, err := store.Slots()
	if err != nil {
		store.Close()
		fatalf("listing slots: %v", err)
	}

	if len(slots) == 0 {
		fmt.Println("No saved progress yet.")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-5s  %8s  %s\n", "Slot", "Level", "XP", "Saved")
	fmt.Printf("  %-16s  %-5s  %8s  %s\n", "----", "-----", "--", "-----")

	for _, s := range slots {
		marker := " "
		if s.Slot == cfg.Storage.Slot {
			marker = "*"
		}
		fmt.Printf("%s %-16s  %-5d  %8s  %s\n",
			marker, s.Slot, s.Level, humanize.Comma(int64(s.XP)), humanize.Time(s.UpdatedAt))
	}
}
