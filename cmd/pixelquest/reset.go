package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagResetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start over",
	Long: `Erase all progress in the current slot: quests, history, experience
and collected artworks.

Examples:
  pixelquest reset --yes
  pixelquest reset --slot old --yes`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetYes, "yes", "y", false, "Confirm the reset")
}

func runReset(cmd *cobra.Command, args []string) {
	if !flagResetYes {
		fatalf("reset erases all progress; run again with --yes to confirm")
	}

	a := openApp(false)
	defer a.Close()

	a.engine.Reset()
	if err := a.store.DeleteGame(a.cfg.Storage.Slot); err != nil {
		a.Close()
		fatalf("deleting saved progress: %v", err)
	}
	fmt.Printf("Slot %q reset. Back to level 1.\n", a.cfg.Storage.Slot)
}
