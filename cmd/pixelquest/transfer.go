package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixelquest/internal/persistence/snapshot"
)

var flagImportLenient bool

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export progress to a file",
	Long: `Write the current slot's progress to a compressed save file.

Examples:
  pixelquest export backup.pqs`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import progress from a file",
	Long: `Replace the current slot's progress with a save file.

The file is checked against the save schema first. With --lenient,
schema errors are skipped and damaged fields are repaired or dropped.

Examples:
  pixelquest import backup.pqs
  pixelquest import old.pqs --lenient`,
	Args: cobra.ExactArgs(1),
	Run:  runImport,
}

func init() {
	importCmd.Flags().BoolVar(&flagImportLenient, "lenient", false, "Skip schema validation and repair what can be read")
}

func runExport(cmd *cobra.Command, args []string) {
	a := openApp(false)
	defer a.Close()

	save := a.engine.Save()
	if err := snapshot.WriteFile(args[0], save); err != nil {
		a.Close()
		fatalf("exporting progress: %v", err)
	}
	fmt.Printf("Exported level %d, %d XP, %d artworks to %s\n",
		save.Level, save.XP, len(save.CompletedArtworks), args[0])
}

func runImport(cmd *cobra.Command, args []string) {
	read := snapshot.ReadFile
	if flagImportLenient {
		read = snapshot.ReadFileLenient
	}
	save, warnings, err := read(args[0])
	if err != nil {
		fatalf("importing progress: %v", err)
	}

	a := openApp(false)
	defer a.Close()

	warnings = append(warnings, a.engine.Restore(save)...)

	// Replace the slot, including its archived history
	if err := a.store.DeleteGame(a.cfg.Storage.Slot); err != nil {
		a.Close()
		fatalf("clearing slot: %v", err)
	}
	if err := a.slot.Save(a.engine.Save()); err != nil {
		a.Close()
		fatalf("saving imported progress: %v", err)
	}

	for _, w := range warnings {
		fmt.Printf("warning: %s\n", w)
	}
	snap := a.engine.Snapshot()
	fmt.Printf("Imported level %d, %d XP, %d active quests into slot %q\n",
		snap.Level, snap.XP, len(snap.Quests), a.cfg.Storage.Slot)
}
