package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixelquest/internal/platform/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive quest board",
	Long: `Open the full-screen quest board.

The board shows active quests next to the artwork being revealed.
Press ? inside the board for all key bindings.

Examples:
  pixelquest board
  pixelquest board --slot work`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func runBoard(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fatalf("the board needs an interactive terminal")
	}

	a := openApp(true)
	defer a.Close()

	// Get terminal size
	width, height := 0, 0
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	a.logger.Info("board opened", "slot", a.cfg.Storage.Slot, "width", width, "height", height)
	if err := tui.Run(a.engine, a.logger, width, height); err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error running board: %v\n", err)
		os.Exit(1)
	}
	a.logger.Info("board closed")
}
