package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var revealCmd = &cobra.Command{
	Use:   "reveal <count>",
	Short: "Reveal bonus pixels",
	Long: `Reveal extra pixels on the current artwork without completing a quest.

Examples:
  pixelquest reveal 10`,
	Args: cobra.ExactArgs(1),
	Run:  runReveal,
}

func runReveal(cmd *cobra.Command, args []string) {
	count, err := strconv.Atoi(args[0])
	if err != nil {
		fatalf("invalid count %q", args[0])
	}

	a := openApp(false)
	defer a.Close()

	out, err := a.engine.RevealPixels(count)
	if err != nil {
		a.Close()
		fatalf("revealing pixels: %v", err)
	}

	fmt.Printf("%d pixels revealed\n", out.PixelsRevealed)
	if out.ArtworkCompleted {
		if art, ok := a.engine.Catalog().ByID(out.CompletedArtwork); ok {
			fmt.Printf("Artwork collected: %s\n", art)
		}
	}
}
