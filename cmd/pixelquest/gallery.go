package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixelquest/internal/catalog"
	"github.com/vovakirdan/pixelquest/internal/platform/tui"
)

var flagGalleryCollected bool

var galleryCmd = &cobra.Command{
	Use:   "gallery [query]",
	Short: "Show the artwork gallery",
	Long: `List every artwork with its collection status.

An optional query filters by title or artist.

Examples:
  pixelquest gallery
  pixelquest gallery monet
  pixelquest gallery --collected`,
	Run: runGallery,
}

func init() {
	galleryCmd.Flags().BoolVar(&flagGalleryCollected, "collected", false, "Only show collected artworks")
}

func runGallery(cmd *cobra.Command, args []string) {
	a := openApp(false)
	defer a.Close()

	snap := a.engine.Snapshot()
	cat := a.engine.Catalog()

	artworks := cat.All()
	if query := strings.TrimSpace(strings.Join(args, " ")); query != "" {
		artworks = cat.Search(query)
	}

	fmt.Printf("Gallery - %d/%d collected\n", len(snap.CompletedArtworks), cat.Len())
	fmt.Println()

	// Print header
	fmt.Printf("  %-3s  %-4s  %-12s  %s\n", "#", "Lvl", "Status", "Artwork")
	fmt.Printf("  %-3s  %-4s  %-12s  %s\n", "-", "---", "------", "-------")

	shown := 0
	for _, art := range artworks {
		status := tui.ArtworkStatus(art, snap)
		if flagGalleryCollected && !snap.IsCollected(art.ID) {
			continue
		}
		fmt.Printf("  %-3d  %-4d  %-12s  %s\n", art.ID, art.Level, status, describeArtwork(art, status))
		shown++
	}

	if shown == 0 {
		fmt.Println("  No matching artworks.")
	}
}

func describeArtwork(art catalog.Artwork, status string) string {
	if status == tui.StatusLocked {
		return fmt.Sprintf("??? (unlocks at level %d)", art.Level)
	}
	return art.String()
}
