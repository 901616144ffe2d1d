package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixelquest/internal/engine"
	"github.com/vovakirdan/pixelquest/internal/quest"
)

var doneCmd = &cobra.Command{
	Use:     "done <quest>",
	Aliases: []string{"complete"},
	Short:   "Complete a quest",
	Long: `Complete a quest, earning its experience and revealing pixels of the
current artwork.

The quest can be given by list position, ID (or a prefix of at least 4
characters) or part of its title.

Examples:
  pixelquest done 1
  pixelquest done kitchen`,
	Args: cobra.MinimumNArgs(1),
	Run:  runDone,
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <quest>",
	Short: "Cancel a quest",
	Long: `Move a quest to history as cancelled. No experience is awarded.

Examples:
  pixelquest cancel 3`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCancel,
}

func runDone(cmd *cobra.Command, args []string) {
	finishQuest(strings.Join(args, " "), quest.StatusCompleted)
}

func runCancel(cmd *cobra.Command, args []string) {
	finishQuest(strings.Join(args, " "), quest.StatusCancelled)
}

func finishQuest(ref string, status quest.Status) {
	a := openApp(false)
	defer a.Close()

	q := a.resolve(ref)
	out, err := a.engine.CompleteQuest(q.ID, status)
	if err != nil {
		a.Close()
		fatalf("finishing quest: %v", err)
	}

	if status == quest.StatusCancelled {
		fmt.Printf("Cancelled %q\n", q.Title)
		return
	}
	printOutcome(a, out)
}

// resolve finds an active quest by reference or exits.
func (a *app) resolve(ref string) quest.Quest {
	q, err := quest.Resolve(a.engine.Snapshot().Quests, ref)
	if err != nil {
		a.Close()
		fatalf("%v", err)
	}
	return q
}

func printOutcome(a *app, out engine.Outcome) {
	snap := a.engine.Snapshot()

	fmt.Printf("Quest complete: %q\n", out.Quest.Title)
	fmt.Printf("  +%d XP (total %d)\n", out.XPAwarded, snap.XP)
	if out.PixelsRevealed > 0 {
		fmt.Printf("  %d pixels revealed\n", out.PixelsRevealed)
	}

	if out.ArtworkCompleted {
		if art, ok := a.engine.Catalog().ByID(out.CompletedArtwork); ok {
			fmt.Printf("  Artwork collected: %s\n", art)
		}
	}
	for _, id := range out.Backfilled {
		if id == out.CompletedArtwork {
			continue
		}
		if art, ok := a.engine.Catalog().ByID(id); ok {
			fmt.Printf("  Artwork collected: %s\n", art)
		}
	}

	if out.LeveledUp {
		fmt.Println()
		fmt.Printf("LEVEL UP! Level %d: %s\n", out.NewLevel, snap.LevelInfo.Title)
		if snap.LevelInfo.Description != "" {
			fmt.Printf("  %s\n", snap.LevelInfo.Description)
		}
		for _, art := range out.Unlocked {
			fmt.Printf("  Unlocked: %s\n", art)
		}
		// The CLI has no banner to dismiss
		a.engine.DismissLevelUp()
		a.engine.ClearNewUnlocks()
	}

	if out.ArtworkChanged {
		fmt.Printf("  Now revealing: artwork #%d\n", snap.Artwork.ID)
	}
}
