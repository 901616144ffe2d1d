package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixelquest/internal/quest"
)

var (
	flagAddDifficulty string
	flagAddCategory   string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new quest",
	Long: `Add a quest to the active list.

Difficulty decides the reward: easy, medium or hard.

Examples:
  pixelquest add "Clean the kitchen"
  pixelquest add "Finish report" -d hard -c work`,
	Args: cobra.MinimumNArgs(1),
	Run:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddDifficulty, "difficulty", "d", "medium", "Quest difficulty (easy, medium, hard)")
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", quest.DefaultCategory,
		"Quest category ("+strings.Join(quest.Categories(), ", ")+")")
}

func runAdd(cmd *cobra.Command, args []string) {
	difficulty, err := quest.ParseDifficulty(flagAddDifficulty)
	if err != nil {
		fatalf("%v", err)
	}

	a := openApp(false)
	defer a.Close()

	q, err := a.engine.AddQuest(strings.Join(args, " "), difficulty, flagAddCategory)
	if err != nil {
		a.Close()
		fatalf("adding quest: %v", err)
	}

	fmt.Printf("Added quest %q [%s, %s] worth %d XP\n", q.Title, q.Difficulty, q.Category, q.XP)
	fmt.Printf("ID: %s\n", shortID(q.ID))
}

// shortID abbreviates a quest ID for display. Any prefix of at least
// quest.MinIDPrefix characters is accepted back as a reference.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
