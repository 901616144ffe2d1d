package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixelquest/internal/engine"
	"github.com/vovakirdan/pixelquest/internal/quest"
)

var (
	flagEditTitle      string
	flagEditDifficulty string
	flagEditXP         int
)

var editCmd = &cobra.Command{
	Use:   "edit <quest>",
	Short: "Change an active quest",
	Long: `Change the title, difficulty or reward of an active quest.

Changing the difficulty resets the reward to that difficulty's default
unless --xp is given as well.

Examples:
  pixelquest edit 1 --title "Clean the garage"
  pixelquest edit 2 -d hard
  pixelquest edit 2 --xp 80`,
	Args: cobra.MinimumNArgs(1),
	Run:  runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&flagEditTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&flagEditDifficulty, "difficulty", "d", "", "New difficulty (easy, medium, hard)")
	editCmd.Flags().IntVar(&flagEditXP, "xp", 0, "Custom XP reward")
}

func runEdit(cmd *cobra.Command, args []string) {
	var patch engine.Patch
	if cmd.Flags().Changed("title") {
		patch.Title = &flagEditTitle
	}
	if cmd.Flags().Changed("difficulty") {
		d, err := quest.ParseDifficulty(flagEditDifficulty)
		if err != nil {
			fatalf("%v", err)
		}
		patch.Difficulty = &d
	}
	if cmd.Flags().Changed("xp") {
		patch.XP = &flagEditXP
	}
	if patch.Title == nil && patch.Difficulty == nil && patch.XP == nil {
		fatalf("nothing to change: use --title, --difficulty or --xp")
	}

	a := openApp(false)
	defer a.Close()

	q := a.resolve(strings.Join(args, " "))
	updated, err := a.engine.UpdateQuest(q.ID, patch)
	if err != nil {
		a.Close()
		fatalf("updating quest: %v", err)
	}
	fmt.Printf("Updated %q [%s] worth %d XP\n", updated.Title, updated.Difficulty, updated.XP)
}
