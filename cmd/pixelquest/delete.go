package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <quest>",
	Aliases: []string{"rm"},
	Short:   "Delete a quest",
	Long: `Remove an active quest without adding it to history.

Examples:
  pixelquest delete 2`,
	Args: cobra.MinimumNArgs(1),
	Run:  runDelete,
}

func runDelete(cmd *cobra.Command, args []string) {
	a := openApp(false)
	defer a.Close()

	q := a.resolve(strings.Join(args, " "))
	if err := a.engine.DeleteQuest(q.ID); err != nil {
		a.Close()
		fatalf("deleting quest: %v", err)
	}
	fmt.Printf("Deleted %q\n", q.Title)
}
