package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/taskflow/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search tasks by text",
	Long: `Search tasks whose title or description contains the given term,
case-insensitively.

Examples:
  taskflow search milk`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, store := openEngine()
		defer func() { _ = store.Close() }()

		tasks := engine.List(types.FilterAll, args[0])
		fmt.Printf("Search results for '%s':\n", args[0])
		printTasks(tasks, engine.Today())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
