package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a task as completed",
	Long: `Mark a task as completed.

Completion is not terminal: use 'taskflow reopen' to move a task back
to pending.

Examples:
  taskflow complete 1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		engine, store := openEngine()
		defer func() { _ = store.Close() }()

		task, err := engine.SetStatus(id, true)
		if err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}

		fmt.Printf("✅ Completed: %d. %s\n", task.ID, task.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
