package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reopenCmd = &cobra.Command{
	Use:   "reopen <id>",
	Short: "Move a completed task back to pending",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		engine, store := openEngine()
		defer func() { _ = store.Close() }()

		task, err := engine.SetStatus(id, false)
		if err != nil {
			return fmt.Errorf("failed to reopen task: %w", err)
		}

		fmt.Printf("○ Reopened: %d. %s\n", task.ID, task.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reopenCmd)
}
