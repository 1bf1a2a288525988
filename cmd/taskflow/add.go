package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/taskflow/types"
)

var (
	addDescription string
	addPriority    string
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Long: `Add a new task to the collection.

The task starts as pending with a due date seven days out. Priority
defaults to medium unless specified.

Examples:
  taskflow add "Buy groceries"
  taskflow add --priority high "Ship release"
  taskflow add --description "Weekly shopping" "Groceries"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		priority, err := types.ParsePriority(addPriority)
		if err != nil {
			return err
		}

		engine, store := openEngine()
		defer func() { _ = store.Close() }()

		task, err := engine.Add(args[0], addDescription, priority)
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		fmt.Printf("✅ Task created: %d. %s\n", task.ID, task.Title)
		if verbose {
			fmt.Printf("   Priority: %s\n", task.Priority)
			fmt.Printf("   Due: %s\n", task.DueDate)
		}

		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Detailed description")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "Priority level (low, medium, high)")

	rootCmd.AddCommand(addCmd)
}
