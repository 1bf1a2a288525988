package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/taskflow/types"
)

var (
	editTitle       string
	editDescription string
	editPriority    string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a task",
	Long: `Edit the title, description or priority of an existing task.
Flags that are not set keep the task's current values.

Examples:
  taskflow edit 1 --title "Buy oat milk"
  taskflow edit 2 --priority high
  taskflow edit 2 --description "Before Friday" --priority high`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		engine, store := openEngine()
		defer func() { _ = store.Close() }()

		task, err := store.Get(id)
		if err != nil {
			return fmt.Errorf("failed to edit task: %w", err)
		}

		title := task.Title
		if cmd.Flags().Changed("title") {
			title = editTitle
		}
		description := task.Description
		if cmd.Flags().Changed("description") {
			description = editDescription
		}
		priority := task.Priority
		if cmd.Flags().Changed("priority") {
			priority, err = types.ParsePriority(editPriority)
			if err != nil {
				return err
			}
		}

		updated, err := engine.Update(id, title, description, priority)
		if err != nil {
			return fmt.Errorf("failed to edit task: %w", err)
		}

		fmt.Printf("✏️  Task updated: %d. %s\n", updated.ID, updated.Title)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVar(&editDescription, "description", "", "New description")
	editCmd.Flags().StringVar(&editPriority, "priority", "", "New priority (low, medium, high)")

	rootCmd.AddCommand(editCmd)
}
