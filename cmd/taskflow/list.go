package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/taskflow/types"
)

var (
	listFilter string
	listSearch string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks with optional filtering and searching.

The filter selects a view of the collection; the search term then
narrows that view by matching titles and descriptions.

Examples:
  taskflow list                      # Show all tasks
  taskflow list --filter pending     # Show only pending tasks
  taskflow list --filter high        # Show only high priority tasks
  taskflow list --filter today       # Show tasks due today
  taskflow list --search "grocery"   # Search within the current view`,
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := types.ParseFilter(listFilter)
		if err != nil {
			return err
		}

		engine, store := openEngine()
		defer func() { _ = store.Close() }()

		tasks := engine.List(kind, listSearch)
		printTasks(tasks, engine.Today())

		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listFilter, "filter", "all", "View to show (all, pending, completed, high, today)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Search tasks by text")

	rootCmd.AddCommand(listCmd)
}

// printTasks renders a task list with due date annotations.
func printTasks(tasks []types.Task, today types.Date) {
	if len(tasks) == 0 {
		fmt.Println("  (no tasks found)")
		return
	}

	for _, t := range tasks {
		icon := "○"
		if t.Completed() {
			icon = "●"
		}
		fmt.Printf("  %s %d. %s [%s] %s\n", icon, t.ID, t.Title, t.Priority, dueAnnotation(t, today))
		if verbose && t.Description != "" {
			fmt.Printf("      %s\n", t.Description)
		}
	}
}

// dueAnnotation formats a task's due date with its urgency class.
func dueAnnotation(t types.Task, today types.Date) string {
	days := today.DaysUntil(t.DueDate)
	switch t.UrgencyOn(today) {
	case types.UrgencyOverdue:
		return fmt.Sprintf("due %s (overdue by %d days)", t.DueDate, -days)
	case types.UrgencyDueToday:
		return fmt.Sprintf("due %s (today)", t.DueDate)
	default:
		return fmt.Sprintf("due %s (%d days)", t.DueDate, days)
	}
}
