package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	Long: `Display completion statistics for the task collection.

Examples:
  taskflow stats
  taskflow stats --verbose`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, store := openEngine()
		defer func() { _ = store.Close() }()

		stats := engine.Stats()

		fmt.Println("📊 Task Statistics:")
		fmt.Println()
		fmt.Printf("Total tasks:      %d\n", stats.Total)
		fmt.Printf("Completed tasks:  %d\n", stats.Completed)
		fmt.Printf("Pending tasks:    %d\n", stats.Pending)

		if verbose && stats.Total > 0 {
			rate := float64(stats.Completed) / float64(stats.Total) * 100
			fmt.Printf("Completion rate:  %.1f%%\n", rate)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
