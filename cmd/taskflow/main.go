package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arthur-debert/taskflow/taskflow"
)

var (
	dataFile string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "taskflow",
	Short: "A single-user task manager backed by a local JSON file",
	Long: `Taskflow is a command-line task manager. Tasks have a title, an
optional description, a priority (low, medium, high) and a due date set
seven days after creation. Everything is persisted to a single local
JSON file, rewritten atomically on every change.

Examples:
  taskflow add "Buy milk"
  taskflow add --priority high "Ship release"
  taskflow list --filter pending
  taskflow complete 1
  taskflow stats`,
}

func init() {
	cobra.OnInitialize(initConfig, setupLogging)

	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "data file to use (default tasks.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	_ = viper.BindPFlag("file", rootCmd.PersistentFlags().Lookup("file"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openEngine opens the store at the configured path and wraps it in an
// engine. The caller is responsible for closing the returned store.
func openEngine() (*taskflow.Engine, *taskflow.Store) {
	store := taskflow.Open(viper.GetString("file"), slog.Default())
	return taskflow.NewEngine(store), store
}

// parseID converts a positional argument to a task id.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id %q (expected a positive integer)", arg)
	}
	return id, nil
}
