package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the task collection",
	Long: `Export a snapshot of the full task collection as JSON or YAML,
to stdout or a file.

Examples:
  taskflow export
  taskflow export --format yaml
  taskflow export --format json --output backup.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, store := openEngine()
		defer func() { _ = store.Close() }()

		tasks := engine.Tasks()

		var data []byte
		var err error
		switch exportFormat {
		case "json":
			data, err = json.MarshalIndent(tasks, "", "  ")
			data = append(data, '\n')
		case "yaml":
			data, err = yaml.Marshal(tasks)
		default:
			return fmt.Errorf("invalid format %q (valid: json, yaml)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("failed to export tasks: %w", err)
		}

		if exportOutput == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}
		fmt.Printf("Exported %d tasks to %s\n", len(tasks), exportOutput)

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format (json, yaml)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default stdout)")

	rootCmd.AddCommand(exportCmd)
}
