package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all tasks to a file",
	Long:  "Export the full task set as JSON (the snapshot record shape) or CSV.",
	RunE: func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := cmd.Flags().GetString("format")
		format, err := export.ParseFormat(formatFlag)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = "tasks." + string(format)
		}

		st, _, err := openStore()
		if err != nil {
			return err
		}
		tasks := st.List()
		sort.Slice(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		})

		path, err := export.WriteFile(format, out, tasks)
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d tasks to %s\n", len(tasks), path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "Export format: json or csv")
	exportCmd.Flags().StringP("out", "o", "", "Output path (default tasks.<format>)")
}
