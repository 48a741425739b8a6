package commands

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/query"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	Long:    "List tasks with optional filters for status, priority, category and overdue state. Filters combine.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter query.Filter
		today := models.DateOf(time.Now())

		if value, _ := cmd.Flags().GetString("status"); value != "" {
			status, err := models.ParseStatus(value)
			if err != nil {
				return err
			}
			filter.Status = &status
		}
		if value, _ := cmd.Flags().GetString("priority"); value != "" {
			priority, err := models.ParsePriority(value)
			if err != nil {
				return err
			}
			filter.Priority = &priority
		}
		if value, _ := cmd.Flags().GetString("category"); value != "" {
			filter.Category = &value
		}
		if overdue, _ := cmd.Flags().GetBool("overdue"); overdue {
			filter.OverdueOn = &today
		}

		st, cfg, err := openStore()
		if err != nil {
			return err
		}

		tasks := filter.Apply(st.List())
		// Store order is unspecified; oldest first keeps output stable.
		sort.Slice(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		})

		fmt.Print(newRenderer(cfg).TaskTable(tasks, today))
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("status", "s", "", "Filter by status: todo, in_progress, done, cancelled")
	listCmd.Flags().StringP("priority", "p", "", "Filter by priority: low, medium, high, urgent")
	listCmd.Flags().StringP("category", "c", "", "Filter by category (case-insensitive)")
	listCmd.Flags().Bool("overdue", false, "Show only overdue tasks")
}
