package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/parser"
)

var showCmd = &cobra.Command{
	Use:   "show <task-id>",
	Short: "Show one task in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore()
		if err != nil {
			return err
		}
		id, err := resolveID(st, args[0])
		if err != nil {
			return err
		}
		task, err := st.Get(id)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", task.Title)
		fmt.Printf("  ID:          %s\n", task.ID)
		fmt.Printf("  Status:      %s\n", task.Status)
		fmt.Printf("  Priority:    %s\n", task.Priority)
		if task.Description != "" {
			fmt.Printf("  Description: %s\n", task.Description)
		}
		if task.Category != "" {
			fmt.Printf("  Category:    %s\n", task.Category)
		}
		if len(task.Tags) > 0 {
			fmt.Printf("  Tags:        %s\n", strings.Join(task.Tags, ", "))
		}
		if task.DueDate != nil {
			fmt.Printf("  Due:         %s\n", parser.FormatDueDate(task.DueDate, models.DateOf(time.Now())))
		}
		fmt.Printf("  Created:     %s\n", task.CreatedAt.Format(time.RFC3339))
		fmt.Printf("  Updated:     %s\n", task.UpdatedAt.Format(time.RFC3339))
		if task.CompletedAt != nil {
			fmt.Printf("  Completed:   %s\n", task.CompletedAt.Format(time.RFC3339))
		}
		return nil
	},
}
