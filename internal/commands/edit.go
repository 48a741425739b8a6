package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/parser"
	"github.com/taskdeck/taskdeck/internal/store"
)

var editCmd = &cobra.Command{
	Use:   "edit <task-id>",
	Short: "Edit fields of an existing task",
	Long: `Edit an existing task. Only the fields passed as flags change;
everything else stays as it was. An empty --due clears the due date,
an empty --tags clears all tags.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := make(map[string]string)
		for _, name := range []string{"title", "description", "priority", "status", "category", "tags"} {
			if cmd.Flags().Changed(name) {
				value, _ := cmd.Flags().GetString(name)
				fields[name] = value
			}
		}

		patch, err := store.ParsePatch(fields)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("due") {
			due, _ := cmd.Flags().GetString("due")
			if due == "" {
				patch.ClearDueDate = true
			} else {
				dueDate, err := parser.ParseDueDate(due, models.DateOf(time.Now()))
				if err != nil {
					return err
				}
				patch.DueDate = dueDate
			}
		}

		if patch.Empty() {
			return fmt.Errorf("nothing to change: pass at least one field flag")
		}

		st, _, err := openStore()
		if err != nil {
			return err
		}
		id, err := resolveID(st, args[0])
		if err != nil {
			return err
		}
		task, err := st.Update(id, patch)
		if err != nil {
			return err
		}

		fmt.Printf("Updated task %s: %s\n", task.ID, task.Title)
		fmt.Printf("  Status: %s, priority: %s\n", task.Status, task.Priority)
		return nil
	},
}

func init() {
	editCmd.Flags().String("title", "", "New title")
	editCmd.Flags().StringP("description", "d", "", "New description")
	editCmd.Flags().StringP("priority", "p", "", "Priority: low, medium, high, urgent")
	editCmd.Flags().StringP("status", "s", "", "Status: todo, in_progress, done, cancelled")
	editCmd.Flags().StringP("category", "c", "", "Category name")
	editCmd.Flags().StringP("tags", "t", "", "Comma-separated tags (empty clears)")
	editCmd.Flags().String("due", "", "Due date (empty clears)")
}
