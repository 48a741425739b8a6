package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/parser"
	"github.com/taskdeck/taskdeck/internal/store"
)

var addCmd = &cobra.Command{
	Use:   "add [task title]",
	Short: "Add a new task",
	Long: `Add a new task with optional metadata.

Smart parsing syntax inside the title:
  #tag1,tag2  - Tags (comma-separated or individual)
  @category   - Category
  +priority   - Priority (low/medium/high/urgent)
  due:...     - Due date (YYYY-MM-DD, dd/mm/yyyy, 'N days', 'tomorrow')

Explicit flags override parsed values.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		today := models.DateOf(time.Now())
		parsed := parser.ParseTitle(strings.Join(args, " "), today)
		if len(parsed.Errors) > 0 {
			return fmt.Errorf("cannot parse title: %s", strings.Join(parsed.Errors, ", "))
		}

		req := store.CreateRequest{
			Title:    parsed.Title,
			Category: parsed.Category,
			Tags:     parsed.Tags,
			Priority: parsed.Priority,
			DueDate:  parsed.DueDate,
		}

		if description, _ := cmd.Flags().GetString("description"); description != "" {
			req.Description = description
		}
		if category, _ := cmd.Flags().GetString("category"); category != "" {
			req.Category = category
		}
		if tags, _ := cmd.Flags().GetStringSlice("tags"); len(tags) > 0 {
			req.Tags = tags
		}
		if priority, _ := cmd.Flags().GetString("priority"); priority != "" {
			p, err := models.ParsePriority(priority)
			if err != nil {
				return err
			}
			req.Priority = p
		}
		if due, _ := cmd.Flags().GetString("due"); due != "" {
			dueDate, err := parser.ParseDueDate(due, today)
			if err != nil {
				return err
			}
			req.DueDate = dueDate
		}

		st, _, err := openStore()
		if err != nil {
			return err
		}
		task, err := st.Create(req)
		if err != nil {
			return err
		}

		fmt.Printf("Created task %s: %s\n", task.ID, task.Title)
		if task.Category != "" {
			fmt.Printf("  Category: %s\n", task.Category)
		}
		if len(task.Tags) > 0 {
			fmt.Printf("  Tags: %s\n", strings.Join(task.Tags, ", "))
		}
		fmt.Printf("  Priority: %s\n", task.Priority)
		if task.DueDate != nil {
			fmt.Printf("  Due: %s\n", parser.FormatDueDate(task.DueDate, today))
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringP("description", "d", "", "Longer description")
	addCmd.Flags().StringP("category", "c", "", "Category name")
	addCmd.Flags().StringSliceP("tags", "t", []string{}, "Comma-separated tags")
	addCmd.Flags().StringP("priority", "p", "", "Priority: low, medium, high, urgent")
	addCmd.Flags().String("due", "", "Due date: YYYY-MM-DD, dd/mm/yyyy, 'N days', 'tomorrow'")
}
