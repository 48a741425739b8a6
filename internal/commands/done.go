package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:     "done <task-id>",
	Aliases: []string{"complete"},
	Short:   "Mark a task as completed",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore()
		if err != nil {
			return err
		}
		id, err := resolveID(st, args[0])
		if err != nil {
			return err
		}
		task, err := st.Complete(id)
		if err != nil {
			return err
		}

		fmt.Printf("Marked task %s as done: %s\n", task.ID, task.Title)
		if task.CompletedAt != nil {
			fmt.Printf("Completed at: %s\n", task.CompletedAt.Format("15:04:05"))
		}
		return nil
	},
}
