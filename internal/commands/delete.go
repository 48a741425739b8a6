package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "rm <task-id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
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

		removed, err := st.Delete(id)
		if err != nil {
			return err
		}
		if !removed {
			fmt.Printf("Task %s was already gone.\n", id)
			return nil
		}
		fmt.Printf("Deleted task %s\n", id)
		return nil
	},
}
