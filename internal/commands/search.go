package commands

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/export"
	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/query"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search tasks",
	Long: `Search tasks case-insensitively: substring match against title and
description, exact match against tags.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore()
		if err != nil {
			return err
		}

		tasks := query.Search(st.List(), args[0])
		sort.Slice(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		})

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return export.JSON(cmd.OutOrStdout(), tasks)
		}

		fmt.Printf("Search results for %q (%d found):\n\n", args[0], len(tasks))
		fmt.Print(newRenderer(cfg).TaskTable(tasks, models.DateOf(time.Now())))
		return nil
	},
}

func init() {
	searchCmd.Flags().Bool("json", false, "Output as JSON")
}
