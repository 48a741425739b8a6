package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/analytics"
	"github.com/taskdeck/taskdeck/internal/models"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate task statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cfg, err := openStore()
		if err != nil {
			return err
		}

		stats := analytics.Compute(st.List(), models.DateOf(time.Now()))

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			data, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		fmt.Print(newRenderer(cfg).Stats(stats))
		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("json", false, "Output as JSON")
}
