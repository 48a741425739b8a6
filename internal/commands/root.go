// Package commands wires the task engine to a cobra CLI. Each command
// is a thin one-shot surface: open the store, run one operation, print.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/config"
	"github.com/taskdeck/taskdeck/internal/models"
	"github.com/taskdeck/taskdeck/internal/render"
	"github.com/taskdeck/taskdeck/internal/storage"
	"github.com/taskdeck/taskdeck/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "A task manager for the terminal",
	Long: `taskdeck is a command-line task manager: create, update and complete
tasks, filter and search them, and export or inspect aggregate stats.
Tasks persist locally between runs (JSON snapshot or SQLite).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion sets the build information shown by the version command.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openStore builds the configured adapter and loads the store. A
// corrupt snapshot is reported and recovered as empty rather than
// silently swallowed; the next save rewrites it.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}

	var adapter storage.Adapter
	switch cfg.Backend {
	case config.BackendSQLite:
		adapter, err = storage.NewSQLite(cfg.DatabasePath())
		if err != nil {
			return nil, config.Config{}, err
		}
	default:
		adapter = storage.NewJSONFile(cfg.SnapshotPath())
	}

	st, err := store.Open(adapter)
	if err != nil {
		if st != nil && errors.Is(err, storage.ErrCorruptSnapshot) {
			slog.Warn("task snapshot is corrupt, starting from an empty store", "error", err)
			return st, cfg, nil
		}
		return nil, config.Config{}, err
	}
	return st, cfg, nil
}

// newRenderer builds the table renderer for the given config.
func newRenderer(cfg config.Config) *render.Renderer {
	return render.New(cfg.NoColor)
}

// resolveID expands a (possibly abbreviated) task id to the full one.
// A prefix has to be unambiguous.
func resolveID(st *store.Store, arg string) (string, error) {
	if _, err := st.Get(arg); err == nil {
		return arg, nil
	}

	var match string
	for _, task := range st.List() {
		if strings.HasPrefix(task.ID, arg) {
			if match != "" {
				return "", fmt.Errorf("ambiguous task id %q", arg)
			}
			match = task.ID
		}
	}
	if match == "" {
		return "", &models.NotFoundError{ID: arg}
	}
	return match, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("taskdeck %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
