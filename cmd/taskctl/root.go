package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/yukikurage/task-dashboard/internal/models"
	"github.com/yukikurage/task-dashboard/internal/repository"
	"github.com/yukikurage/task-dashboard/internal/seed"
	"github.com/yukikurage/task-dashboard/internal/services"
)

type rootOptions struct {
	seedFile string
	asJSON   bool
	today    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "taskctl",
		Short: "Query the task dashboard collection from the command line.",
		Long: `taskctl runs the dashboard's search, filter and sort pipeline over a task
collection and prints the result.

Without --seed it uses the built-in sample collection.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.seedFile, "seed", "", "YAML seed file (default: built-in collection)")
	cmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of a table")
	cmd.PersistentFlags().StringVar(&opts.today, "today", "", "evaluate date-relative stats as of this date (YYYY-MM-DD)")

	cmd.AddCommand(newListCmd(opts), newCountsCmd(opts), newStatsCmd(opts))
	return cmd
}

func (o *rootOptions) loadService() (*services.TaskService, error) {
	data, err := o.loadSeed()
	if err != nil {
		return nil, err
	}
	repo, err := repository.NewTaskRepository(data.Clone())
	if err != nil {
		return nil, err
	}
	return services.NewTaskService(repo, services.NewFilterOptions(data.Owners, data.Types)), nil
}

func (o *rootOptions) loadSeed() (*seed.Data, error) {
	if o.seedFile == "" {
		return seed.Default()
	}
	raw, err := os.ReadFile(o.seedFile)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return seed.Parse(raw)
}

func (o *rootOptions) now() (time.Time, error) {
	if o.today == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(models.DateLayout, o.today)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today %q: %w", o.today, err)
	}
	return t, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
