package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCountsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "Show task counts per status tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := root.loadService()
			if err != nil {
				return err
			}
			counts := svc.CountByStatus()
			if root.asJSON {
				return printJSON(cmd.OutOrStdout(), counts)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "All:         %d\n", counts.All)
			fmt.Fprintf(out, "Pending:     %d\n", counts.Pending)
			fmt.Fprintf(out, "In Progress: %d\n", counts.InProgress)
			fmt.Fprintf(out, "Overdue:     %d\n", counts.Overdue)
			fmt.Fprintf(out, "Completed:   %d\n", counts.Completed)
			fmt.Fprintf(out, "Cancelled:   %d\n", counts.Cancelled)
			return nil
		},
	}
}

func newStatsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard summary cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := root.now()
			if err != nil {
				return err
			}
			svc, err := root.loadService()
			if err != nil {
				return err
			}
			stats := svc.Stats(now)
			if root.asJSON {
				return printJSON(cmd.OutOrStdout(), stats)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Pending tasks:            %d\n", stats.Pending)
			fmt.Fprintf(out, "Overdue tasks:            %d\n", stats.Overdue)
			fmt.Fprintf(out, "Due for today:            %d\n", stats.DueToday)
			fmt.Fprintf(out, "Approaching breach tasks: %d\n", stats.ApproachingBreach)
			return nil
		},
	}
}
