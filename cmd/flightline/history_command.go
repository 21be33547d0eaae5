package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"flightline/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent tool invocations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "History is disabled in the configuration.")
				return nil
			}

			store, err := history.Open(cfg.HistoryDBPath())
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			invocations, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(invocations) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No invocations recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(invocations))
			for _, inv := range invocations {
				rows = append(rows, []string{
					shortID(inv.ID),
					inv.Tool,
					string(inv.Status),
					inv.OutputPath,
					inv.StartedAt.Local().Format("2006-01-02 15:04:05"),
					formatDuration(inv.Duration()),
					inv.Reason,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Tool", "Status", "Output", "Started", "Duration", "Reason"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of invocations to show")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatDuration(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	seconds := int(d.Round(time.Second).Seconds())
	if seconds < 60 {
		return strconv.Itoa(seconds) + "s"
	}
	return fmt.Sprintf("%dm%02ds", seconds/60, seconds%60)
}
