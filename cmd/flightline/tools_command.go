package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"flightline/internal/preflight"
	"flightline/internal/tools"
	"flightline/internal/toolrun"
)

func newToolsCommand(ctx *commandContext) *cobra.Command {
	toolsCmd := &cobra.Command{
		Use:   "tools",
		Short: "Inspect the geoprocessing tool catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listTools(cmd)
		},
	}

	toolsCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Verify tool binaries are installed",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dirCheck := preflight.CheckToolsDirectory(cfg.Paths.ToolsDir)
			fmt.Fprintf(cmd.OutOrStdout(), "Tools directory: %s (%s)\n\n", cfg.Paths.ToolsDir, passFail(dirCheck.Passed))

			statuses := tools.CheckBinaries(cfg.Paths.ToolsDir, tools.Catalog())
			rows := make([][]string, 0, len(statuses))
			missing := 0
			for _, status := range statuses {
				detail := status.Path
				if !status.Available {
					detail = status.Detail
					missing++
				}
				rows = append(rows, []string{
					tools.DisplayName(status.Name),
					yesNo(status.Available),
					detail,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Installed", "Detail"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			if missing > 0 {
				return fmt.Errorf("%d tool(s) missing from %s", missing, cfg.Paths.ToolsDir)
			}
			return nil
		},
	})

	return toolsCmd
}

func listTools(cmd *cobra.Command) error {
	rows := make([][]string, 0, len(tools.Catalog()))
	for _, tool := range tools.Catalog() {
		rows = append(rows, []string{
			tools.DisplayName(tool.Name),
			toolrun.ExecutableName(tool.Name),
			tool.Description,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Tool", "Binary", "Description"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	))
	return nil
}

func passFail(passed bool) string {
	if passed {
		return "ok"
	}
	return "failed"
}
