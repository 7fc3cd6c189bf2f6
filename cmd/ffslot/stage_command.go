package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStageCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stage [tool...]",
		Short: "Copy bundled tools into the writable slot ahead of first use",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, cleanup, err := ctx.buildEnvironment()
			if err != nil {
				return err
			}
			defer cleanup()

			tools := args
			if len(tools) == 0 {
				tools = []string{env.cfg.Tools.FFmpeg, env.cfg.Tools.FFprobe}
			}

			staged := make(map[string]string, len(tools))
			rows := make([][]string, 0, len(tools))
			for _, tool := range tools {
				path, err := env.stager.EnsureStaged(cmd.Context(), tool)
				if err != nil {
					return err
				}
				staged[tool] = path
				rows = append(rows, []string{tool, path})
			}
			if jsonOutput {
				return writeJSON(cmd, staged)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tool", "Staged Path"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit staged paths as JSON")
	return cmd
}
