package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ffslot/internal/media/audio"
)

func newChannelsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "channels <file>",
		Short: "Print the channel count of the first stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, cleanup, err := ctx.buildEnvironment()
			if err != nil {
				return err
			}
			defer cleanup()

			count, err := audio.ChannelCount(cmd.Context(), env.prober, args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, map[string]int{"channels": count})
			}
			fmt.Fprintln(cmd.OutOrStdout(), count)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the channel count as JSON")
	return cmd
}
