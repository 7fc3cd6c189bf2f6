package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ffslot/internal/execrun"
	"ffslot/internal/transcode"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var (
		outputPath      string
		postfix         string
		inputArgs       string
		outputArgs      string
		matchRates      bool
		forceSampleRate int
		forceBitRate    int
		forceCodec      string
		jsonOutput      bool
	)

	cmd := &cobra.Command{
		Use:   "convert <input>",
		Short: "Run a conversion through the staged ffmpeg",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, cleanup, err := ctx.buildEnvironment()
			if err != nil {
				return err
			}
			defer cleanup()

			inArgs, err := execrun.SplitArgs(inputArgs)
			if err != nil {
				return fmt.Errorf("parse --input-args: %w", err)
			}
			outArgs, err := execrun.SplitArgs(outputArgs)
			if err != nil {
				return fmt.Errorf("parse --output-args: %w", err)
			}

			in := transcode.InputSpec{Path: args[0], Args: inArgs}
			out := &transcode.OutputSpec{
				Path:            outputPath,
				Postfix:         postfix,
				Args:            outArgs,
				MatchInputRates: matchRates,
				ForceSampleRate: forceSampleRate,
				ForceBitRate:    forceBitRate,
				ForceCodec:      forceCodec,
			}

			result := env.orch.Convert(cmd.Context(), in, out)
			if jsonOutput {
				payload := map[string]any{
					"output_file": result.OutputFile,
					"size":        result.Size,
					"command":     result.Command,
					"stderr":      result.Stderr,
				}
				if result.Err != nil {
					payload["error"] = result.Err.Error()
				}
				if err := writeJSON(cmd, payload); err != nil {
					return err
				}
				return result.Err
			}
			if result.Err != nil {
				if result.Stderr != "" {
					fmt.Fprintln(cmd.ErrOrStderr(), result.Stderr)
				}
				return result.Err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", result.OutputFile, result.Size)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Explicit destination path")
	cmd.Flags().StringVar(&postfix, "postfix", "", "Suffix for a generated destination in the output directory")
	cmd.Flags().StringVar(&inputArgs, "input-args", "", "Raw parameters placed before -i")
	cmd.Flags().StringVar(&outputArgs, "output-args", "", "Raw parameters placed before the destination")
	cmd.Flags().BoolVar(&matchRates, "match-rates", false, "Negotiate output rates from source metadata")
	cmd.Flags().IntVar(&forceSampleRate, "force-sample-rate", 0, "Override the negotiated sample rate (Hz)")
	cmd.Flags().IntVar(&forceBitRate, "force-bit-rate", 0, "Override the negotiated bit rate (bps)")
	cmd.Flags().StringVar(&forceCodec, "force-codec", "", "Override the negotiated output codec")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the invocation result as JSON")
	return cmd
}
