package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"ffslot/internal/validate"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a file really holds its claimed format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			target := strings.ToLower(strings.TrimSpace(format))
			if target == "" {
				target = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
			}

			env, cleanup, err := ctx.buildEnvironment()
			if err != nil {
				return err
			}
			defer cleanup()

			switch target {
			case "mp3":
				verdict, err := validate.New(env.orch, env.logger).CheckMP3(cmd.Context(), path)
				if err != nil {
					return err
				}
				if !verdict.OK {
					return fmt.Errorf("%s is not a valid mp3 file:\n%s", path, verdict.Detail)
				}
			case "wav":
				ok, err := validate.IsWAV(path)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%s does not carry a RIFF container signature", path)
				}
			case "aiff", "aif":
				ok, err := validate.IsAIFF(path)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%s does not carry a FORM container signature", path)
				}
			default:
				return fmt.Errorf("no validation available for format %q (supported: mp3, wav, aiff)", target)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid %s file\n", path, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Format to check (defaults to the file extension)")
	return cmd
}
