package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <key>",
		Short: "Print one rendered command",
		Long: `Print a single rclone command with the current parameters filled in.
The output is the bare command, suitable for $(...) or piping to a shell.

Keys: config, about, copy, sync, mount, ls`,
		Example: `  rcmd show sync --local ~/Photos --remote-path /photos
  eval "$(rcmd show about)"`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeTemplateKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			r, err := a.catalog.RenderKey(args[0], a.values)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return WriteJSONSuccess(cmd.OutOrStdout(), CommandOutput{
					Section: r.Section.String(),
					Key:     r.Key,
					Title:   r.Title,
					Command: r.Command,
				})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.Command)
			return err
		},
	}
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "output in JSON format")
	return cmd
}
