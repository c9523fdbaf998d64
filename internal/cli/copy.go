package cli

import (
	"fmt"

	"github.com/rileyhilliard/rcmd/internal/clipboard"
	"github.com/rileyhilliard/rcmd/internal/errors"
	"github.com/rileyhilliard/rcmd/internal/ui"
	"github.com/spf13/cobra"
)

func newCopyCmd(opts *rootOptions) *cobra.Command {
	var printCommand bool
	cmd := &cobra.Command{
		Use:   "copy <key>",
		Short: "Copy one rendered command to the clipboard",
		Long: `Render a command and copy it to the clipboard.

The clipboard backend follows clipboard.mode: the system clipboard when one
is available, otherwise an OSC 52 escape sent to the terminal. Run
'rcmd doctor' to see which backend is in use.`,
		Example: `  rcmd copy config
  rcmd copy copy --local ./build --remote-path /releases`,
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

			ctrl := a.newController()
			defer ctrl.Close()

			if !ctrl.AttemptCopy(r.Command) {
				return errors.New(errors.ErrClipboard,
					fmt.Sprintf("Couldn't copy '%s' via the %s clipboard", r.Key, ctrl.Backend()),
					clipboard.ErrCopyUnavailable.Suggestion)
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				return WriteJSONSuccess(out, map[string]string{
					"key":     r.Key,
					"command": r.Command,
					"backend": ctrl.Backend(),
				})
			}

			fmt.Fprintf(out, "%s %s %s\n",
				ui.SuccessStyle().Render(ui.SymbolSuccess),
				"Command copied to clipboard!",
				ui.MutedStyle().Render("("+ctrl.Backend()+")"))
			if printCommand {
				fmt.Fprintln(out, r.Command)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&printCommand, "print", "p", false, "also print the copied command")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "output in JSON format")
	return cmd
}
