package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/rcmd/internal/config"
	"github.com/rileyhilliard/rcmd/internal/ui"
	"github.com/spf13/cobra"
)

func newSetCmd(opts *rootOptions) *cobra.Command {
	var global bool
	cmd := &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Save a parameter to the config file",
		Long: `Save one builder parameter so later runs start from it.

Fields: remote, key, local_path, remote_path (flag spellings such as
'local' and 'remote-path' work too). The value is stored verbatim; an
empty string is allowed.

Without --global the nearest .rcmd.yaml is updated, or one is created in
the current directory.`,
		Example: `  rcmd set remote work
  rcmd set remote-path /backups/laptop
  rcmd set --global key MY_FILELU_KEY`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return fieldKeys(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := ParseField(args[0])
			if err != nil {
				return err
			}

			path, err := setTarget(opts.configPath, global)
			if err != nil {
				return err
			}
			if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
				if err := config.Write(path, config.DefaultConfig(), false); err != nil {
					return err
				}
			}

			if err := config.SetValue(path, "params."+field.String(), args[1]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Set %s = %q in %s\n",
				ui.SuccessStyle().Render(ui.SymbolSuccess), field.String(), args[1], path)
			if global {
				warnIfShadowed()
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&global, "global", false, "write to ~/.config/rcmd/config.yaml")
	return cmd
}

// setTarget picks the file `rcmd set` writes to.
func setTarget(explicit string, global bool) (string, error) {
	if global {
		if p := config.GlobalPath(); p != "" {
			return p, nil
		}
	}
	if explicit != "" {
		return explicit, nil
	}

	path, err := config.Find("")
	if err != nil {
		return "", err
	}
	// A global file found by the search is only written with --global.
	if path == "" || path == config.GlobalPath() {
		return config.ConfigFileName, nil
	}
	return path, nil
}

// warnIfShadowed tells the user when a project config will hide what was just
// written to the global file.
func warnIfShadowed() {
	path, err := config.Find("")
	if err != nil || path == "" || path == config.GlobalPath() {
		return
	}
	ui.PrintWarning(fmt.Sprintf("%s takes precedence over the global config in this directory", path))
}
