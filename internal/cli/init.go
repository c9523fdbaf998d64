package cli

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/rcmd/internal/clipboard"
	"github.com/rileyhilliard/rcmd/internal/config"
	"github.com/rileyhilliard/rcmd/internal/errors"
	"github.com/rileyhilliard/rcmd/internal/params"
	"github.com/rileyhilliard/rcmd/internal/ui"
	"github.com/spf13/cobra"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string // Target file
	Force          bool   // Overwrite an existing file
	NonInteractive bool   // Skip prompts, use flags and defaults
}

func newInitCmd(opts *rootOptions) *cobra.Command {
	var initOpts InitOptions
	var global bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a .rcmd.yaml config file",
		Long: `Create a config file with your builder defaults.

Interactive mode asks for the four parameters and the clipboard backend.
With --non-interactive the values come from --remote/--key/--local/
--remote-path, falling back to the built-in defaults.`,
		Example: `  rcmd init
  rcmd init --global
  rcmd init --non-interactive --remote work --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			initOpts.Path = filepath.Join(".", config.ConfigFileName)
			if global {
				initOpts.Path = config.GlobalPath()
				if initOpts.Path == "" {
					return errors.New(errors.ErrConfig,
						"Cannot locate your home directory",
						"Use 'rcmd init' in a project directory instead")
				}
			}

			cfg := config.DefaultConfig()
			ApplyParamFlags(cmd, &opts.params, cfg)

			if !initOpts.NonInteractive {
				ui.PrintHeader(ui.HeaderInfo{
					Version: formatVersion(version),
					Tagline: "Save your FileLu builder defaults",
				})
				if err := promptConfig(cfg); err != nil {
					return err
				}
			}
			if err := config.Validate(cfg); err != nil {
				return err
			}
			if err := config.Write(initOpts.Path, cfg, initOpts.Force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s\n",
				ui.SuccessStyle().Render(ui.SymbolSuccess), initOpts.Path)
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n",
				ui.MutedStyle().Render("Run 'rcmd' to open the builder, or 'rcmd doctor' to check your setup."))
			if global {
				warnIfShadowed()
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&initOpts.Force, "force", "f", false, "overwrite an existing config file")
	cmd.Flags().BoolVar(&initOpts.NonInteractive, "non-interactive", false, "skip prompts and use flags/defaults")
	cmd.Flags().BoolVar(&global, "global", false, "write ~/.config/rcmd/config.yaml instead")
	return cmd
}

// promptConfig asks for the parameters and clipboard mode, starting from cfg.
func promptConfig(cfg *config.Config) error {
	mode := cfg.Clipboard.Mode
	modeOptions := make([]huh.Option[string], 0, len(clipboard.Modes))
	for _, m := range clipboard.Modes {
		modeOptions = append(modeOptions, huh.NewOption(string(m), string(m)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(params.RemoteAlias.Label()).
				Description("The name you gave the remote in 'rclone config'").
				Placeholder(params.RemoteAlias.Placeholder()).
				Value(&cfg.Params.Remote),
			huh.NewInput().
				Title(params.CredentialPlaceholder.Label()).
				Description("Only shown in the builder. rclone asks for the real key itself.").
				Placeholder(params.CredentialPlaceholder.Placeholder()).
				Value(&cfg.Params.Key),
		),
		huh.NewGroup(
			huh.NewInput().
				Title(params.LocalPath.Label()).
				Placeholder(params.LocalPath.Placeholder()).
				Value(&cfg.Params.LocalPath),
			huh.NewInput().
				Title(params.RemotePath.Label()).
				Placeholder(params.RemotePath.Placeholder()).
				Value(&cfg.Params.RemotePath),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Clipboard backend").
				Description("auto uses the system clipboard, then OSC 52 in a terminal").
				Options(modeOptions...).
				Value(&mode),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to get user input",
			"Try running with --non-interactive")
	}
	cfg.Clipboard.Mode = mode
	return nil
}
