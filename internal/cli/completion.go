package cli

import (
	"github.com/rileyhilliard/rcmd/internal/catalog"
	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for your shell.

Bash:
  $ source <(rcmd completion bash)
  # Or persist it:
  $ rcmd completion bash > /etc/bash_completion.d/rcmd

Zsh:
  $ rcmd completion zsh > "${fpath[1]}/_rcmd"

Fish:
  $ rcmd completion fish > ~/.config/fish/completions/rcmd.fish

PowerShell:
  PS> rcmd completion powershell | Out-String | Invoke-Expression

Template keys complete for 'rcmd show' and 'rcmd copy'.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// completeTemplateKeys offers catalog keys with their titles as descriptions.
func completeTemplateKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, t := range catalog.Default().Templates() {
		out = append(out, t.Key+"\t"+t.Title)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
