package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/rcmd/internal/catalog"
	"github.com/rileyhilliard/rcmd/internal/ui"
	"github.com/spf13/cobra"
)

// CommandOutput is one rendered command in --json output.
type CommandOutput struct {
	Section string `json:"section"`
	Key     string `json:"key"`
	Title   string `json:"title"`
	Command string `json:"command"`
}

// ListOutput is the --json payload of `rcmd list`.
type ListOutput struct {
	Remote     string          `json:"remote"`
	Commands   []CommandOutput `json:"commands"`
	ConfigHint string          `json:"config_hint,omitempty"`
	Warning    string          `json:"warning,omitempty"`
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var section string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every rendered command",
		Long: `Print every rclone command with the current parameters filled in.

Parameters come from the config file, then RCMD_PARAMS_* environment
variables, then --remote/--key/--local/--remote-path.`,
		Example: `  rcmd list
  rcmd list --section examples --remote work
  rcmd list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var only *catalog.Section
			if section != "" {
				s, err := catalog.ParseSection(section)
				if err != nil {
					return err
				}
				only = &s
			}

			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return WriteJSONSuccess(cmd.OutOrStdout(), buildListOutput(a, only))
			}
			return printList(cmd.OutOrStdout(), a, only)
		},
	}
	cmd.Flags().StringVar(&section, "section", "", "only print one section (setup, examples)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "output in JSON format")
	return cmd
}

func sectionsFor(only *catalog.Section) []catalog.Section {
	if only != nil {
		return []catalog.Section{*only}
	}
	return []catalog.Section{catalog.SectionSetup, catalog.SectionExamples}
}

func buildListOutput(a *app, only *catalog.Section) ListOutput {
	out := ListOutput{Remote: a.values.RemoteAlias, Commands: []CommandOutput{}}
	for _, s := range sectionsFor(only) {
		for _, r := range a.catalog.RenderSection(s, a.values) {
			out.Commands = append(out.Commands, CommandOutput{
				Section: s.String(),
				Key:     r.Key,
				Title:   r.Title,
				Command: r.Command,
			})
		}
		switch s {
		case catalog.SectionSetup:
			out.ConfigHint = a.catalog.ConfigHint(a.values)
		case catalog.SectionExamples:
			out.Warning = a.catalog.SyncWarning()
		}
	}
	return out
}

// printList writes each section as a heading followed by key/command rows.
func printList(w io.Writer, a *app, only *catalog.Section) error {
	headingStyle := lipgloss.NewStyle().Foreground(ui.ColorNeonPink).Bold(true)

	for i, s := range sectionsFor(only) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, headingStyle.Render(s.Heading()))

		rendered := a.catalog.RenderSection(s, a.values)
		rows := make([]ui.ListRow, 0, len(rendered))
		for _, r := range rendered {
			rows = append(rows, ui.ListRow{Label: r.Key, Value: r.Command})
		}
		fmt.Fprint(w, ui.RenderList(rows))

		switch s {
		case catalog.SectionSetup:
			fmt.Fprintln(w, "  "+ui.MutedStyle().Render(a.catalog.ConfigHint(a.values)))
		case catalog.SectionExamples:
			fmt.Fprintln(w, "  "+ui.WarningStyle().Render(ui.SymbolWarning+" "+a.catalog.SyncWarning()))
		}
	}
	return nil
}
