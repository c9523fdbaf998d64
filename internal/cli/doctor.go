package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/rcmd/internal/clipboard"
	"github.com/rileyhilliard/rcmd/internal/config"
	"github.com/rileyhilliard/rcmd/internal/doctor"
	"github.com/rileyhilliard/rcmd/internal/errors"
	"github.com/rileyhilliard/rcmd/internal/ui"
	"github.com/spf13/cobra"
)

// DoctorOutput represents the JSON output for doctor command.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories"`
	Summary    SummaryOutput    `json:"summary"`
}

// CategoryOutput represents a category of check results.
type CategoryOutput struct {
	Name    string               `json:"name"`
	Results []doctor.CheckResult `json:"results"`
}

// SummaryOutput summarizes the check results.
type SummaryOutput struct {
	Pass     int  `json:"pass"`
	Warn     int  `json:"warn"`
	Fail     int  `json:"fail"`
	Fixable  int  `json:"fixable"`
	AllClear bool `json:"all_clear"`
}

func newDoctorCmd(opts *rootOptions) *cobra.Command {
	var fix bool
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose config, clipboard and rclone setup",
		Long: `Run diagnostic checks and report problems with suggested fixes.

Checks:
  CONFIG     config file found and valid
  CLIPBOARD  which backend copies go through
  RCLONE     rclone installed, remote configured

Exits 1 when any check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			checks := defaultDoctorChecks(opts.configPath)
			if opts.doctorChecks != nil {
				checks = opts.doctorChecks(opts.configPath)
			}

			results := doctor.RunAllParallel(checks)
			if fix {
				results = doctor.FixAll(checks, results)
			}

			out := cmd.OutOrStdout()
			if opts.jsonOutput {
				if err := WriteJSONSuccess(out, buildDoctorOutput(results)); err != nil {
					return err
				}
			} else {
				printDoctorReport(out, results, fix)
			}

			if doctor.HasFailures(results) {
				return errors.NewExitError(1)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fix, "fix", false, "attempt automatic fixes where possible")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "output in JSON format")
	return cmd
}

// defaultDoctorChecks builds the checks from whatever config can be loaded.
// A config that fails to load is reported by the schema check, and the other
// checks run against defaults.
func defaultDoctorChecks(configPath string) []doctor.Check {
	cfg, _, err := config.LoadOrDefault(configPath)
	if err != nil || cfg == nil {
		cfg = config.DefaultConfig()
	}

	mode, err := clipboard.ParseMode(cfg.Clipboard.Mode)
	if err != nil {
		mode = clipboard.ModeAuto
	}

	checks := []doctor.Check{
		&doctor.ConfigFileCheck{ConfigPath: configPath, InitPath: filepath.Join(".", config.ConfigFileName)},
		&doctor.ConfigSchemaCheck{ConfigPath: configPath},
		&doctor.ClipboardCheck{Mode: mode},
	}
	return append(checks, doctor.NewRcloneChecks(cfg.Rclone.Binary, cfg.Params.Remote)...)
}

func buildDoctorOutput(results []doctor.CheckResult) DoctorOutput {
	output := DoctorOutput{Categories: []CategoryOutput{}}
	index := make(map[string]int)
	for _, r := range results {
		i, ok := index[r.Category]
		if !ok {
			i = len(output.Categories)
			index[r.Category] = i
			output.Categories = append(output.Categories, CategoryOutput{Name: r.Category})
		}
		output.Categories[i].Results = append(output.Categories[i].Results, r)
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		Fixable:  doctor.FixableCount(results),
		AllClear: counts[doctor.StatusWarn]+counts[doctor.StatusFail] == 0,
	}
	return output
}

func printDoctorReport(w io.Writer, results []doctor.CheckResult, fixed bool) {
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("rcmd Diagnostic Report"))
	fmt.Fprintln(w)

	rows := make([]ui.DoctorCheckRow, len(results))
	for i, r := range results {
		rows[i] = ui.DoctorCheckRow{
			Status:     r.Status.String(),
			Category:   r.Category,
			Message:    r.Message,
			Suggestion: r.Suggestion,
		}
	}
	fmt.Fprint(w, ui.RenderDoctorTable(rows))

	fmt.Fprintln(w, strings.Repeat("━", 60))
	fmt.Fprintln(w)

	summary := doctor.Summary(results)
	counts := doctor.CountByStatus(results)
	if counts[doctor.StatusWarn]+counts[doctor.StatusFail] == 0 {
		fmt.Fprintf(w, "%s %s\n", ui.SuccessStyle().Render(ui.SymbolSuccess), summary)
	} else {
		fmt.Fprintf(w, "%s %s\n", ui.ErrorStyle().Render(ui.SymbolFail), summary)
		if n := doctor.FixableCount(results); n > 0 && !fixed {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "  Run with %s to attempt automatic fixes where possible.\n",
				ui.MutedStyle().Render("--fix"))
		}
	}
	fmt.Fprintln(w)
}
