package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/rcmd/internal/builder"
	"github.com/rileyhilliard/rcmd/internal/catalog"
	"github.com/rileyhilliard/rcmd/internal/clipboard"
	"github.com/rileyhilliard/rcmd/internal/doctor"
	"github.com/rileyhilliard/rcmd/internal/errors"
	"github.com/rileyhilliard/rcmd/internal/logger"
	"github.com/rileyhilliard/rcmd/internal/params"
	"github.com/rileyhilliard/rcmd/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// debugLogName is written to os.TempDir() when RCMD_DEBUG is set, since the
// builder owns the screen and stderr is not visible.
const debugLogName = "rcmd-debug.log"

// rootOptions holds global flag values plus the seams tests replace.
type rootOptions struct {
	configPath string
	noColor    bool
	verbose    bool
	noTUI      bool
	jsonOutput bool // set by any subcommand's --json
	params     ParamFlags

	newClipboard func(clipboard.Mode) clipboard.Clipboard
	runBuilder   func(ctx context.Context, m builder.Model) error
	isTerminal   func() bool
	doctorChecks func(configPath string) []doctor.Check // nil uses defaultDoctorChecks
}

func newRootOptions() *rootOptions {
	return &rootOptions{
		newClipboard: clipboard.Probe,
		runBuilder:   runBuilder,
		isTerminal:   stdioIsTerminal,
	}
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runBuilder(ctx context.Context, m builder.Model) error {
	if logger.DebugEnabled() {
		f, err := tea.LogToFile(filepath.Join(os.TempDir(), debugLogName), "rcmd")
		if err == nil {
			defer f.Close()
		}
	}
	return builder.Run(ctx, m)
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rcmd",
		Short: "Build copy-ready rclone commands for FileLu",
		Long: `rcmd builds rclone commands for FileLu storage from a few parameters:
the remote name, your FileLu rclone key, a local folder and a FileLu path.

Run without arguments to open the interactive builder. Edit the fields at the
top and every command below updates as you type; press enter on a command to
copy it to the clipboard.

Quick start:
  rcmd                          # Interactive builder
  rcmd list                     # Print every command
  rcmd copy sync --remote work  # Copy the sync command for the 'work' remote
  rcmd init                     # Save your defaults to .rcmd.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				logger.SetVerbose(true)
			}
			if opts.noColor {
				ui.DisableColors()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}
			if opts.noTUI || !opts.isTerminal() {
				return printList(cmd.OutOrStdout(), a, nil)
			}

			ctrl := a.newController()
			defer ctrl.Close()

			m := builder.NewModel(params.NewStore(a.values), a.catalog, ctrl,
				builder.WithVersion(formatVersion(version)))
			return opts.runBuilder(cmd.Context(), m)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default is .rcmd.yaml, then ~/.config/rcmd/config.yaml)")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "print debug logging to stderr")
	cmd.Flags().BoolVar(&opts.noTUI, "no-tui", false, "print the command list instead of opening the builder")
	AddParamFlags(cmd, &opts.params)

	cmd.AddCommand(
		newListCmd(opts),
		newShowCmd(opts),
		newCopyCmd(opts),
		newSetCmd(opts),
		newInitCmd(opts),
		newDoctorCmd(opts),
		newCompletionCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	opts := newRootOptions()
	err := newRootCmd(opts).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(handleError(opts, err, os.Stdout, os.Stderr))
	}
}

// handleError reports err in the form the invocation asked for and returns
// the process exit code.
func handleError(opts *rootOptions, err error, stdout, stderr io.Writer) int {
	if code, ok := errors.GetExitCode(err); ok {
		return code
	}

	if opts.jsonOutput {
		_ = WriteJSONFromError(stdout, err)
		return 1
	}

	if isUnknownCommandError(err) {
		name := extractUnknownCommand(err)
		if _, ok := catalog.Default().Lookup(name); ok {
			err = errors.New(errors.ErrTemplate,
				fmt.Sprintf("'%s' is a command template, not a subcommand", name),
				fmt.Sprintf("Try 'rcmd show %s' or 'rcmd copy %s'", name, name))
		}
	}

	fmt.Fprintln(stderr, err)
	return 1
}

func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "unknown command") || strings.Contains(msg, "unknown flag")
}

// extractUnknownCommand pulls the name out of cobra's
// `unknown command "foo" for "rcmd"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start == -1 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end == -1 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
