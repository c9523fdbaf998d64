package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/rcmd/internal/builder"
	"github.com/rileyhilliard/rcmd/internal/clipboard"
	cliptest "github.com/rileyhilliard/rcmd/internal/clipboard/testing"
	"github.com/rileyhilliard/rcmd/internal/ui"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty project directory with a fresh HOME, so
// no real config file is discovered.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(work, ".git"), 0755))
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { os.Chdir(oldWd) })
	return work
}

// testOptions returns options wired to a fake clipboard, plain output, a
// non-terminal stdout and a builder runner that fails the test if reached.
func testOptions(t *testing.T) (*rootOptions, *cliptest.FakeClipboard) {
	t.Helper()
	clip := cliptest.NewFakeClipboard()
	opts := newRootOptions()
	ui.DisableColors()
	opts.newClipboard = func(clipboard.Mode) clipboard.Clipboard { return clip }
	opts.isTerminal = func() bool { return false }
	opts.runBuilder = func(context.Context, builder.Model) error {
		t.Fatal("builder should not start")
		return nil
	}
	return opts, clip
}

func execute(t *testing.T, opts *rootOptions, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".rcmd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
