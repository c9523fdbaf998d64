package doctor

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// Runner executes a program and returns its standard output.
type Runner func(name string, args ...string) ([]byte, error)

// ExecRunner runs programs with os/exec.
func ExecRunner(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

// RcloneCheck verifies the configured rclone binary is on PATH.
// rcmd only prints commands, so a missing binary is a warning.
type RcloneCheck struct {
	Binary   string
	LookPath func(string) (string, error)
	Exec     Runner
}

func (c *RcloneCheck) Name() string     { return "rclone_binary" }
func (c *RcloneCheck) Category() string { return "RCLONE" }

func (c *RcloneCheck) Run() CheckResult {
	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	runner := c.Exec
	if runner == nil {
		runner = ExecRunner
	}

	path, err := lookPath(c.Binary)
	if err != nil {
		return CheckResult{
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%s not found on PATH", c.Binary),
			Suggestion: "Install rclone (https://rclone.org/install/) before running the copied commands",
		}
	}

	output, err := runner(path, "version")
	if err != nil {
		return CheckResult{
			Status:  StatusPass,
			Message: fmt.Sprintf("%s found at %s (version unknown)", c.Binary, path),
		}
	}

	return CheckResult{
		Status:  StatusPass,
		Message: fmt.Sprintf("rclone %s at %s", parseRcloneVersion(string(output)), path),
	}
}

func (c *RcloneCheck) Fix() error {
	return nil // System package installation is out of scope
}

// RcloneRemoteCheck looks for the configured alias in `rclone listremotes`.
type RcloneRemoteCheck struct {
	Binary string
	Remote string
	Exec   Runner
}

func (c *RcloneRemoteCheck) Name() string     { return "rclone_remote" }
func (c *RcloneRemoteCheck) Category() string { return "RCLONE" }

func (c *RcloneRemoteCheck) Run() CheckResult {
	runner := c.Exec
	if runner == nil {
		runner = ExecRunner
	}

	if c.Remote == "" {
		return CheckResult{
			Status:     StatusWarn,
			Message:    "Remote name is empty; commands will use ':' as the remote",
			Suggestion: "Set params.remote in your config or pass --remote",
		}
	}

	output, err := runner(c.Binary, "listremotes")
	if err != nil {
		return CheckResult{
			Status:  StatusWarn,
			Message: fmt.Sprintf("Could not list rclone remotes: %v", err),
		}
	}

	for _, line := range strings.Split(string(output), "\n") {
		if strings.TrimSpace(line) == c.Remote+":" {
			return CheckResult{
				Status:  StatusPass,
				Message: fmt.Sprintf("Remote '%s' is configured in rclone", c.Remote),
			}
		}
	}

	return CheckResult{
		Status:     StatusWarn,
		Message:    fmt.Sprintf("Remote '%s' is not configured in rclone yet", c.Remote),
		Suggestion: fmt.Sprintf("Run '%s config' and name the remote '%s' (or copy it with 'rcmd copy config')", c.Binary, c.Remote),
	}
}

func (c *RcloneRemoteCheck) Fix() error {
	return nil // Creating remotes needs the user's FileLu key
}

var (
	rcloneVersionRe = regexp.MustCompile(`rclone\s+(v\d+\.\d+(?:\.\d+)?(?:-[\w.]+)?)`)
	anyVersionRe    = regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?)`)
)

// parseRcloneVersion extracts the version from `rclone version` output.
func parseRcloneVersion(output string) string {
	// rclone output: "rclone v1.66.0\n- os/version: ..."
	if m := rcloneVersionRe.FindStringSubmatch(output); len(m) >= 2 {
		return m[1]
	}

	if m := anyVersionRe.FindStringSubmatch(strings.Split(output, "\n")[0]); len(m) >= 2 {
		return "v" + m[1]
	}

	return "unknown"
}

// NewRcloneChecks creates the rclone checks. The remote check only runs when
// the binary is present.
func NewRcloneChecks(binary, remote string) []Check {
	checks := []Check{&RcloneCheck{Binary: binary}}
	if _, err := exec.LookPath(binary); err == nil {
		checks = append(checks, &RcloneRemoteCheck{Binary: binary, Remote: remote})
	}
	return checks
}
