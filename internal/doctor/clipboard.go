package doctor

import (
	"fmt"

	"github.com/rileyhilliard/rcmd/internal/clipboard"
)

// ClipboardCheck reports which clipboard backend copies will go through.
type ClipboardCheck struct {
	Mode   clipboard.Mode
	Detect func() clipboard.Capabilities
}

func (c *ClipboardCheck) Name() string     { return "clipboard_backend" }
func (c *ClipboardCheck) Category() string { return "CLIPBOARD" }

func (c *ClipboardCheck) Run() CheckResult {
	detect := c.Detect
	if detect == nil {
		detect = clipboard.DetectCapabilities
	}
	caps := detect()
	backend := clipboard.Select(c.Mode, caps)

	switch backend.Name() {
	case "native":
		if !caps.Native {
			return CheckResult{
				Status:     StatusFail,
				Message:    "clipboard.mode is 'native' but no system clipboard was found",
				Suggestion: "Install xclip, xsel or wl-copy, or set clipboard.mode to auto",
			}
		}
		return CheckResult{
			Status:  StatusPass,
			Message: "Copying via the system clipboard",
		}
	case "osc52":
		return CheckResult{
			Status:     StatusWarn,
			Message:    "Copying via OSC 52 terminal escapes",
			Suggestion: "Works over SSH when the terminal allows clipboard access; install xclip or wl-copy for a native clipboard",
		}
	default:
		return CheckResult{
			Status:     StatusFail,
			Message:    fmt.Sprintf("No clipboard available (mode: %s)", c.Mode),
			Suggestion: clipboard.ErrCopyUnavailable.Suggestion,
		}
	}
}

func (c *ClipboardCheck) Fix() error {
	return nil
}
