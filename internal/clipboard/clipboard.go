// Package clipboard is the copy-to-clipboard collaborator.
//
// A Clipboard is picked once at startup by probing what the host offers:
//
//	Native       - the system clipboard (pbcopy, xclip/xsel, wl-copy, Windows API)
//	OSC52        - terminal escape sequence, for SSH sessions and headless boxes
//	Unavailable  - nothing works; every write reports ErrCopyUnavailable
//
// Callers never branch on the variant; they call WriteText and look at the error.
package clipboard

import (
	"fmt"
	"os"
	"strings"

	atotto "github.com/atotto/clipboard"
	"github.com/rileyhilliard/rcmd/internal/errors"
	"golang.org/x/term"
)

// ErrCopyUnavailable is the single failure kind: the host cannot take the text.
var ErrCopyUnavailable = errors.New(errors.ErrClipboard,
	"Clipboard is not available",
	"Install xclip, xsel or wl-copy, or use a terminal that supports OSC 52. Run 'rcmd doctor' for details.")

// Clipboard writes text to wherever "copy" means on this host.
type Clipboard interface {
	// Name identifies the backend in logs and `rcmd doctor`.
	Name() string
	// WriteText copies text. A nil error means the copy happened.
	WriteText(text string) error
}

// Mode selects how the backend is chosen.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeNative Mode = "native"
	ModeOSC52  Mode = "osc52"
	ModeNone   Mode = "none"
)

// Modes lists every valid mode.
var Modes = []Mode{ModeAuto, ModeNative, ModeOSC52, ModeNone}

// ParseMode validates a mode string; empty means auto.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeAuto, nil
	}
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Modes {
		if m == valid {
			return m, nil
		}
	}
	return "", errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown clipboard mode '%s'", s),
		"Valid modes: auto, native, osc52, none")
}

// Capabilities describes what the host can do.
type Capabilities struct {
	Native   bool // a system clipboard utility/API is present
	Terminal bool // stdout is an interactive terminal
}

// DetectCapabilities inspects the current process environment.
func DetectCapabilities() Capabilities {
	return Capabilities{
		Native:   !atotto.Unsupported,
		Terminal: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Select picks a backend for mode given caps.
func Select(mode Mode, caps Capabilities) Clipboard {
	switch mode {
	case ModeNative:
		return NewNative()
	case ModeOSC52:
		return NewOSC52(nil)
	case ModeNone:
		return Unavailable{}
	}

	if caps.Native {
		return NewNative()
	}
	if caps.Terminal {
		return NewOSC52(nil)
	}
	return Unavailable{}
}

// Probe detects capabilities and selects a backend.
func Probe(mode Mode) Clipboard {
	return Select(mode, DetectCapabilities())
}

// Unavailable is the backend used when nothing else works.
type Unavailable struct{}

func (Unavailable) Name() string { return "none" }

func (Unavailable) WriteText(string) error { return ErrCopyUnavailable }
