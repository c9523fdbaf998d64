package clipboard

import (
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/rileyhilliard/rcmd/internal/errors"
)

// TTYOpener acquires the terminal the escape sequence is written to.
type TTYOpener func() (io.WriteCloser, error)

// OpenTTY opens the controlling terminal for writing.
func OpenTTY() (io.WriteCloser, error) {
	return os.OpenFile("/dev/tty", os.O_WRONLY, 0)
}

// OSC52 asks the terminal emulator to set the clipboard with an OSC 52 escape.
// The terminal handle is acquired per write and released on every return path.
type OSC52 struct {
	open   TTYOpener
	getenv func(string) string
}

// NewOSC52 returns the terminal backend. A nil opener uses OpenTTY.
func NewOSC52(open TTYOpener) *OSC52 {
	if open == nil {
		open = OpenTTY
	}
	return &OSC52{open: open, getenv: os.Getenv}
}

func (o *OSC52) Name() string { return "osc52" }

func (o *OSC52) WriteText(text string) error {
	w, err := o.open()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrClipboard,
			"Cannot open the terminal for OSC 52",
			ErrCopyUnavailable.Suggestion)
	}
	defer w.Close()

	if _, err := o.sequence(text).WriteTo(w); err != nil {
		return errors.WrapWithCode(err, errors.ErrClipboard,
			"Failed to write OSC 52 sequence",
			ErrCopyUnavailable.Suggestion)
	}
	return nil
}

// sequence wraps the escape for multiplexers that would otherwise swallow it.
func (o *OSC52) sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	switch {
	case o.getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(o.getenv("TERM"), "screen"):
		seq = seq.Screen()
	}
	return seq
}
