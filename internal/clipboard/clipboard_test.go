package clipboard

import (
	"bytes"
	"encoding/base64"
	stderrors "errors"
	"io"
	"testing"

	"github.com/rileyhilliard/rcmd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"Native", ModeNative, false},
		{" osc52 ", ModeOSC52, false},
		{"none", ModeNone, false},
		{"pbcopy", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name string
		mode Mode
		caps Capabilities
		want string
	}{
		{"auto prefers native", ModeAuto, Capabilities{Native: true, Terminal: true}, "native"},
		{"auto falls back to osc52 on a terminal", ModeAuto, Capabilities{Native: false, Terminal: true}, "osc52"},
		{"auto with nothing", ModeAuto, Capabilities{}, "none"},
		{"forced native", ModeNative, Capabilities{}, "native"},
		{"forced osc52", ModeOSC52, Capabilities{Native: true}, "osc52"},
		{"forced none", ModeNone, Capabilities{Native: true, Terminal: true}, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.mode, tt.caps).Name())
		})
	}
}

func TestUnavailable(t *testing.T) {
	err := Unavailable{}.WriteText("rclone config")
	assert.ErrorIs(t, err, ErrCopyUnavailable)
	assert.True(t, errors.IsCode(err, errors.ErrClipboard))
}

func TestNative_WriteText(t *testing.T) {
	var got string
	n := &Native{
		supported: func() bool { return true },
		write: func(s string) error {
			got = s
			return nil
		},
	}

	require.NoError(t, n.WriteText("rclone about filelu:"))
	assert.Equal(t, "rclone about filelu:", got)
}

func TestNative_Unsupported(t *testing.T) {
	called := false
	n := &Native{
		supported: func() bool { return false },
		write: func(string) error {
			called = true
			return nil
		},
	}

	assert.ErrorIs(t, n.WriteText("x"), ErrCopyUnavailable)
	assert.False(t, called)
}

func TestNative_WriteError(t *testing.T) {
	cause := stderrors.New("exit status 1")
	n := &Native{
		supported: func() bool { return true },
		write:     func(string) error { return cause },
	}

	err := n.WriteText("x")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.True(t, errors.IsCode(err, errors.ErrClipboard))
}

type fakeTTY struct {
	buf      bytes.Buffer
	closed   bool
	writeErr error
}

func (f *fakeTTY) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return f.buf.Write(p)
}

func (f *fakeTTY) String() string { return f.buf.String() }

func (f *fakeTTY) Close() error {
	f.closed = true
	return nil
}

func newTestOSC52(tty *fakeTTY, env map[string]string) *OSC52 {
	o := NewOSC52(func() (io.WriteCloser, error) { return tty, nil })
	o.getenv = func(k string) string { return env[k] }
	return o
}

func TestOSC52_WriteText(t *testing.T) {
	tty := &fakeTTY{}
	o := newTestOSC52(tty, nil)

	require.NoError(t, o.WriteText("hi"))

	out := tty.String()
	assert.Contains(t, out, "\x1b]52;c;")
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("hi")))
	assert.True(t, tty.closed, "terminal must be released after a write")
}

func TestOSC52_Tmux(t *testing.T) {
	tty := &fakeTTY{}
	o := newTestOSC52(tty, map[string]string{"TMUX": "/tmp/tmux-1000/default,1,0"})

	require.NoError(t, o.WriteText("hi"))
	assert.Contains(t, tty.String(), "tmux;")
}

func TestOSC52_WriteErrorStillReleases(t *testing.T) {
	tty := &fakeTTY{writeErr: stderrors.New("broken pipe")}
	o := newTestOSC52(tty, nil)

	err := o.WriteText("hi")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrClipboard))
	assert.True(t, tty.closed, "terminal must be released on failure too")
}

func TestOSC52_OpenError(t *testing.T) {
	o := NewOSC52(func() (io.WriteCloser, error) { return nil, stderrors.New("no tty") })

	err := o.WriteText("hi")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrClipboard))
}
