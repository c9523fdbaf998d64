package clipboard

import (
	atotto "github.com/atotto/clipboard"
	"github.com/rileyhilliard/rcmd/internal/errors"
)

// Native writes to the system clipboard.
type Native struct {
	supported func() bool
	write     func(string) error
}

// NewNative returns the system clipboard backend.
func NewNative() *Native {
	return &Native{
		supported: func() bool { return !atotto.Unsupported },
		write:     atotto.WriteAll,
	}
}

func (n *Native) Name() string { return "native" }

func (n *Native) WriteText(text string) error {
	if !n.supported() {
		return ErrCopyUnavailable
	}
	if err := n.write(text); err != nil {
		return errors.WrapWithCode(err, errors.ErrClipboard,
			"System clipboard rejected the copy",
			ErrCopyUnavailable.Suggestion)
	}
	return nil
}
