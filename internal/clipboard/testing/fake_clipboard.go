// Package testing provides test doubles for the clipboard package.
package testing

import (
	"sync"

	"github.com/rileyhilliard/rcmd/internal/clipboard"
)

// FakeClipboard records writes and returns configured results.
type FakeClipboard struct {
	mu sync.Mutex

	// Configuration
	ShouldFail  bool
	FailError   error
	ShouldPanic bool

	// Call tracking
	Writes []string
}

// NewFakeClipboard creates a fake clipboard that succeeds by default.
func NewFakeClipboard() *FakeClipboard {
	return &FakeClipboard{}
}

// SetFail configures the fake to fail every write with err
// (ErrCopyUnavailable when err is nil).
func (f *FakeClipboard) SetFail(err error) *FakeClipboard {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ShouldFail = true
	f.FailError = err
	return f
}

// SetPanic configures the fake to panic on write.
func (f *FakeClipboard) SetPanic() *FakeClipboard {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ShouldPanic = true
	return f
}

func (f *FakeClipboard) Name() string { return "fake" }

// WriteText records the text and returns the configured result.
func (f *FakeClipboard) WriteText(text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Writes = append(f.Writes, text)

	if f.ShouldPanic {
		panic("fake clipboard exploded")
	}
	if f.ShouldFail {
		if f.FailError != nil {
			return f.FailError
		}
		return clipboard.ErrCopyUnavailable
	}
	return nil
}

// Last returns the most recent write, or "" if none.
func (f *FakeClipboard) Last() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Writes) == 0 {
		return ""
	}
	return f.Writes[len(f.Writes)-1]
}

// WriteCount returns how many writes were attempted.
func (f *FakeClipboard) WriteCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Writes)
}

var _ clipboard.Clipboard = (*FakeClipboard)(nil)
