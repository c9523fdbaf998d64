package copier_test

import (
	"sync"
	"testing"
	"time"

	cliptest "github.com/rileyhilliard/rcmd/internal/clipboard/testing"
	"github.com/rileyhilliard/rcmd/internal/copier"
	copiertest "github.com/rileyhilliard/rcmd/internal/copier/testing"
	"github.com/rileyhilliard/rcmd/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	copyCmd = "rclone copy /path/to/local/folder filelu:/backup/my-files"
	lsCmd   = "rclone ls filelu:/backup/my-files"
)

func newController(t *testing.T, clip *cliptest.FakeClipboard) (*copier.Controller, *copiertest.FakeScheduler) {
	t.Helper()
	sched := copiertest.NewFakeScheduler()
	c := copier.New(clip, copier.WithScheduler(sched), copier.WithLogger(logger.Noop()))
	t.Cleanup(c.Close)
	return c, sched
}

func TestAttemptCopy_Success(t *testing.T) {
	clip := cliptest.NewFakeClipboard()
	c, _ := newController(t, clip)

	ok := c.AttemptCopy(copyCmd)

	require.True(t, ok)
	assert.Equal(t, copyCmd, clip.Last())

	st := c.Snapshot()
	active, has := st.Copied()
	assert.True(t, has)
	assert.Equal(t, copyCmd, active)
	assert.True(t, st.NotificationVisible)
	assert.False(t, st.LastFailed)
	assert.True(t, c.IsCopied(copyCmd))
	assert.False(t, c.IsCopied(lsCmd))
}

func TestAttemptCopy_SignalsRevertIndependently(t *testing.T) {
	c, sched := newController(t, cliptest.NewFakeClipboard())

	require.True(t, c.AttemptCopy(copyCmd))

	sched.Advance(1499 * time.Millisecond)
	assert.True(t, c.Snapshot().HasActive, "copied flag still up just before 1500ms")

	sched.Advance(time.Millisecond)
	st := c.Snapshot()
	assert.False(t, st.HasActive, "copied flag cleared at 1500ms")
	assert.Equal(t, "", st.Active)
	assert.True(t, st.NotificationVisible, "notification outlives the copied flag")

	sched.Advance(499 * time.Millisecond)
	assert.True(t, c.Snapshot().NotificationVisible)

	sched.Advance(time.Millisecond)
	assert.False(t, c.Snapshot().NotificationVisible, "notification cleared at 2000ms")
	assert.Equal(t, 0, sched.Pending())
}

func TestAttemptCopy_SecondCopyOverwritesAndRestarts(t *testing.T) {
	c, sched := newController(t, cliptest.NewFakeClipboard())

	require.True(t, c.AttemptCopy(copyCmd))
	sched.Advance(1000 * time.Millisecond)

	require.True(t, c.AttemptCopy(lsCmd))
	assert.False(t, c.IsCopied(copyCmd), "first command no longer flagged")
	assert.True(t, c.IsCopied(lsCmd))

	// The first copy's 1500ms deadline passes without clearing the new value.
	sched.Advance(600 * time.Millisecond)
	assert.True(t, c.IsCopied(lsCmd))
	assert.True(t, c.Snapshot().NotificationVisible)

	// 1500ms after the second copy the flag clears.
	sched.Advance(900 * time.Millisecond)
	assert.False(t, c.Snapshot().HasActive)
	assert.True(t, c.Snapshot().NotificationVisible)

	// 2000ms after the second copy the toast clears.
	sched.Advance(500 * time.Millisecond)
	assert.False(t, c.Snapshot().NotificationVisible)
}

func TestAttemptCopy_SameCommandTwiceRestartsTimers(t *testing.T) {
	c, sched := newController(t, cliptest.NewFakeClipboard())

	require.True(t, c.AttemptCopy(copyCmd))
	sched.Advance(1400 * time.Millisecond)
	require.True(t, c.AttemptCopy(copyCmd))

	sched.Advance(1400 * time.Millisecond)
	assert.True(t, c.IsCopied(copyCmd))
	assert.Equal(t, 2, sched.Pending(), "only the latest pair of timers is live")
}

func TestAttemptCopy_Failure(t *testing.T) {
	clip := cliptest.NewFakeClipboard().SetFail(nil)
	c, sched := newController(t, clip)

	ok := c.AttemptCopy(copyCmd)

	assert.False(t, ok)
	st := c.Snapshot()
	assert.False(t, st.HasActive)
	assert.Equal(t, "", st.Active)
	assert.False(t, st.NotificationVisible)
	assert.True(t, st.LastFailed)

	sched.Advance(copier.DefaultNotifyFor)
	assert.False(t, c.Snapshot().LastFailed)
}

func TestAttemptCopy_FailureKeepsPreviousCopy(t *testing.T) {
	clip := cliptest.NewFakeClipboard()
	c, _ := newController(t, clip)

	require.True(t, c.AttemptCopy(copyCmd))
	clip.SetFail(nil)

	assert.False(t, c.AttemptCopy(lsCmd))
	assert.True(t, c.IsCopied(copyCmd))
}

func TestAttemptCopy_PanicIsContained(t *testing.T) {
	c, _ := newController(t, cliptest.NewFakeClipboard().SetPanic())

	var ok bool
	assert.NotPanics(t, func() { ok = c.AttemptCopy(copyCmd) })
	assert.False(t, ok)
	assert.False(t, c.Snapshot().HasActive)
}

func TestOnChange(t *testing.T) {
	c, sched := newController(t, cliptest.NewFakeClipboard())

	var mu sync.Mutex
	var states []copier.State
	c.OnChange(func(s copier.State) {
		mu.Lock()
		defer mu.Unlock()
		states = append(states, s)
	})

	c.AttemptCopy(copyCmd)
	sched.Advance(2 * time.Second)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, states, 3)
	assert.True(t, states[0].HasActive)
	assert.True(t, states[0].NotificationVisible)
	assert.False(t, states[1].HasActive)
	assert.True(t, states[1].NotificationVisible)
	assert.False(t, states[2].NotificationVisible)
}

func TestClose_CancelsPendingTimers(t *testing.T) {
	c, sched := newController(t, cliptest.NewFakeClipboard())

	require.True(t, c.AttemptCopy(copyCmd))
	require.Equal(t, 2, sched.Pending())

	c.Close()
	assert.Equal(t, 0, sched.Pending())

	sched.Advance(5 * time.Second)
	st := c.Snapshot()
	assert.True(t, st.HasActive, "no transitions after teardown")

	clip := cliptest.NewFakeClipboard()
	closed := copier.New(clip, copier.WithScheduler(sched))
	closed.Close()
	assert.True(t, closed.AttemptCopy(lsCmd), "write still reaches the clipboard")
	assert.False(t, closed.Snapshot().HasActive)
	assert.Equal(t, 0, sched.Pending())
}

func TestWithDurations(t *testing.T) {
	sched := copiertest.NewFakeScheduler()
	c := copier.New(cliptest.NewFakeClipboard(),
		copier.WithScheduler(sched),
		copier.WithDurations(100*time.Millisecond, 0))
	defer c.Close()

	copiedFor, notifyFor := c.Durations()
	assert.Equal(t, 100*time.Millisecond, copiedFor)
	assert.Equal(t, copier.DefaultNotifyFor, notifyFor)

	c.AttemptCopy(copyCmd)
	sched.Advance(100 * time.Millisecond)
	assert.False(t, c.Snapshot().HasActive)
	assert.True(t, c.Snapshot().NotificationVisible)
}

func TestSystemScheduler(t *testing.T) {
	c := copier.New(cliptest.NewFakeClipboard(),
		copier.WithDurations(10*time.Millisecond, 20*time.Millisecond),
		copier.WithLogger(logger.Noop()))
	defer c.Close()

	done := make(chan struct{})
	c.OnChange(func(s copier.State) {
		if !s.HasActive && !s.NotificationVisible {
			close(done)
		}
	})

	require.True(t, c.AttemptCopy(copyCmd))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("signals never reverted")
	}
	assert.Equal(t, copier.State{}, c.Snapshot())
}

func TestBackend(t *testing.T) {
	c, _ := newController(t, cliptest.NewFakeClipboard())
	assert.Equal(t, "fake", c.Backend())
}
