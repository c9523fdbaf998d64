// Package testing provides test doubles for the copier package.
package testing

import (
	"sort"
	"sync"
	"time"

	"github.com/rileyhilliard/rcmd/internal/copier"
)

// FakeScheduler is a manual clock. Callbacks only run inside Advance, on the
// caller's goroutine, in due-time order.
type FakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*FakeTimer
}

// FakeTimer is a handle returned by FakeScheduler.
type FakeTimer struct {
	s       *FakeScheduler
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

// NewFakeScheduler creates a scheduler at time zero.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// AfterFunc schedules f to run once the clock has advanced by d.
func (s *FakeScheduler) AfterFunc(d time.Duration, f func()) copier.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &FakeTimer{s: s, due: s.now + d, seq: s.seq, fn: f}
	s.timers = append(s.timers, t)
	return t
}

// Stop cancels the timer if it has not fired.
func (t *FakeTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Stopped reports whether Stop cancelled the timer.
func (t *FakeTimer) Stopped() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	return t.stopped
}

// Advance moves the clock forward by d and fires every timer that came due.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	s.mu.Lock()
	s.now = target
	s.mu.Unlock()
}

// nextDue pops the earliest live timer due at or before target.
func (s *FakeScheduler) nextDue(target time.Duration) *FakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	var live []*FakeTimer
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.due <= target {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].due == live[j].due {
			return live[i].seq < live[j].seq
		}
		return live[i].due < live[j].due
	})
	t := live[0]
	t.fired = true
	s.now = t.due
	return t
}

// Now returns the elapsed fake time.
func (s *FakeScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns how many timers are scheduled and not yet fired or stopped.
func (s *FakeScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

var _ copier.Scheduler = (*FakeScheduler)(nil)
