// Package copier implements the copy interaction: it hands a rendered command
// to the clipboard and drives two short-lived UI signals from the result.
//
// # Signals
//
// There is one shared "copied" slot holding the exact command string that was
// copied last, and one notification flag for the global toast. Both are set on
// a successful copy and revert on their own timers (1.5s and 2s by default).
// A copy while the slot is occupied overwrites it and restarts both timers:
//
//	Idle --copy ok--> Copied(a) --copy ok--> Copied(b) --timer--> Idle
//
// A failed copy leaves both signals untouched. It raises LastFailed instead,
// which the builder shows as a short failure toast and which reverts with the
// notification timer.
//
// # Timers
//
// Each signal owns one Timer handle. Restarting a signal stops the previous
// handle and bumps a generation counter, so a callback that already escaped
// Stop sees a stale generation and does nothing. Close stops every handle;
// the owner calls it on teardown.
package copier

import (
	"fmt"
	"sync"
	"time"

	"github.com/rileyhilliard/rcmd/internal/clipboard"
	"github.com/rileyhilliard/rcmd/internal/errors"
	"github.com/rileyhilliard/rcmd/internal/logger"
)

// Default signal lifetimes.
const (
	DefaultCopiedFor = 1500 * time.Millisecond
	DefaultNotifyFor = 2000 * time.Millisecond
)

// State is a snapshot of the copy signals.
type State struct {
	Active              string // command in the copied slot, valid when HasActive
	HasActive           bool
	NotificationVisible bool
	LastFailed          bool
}

// Copied returns the command in the copied slot.
func (s State) Copied() (string, bool) {
	return s.Active, s.HasActive
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler replaces the runtime timer scheduler.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		c.sched = s
	}
}

// WithDurations overrides how long each signal stays up. Non-positive values
// keep the defaults.
func WithDurations(copiedFor, notifyFor time.Duration) Option {
	return func(c *Controller) {
		if copiedFor > 0 {
			c.copiedFor = copiedFor
		}
		if notifyFor > 0 {
			c.notifyFor = notifyFor
		}
	}
}

// WithLogger sets the logger used for copy outcomes.
func WithLogger(l logger.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// Controller owns the copy signal state for one session.
// It is safe for concurrent use; timer callbacks arrive on other goroutines.
type Controller struct {
	mu sync.Mutex

	clip      clipboard.Clipboard
	sched     Scheduler
	log       logger.Logger
	copiedFor time.Duration
	notifyFor time.Duration

	state    State
	listener func(State)
	closed   bool

	copiedTimer Timer
	notifyTimer Timer
	failTimer   Timer
	copiedGen   uint64
	notifyGen   uint64
	failGen     uint64
}

// New creates a controller that copies through clip.
func New(clip clipboard.Clipboard, opts ...Option) *Controller {
	c := &Controller{
		clip:      clip,
		sched:     SystemScheduler(),
		log:       logger.NewEnvLogger("[copier]"),
		copiedFor: DefaultCopiedFor,
		notifyFor: DefaultNotifyFor,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnChange registers fn to receive the new state after every transition.
// fn is called without the controller lock held, possibly from a timer goroutine.
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = fn
}

// Snapshot returns the current signal state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsCopied reports whether command is the one currently flagged as copied.
func (c *Controller) IsCopied(command string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.HasActive && c.state.Active == command
}

// Durations returns the configured signal lifetimes.
func (c *Controller) Durations() (copiedFor, notifyFor time.Duration) {
	return c.copiedFor, c.notifyFor
}

// Backend names the clipboard this controller writes to.
func (c *Controller) Backend() string {
	return c.clip.Name()
}

// AttemptCopy copies command and updates the signals. It returns false when
// the clipboard cannot take the text; it never panics or returns an error.
func (c *Controller) AttemptCopy(command string) bool {
	if err := c.write(command); err != nil {
		c.log.Debug("copy via %s failed: %v", c.clip.Name(), err)
		c.publish(c.markFailed())
		return false
	}

	c.log.Debug("copied %d bytes via %s", len(command), c.clip.Name())
	c.publish(c.markCopied(command))
	return true
}

// Close stops all pending timers. Signals keep their last values and no
// further transitions happen.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	for _, t := range []*Timer{&c.copiedTimer, &c.notifyTimer, &c.failTimer} {
		if *t != nil {
			(*t).Stop()
			*t = nil
		}
	}
}

// write calls the clipboard and turns a panic into an error.
func (c *Controller) write(command string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.WrapWithCode(fmt.Errorf("%v", r), errors.ErrClipboard,
				"Clipboard backend crashed", clipboard.ErrCopyUnavailable.Suggestion)
		}
	}()
	return c.clip.WriteText(command)
}

func (c *Controller) markCopied(command string) (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.state, false
	}

	c.state.Active = command
	c.state.HasActive = true
	c.state.NotificationVisible = true
	c.state.LastFailed = false

	c.stop(&c.failTimer)
	c.restart(&c.copiedTimer, &c.copiedGen, c.copiedFor, c.expireCopied)
	c.restart(&c.notifyTimer, &c.notifyGen, c.notifyFor, c.expireNotify)

	return c.state, true
}

func (c *Controller) markFailed() (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.state, false
	}

	c.state.LastFailed = true
	c.restart(&c.failTimer, &c.failGen, c.notifyFor, c.expireFail)

	return c.state, true
}

// restart stops the current handle and schedules a fresh one. Caller holds mu.
func (c *Controller) restart(t *Timer, gen *uint64, d time.Duration, expire func(uint64)) {
	c.stop(t)
	*gen++
	g := *gen
	*t = c.sched.AfterFunc(d, func() { expire(g) })
}

// stop cancels a handle. Caller holds mu.
func (c *Controller) stop(t *Timer) {
	if *t != nil {
		(*t).Stop()
		*t = nil
	}
}

func (c *Controller) expireCopied(gen uint64) {
	c.expire(&c.copiedGen, gen, &c.copiedTimer, func(s *State) {
		s.Active = ""
		s.HasActive = false
	})
}

func (c *Controller) expireNotify(gen uint64) {
	c.expire(&c.notifyGen, gen, &c.notifyTimer, func(s *State) {
		s.NotificationVisible = false
	})
}

func (c *Controller) expireFail(gen uint64) {
	c.expire(&c.failGen, gen, &c.failTimer, func(s *State) {
		s.LastFailed = false
	})
}

func (c *Controller) expire(current *uint64, gen uint64, t *Timer, clear func(*State)) {
	c.mu.Lock()
	if c.closed || *current != gen {
		c.mu.Unlock()
		return
	}
	clear(&c.state)
	*t = nil
	st := c.state
	c.mu.Unlock()

	c.publish(st, true)
}

func (c *Controller) publish(st State, changed bool) {
	if !changed {
		return
	}
	c.mu.Lock()
	fn := c.listener
	c.mu.Unlock()
	if fn != nil {
		fn(st)
	}
}
