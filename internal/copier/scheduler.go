package copier

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from running if it has not started yet.
	// Returns false if the callback already ran or was already stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay. Production code uses the runtime
// timer; tests drive time by hand with testing.FakeScheduler.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// SystemScheduler returns a Scheduler backed by time.AfterFunc.
// Callbacks run on their own goroutine.
func SystemScheduler() Scheduler {
	return systemScheduler{}
}
