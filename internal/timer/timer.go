// Package timer schedules cancellable delayed tasks.
package timer

import "time"

// Timer is a scheduled task that has not necessarily run yet.
type Timer interface {
	// Stop prevents the task from running. It reports false when the task
	// already ran or was stopped.
	Stop() bool
}

type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Real schedules on the runtime clock.
type Real struct{}

func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
