// Package timertest provides a manually driven timer.Scheduler.
package timertest

import (
	"sort"
	"sync"
	"time"

	"github.com/Nazarious-ucu/city-dashboard/internal/timer"
)

type task struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
	s       *Scheduler
}

func (t *task) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Scheduler runs tasks only when Advance moves its clock past them.
type Scheduler struct {
	mu    sync.Mutex
	now   time.Duration
	tasks []*task
}

func New() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) AfterFunc(d time.Duration, f func()) timer.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &task{at: s.now + d, f: f, s: s}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward and runs every due task in order.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	var due []*task
	pending := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case t.stopped:
		case t.at <= s.now:
			t.fired = true
			due = append(due, t)
		default:
			pending = append(pending, t)
		}
	}
	s.tasks = pending
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	for _, t := range due {
		t.f()
	}
}

// Pending counts tasks that are neither stopped nor run.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}
