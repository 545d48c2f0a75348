// Package schedulertest provides a manually driven scheduler for tests.
package schedulertest

import (
	"sync"
	"time"

	"github.com/piresc/nebengjek-nav/internal/pkg/scheduler"
)

// Fake records scheduled tasks and runs them only when Tick is called
type Fake struct {
	mu    sync.Mutex
	tasks []*task
}

type task struct {
	interval time.Duration
	fn       func()
	stopped  bool
	owner    *Fake
}

func (t *task) Stop() {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	t.stopped = true
}

// New creates an empty fake scheduler
func New() *Fake {
	return &Fake{}
}

// Every registers fn; it runs on each Tick until stopped
func (f *Fake) Every(interval time.Duration, fn func()) scheduler.Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &task{interval: interval, fn: fn, owner: f}
	f.tasks = append(f.tasks, t)
	return t
}

// Tick runs every live task whose interval matches, or all live tasks when interval is zero
func (f *Fake) Tick(interval time.Duration) int {
	f.mu.Lock()
	var due []*task
	for _, t := range f.tasks {
		if !t.stopped && (interval == 0 || t.interval == interval) {
			due = append(due, t)
		}
	}
	f.mu.Unlock()

	ran := 0
	for _, t := range due {
		f.mu.Lock()
		stopped := t.stopped
		f.mu.Unlock()
		if stopped {
			continue
		}
		t.fn()
		ran++
	}
	return ran
}

// Pending is the number of tasks not yet stopped
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, t := range f.tasks {
		if !t.stopped {
			n++
		}
	}
	return n
}
