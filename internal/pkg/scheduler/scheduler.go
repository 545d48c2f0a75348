// Package scheduler runs periodic work behind cancellable handles.
package scheduler

import (
	"sync"
	"time"
)

// Handle cancels a scheduled task. Stop is idempotent and never blocks on the task.
type Handle interface {
	Stop()
}

// Scheduler starts periodic tasks
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
}

// Ticker is the wall-clock Scheduler
type Ticker struct{}

// New returns the wall-clock scheduler
func New() *Ticker {
	return &Ticker{}
}

type tickerHandle struct {
	once sync.Once
	done chan struct{}
}

func (h *tickerHandle) Stop() {
	h.once.Do(func() { close(h.done) })
}

// Every runs fn every interval until the returned handle is stopped.
// The first run happens one interval after the call.
func (t *Ticker) Every(interval time.Duration, fn func()) Handle {
	h := &tickerHandle{done: make(chan struct{})}
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-h.done:
				return
			case <-ticker.C:
				// a stop that raced the tick wins
				select {
				case <-h.done:
					return
				default:
				}
				fn()
			}
		}
	}()

	return h
}
