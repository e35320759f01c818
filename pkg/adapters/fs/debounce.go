package fs

import (
	"sync"
	"time"

	"github.com/fberthelot/akhet/pkg/core"
)

// debouncer coalesces bursts of filesystem events per collection key.
// Editors and atomic renames produce several notifications for one logical
// change; only the last one within the window is delivered.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timers  map[string]*time.Timer
	wg      sync.WaitGroup
	stopped bool
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules fire(event) after the debounce window, replacing any pending
// timer for the same key.
func (d *debouncer) add(event core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if t, ok := d.timers[event.Key]; ok {
		if t.Stop() {
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	d.timers[event.Key] = time.AfterFunc(d.delay, func() {
		defer d.wg.Done()

		d.mu.Lock()
		delete(d.timers, event.Key)
		d.mu.Unlock()

		fire(event)
	})
}

// stopAndWait cancels pending timers and waits for in-flight callbacks to
// finish, bounded by timeout. After it returns no callback will ever fire,
// so the caller may safely close downstream channels.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, key)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
