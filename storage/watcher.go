package storage

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/status-im/market-dashboard/events"
	"github.com/status-im/market-dashboard/scheduler"
)

// Watcher polls one key and emits an event whenever its raw value differs from
// the last one observed. A writer that notifies its own listeners writes through
// Apply so its write is never reported a second time.
type Watcher struct {
	storage Storage
	key     string

	scheduler     *scheduler.Scheduler
	subscriptions *events.SubscriptionManager

	// held across a poll and across Apply, so a poll never sees a write
	// before its baseline is moved
	mu        sync.Mutex
	lastValue string
	lastFound bool
}

// NewWatcher creates a stopped watcher for key
func NewWatcher(storage Storage, key string, interval time.Duration) *Watcher {
	w := &Watcher{
		storage:       storage,
		key:           key,
		subscriptions: events.NewSubscriptionManager(),
	}
	w.scheduler = scheduler.New(interval, func(ctx context.Context) {
		w.Check(ctx)
	})
	return w
}

// Start records the current value as the baseline and begins polling
func (w *Watcher) Start(ctx context.Context) error {
	value, found, err := w.storage.Get(w.key)
	if err != nil {
		log.Printf("Storage: Watcher could not read baseline for %q: %v", w.key, err)
	}

	w.mu.Lock()
	w.lastValue, w.lastFound = value, found
	w.mu.Unlock()

	log.Printf("Storage: Watching %q every %s", w.key, w.scheduler.Interval())
	w.scheduler.Start(ctx, false)
	return nil
}

// Stop ends polling
func (w *Watcher) Stop() {
	w.scheduler.Stop()
}

// Subscribe returns a subscription that fires after each observed change
func (w *Watcher) Subscribe() events.ISubscription {
	return w.subscriptions.Subscribe()
}

// Check polls the key once and emits if it changed. Read errors are logged and
// leave the baseline untouched. It reports whether a change was emitted.
func (w *Watcher) Check(ctx context.Context) bool {
	w.mu.Lock()
	value, found, err := w.storage.Get(w.key)
	if err != nil {
		w.mu.Unlock()
		log.Printf("Storage: Watcher failed to read %q: %v", w.key, err)
		return false
	}

	changed := value != w.lastValue || found != w.lastFound
	w.lastValue, w.lastFound = value, found
	w.mu.Unlock()

	if changed {
		w.subscriptions.Emit(ctx)
	}
	return changed
}

// Apply runs write with polling held off and moves the baseline to the value it
// reports. write must not call back into the watcher. On error the baseline is
// left as it was.
func (w *Watcher) Apply(write func() (value string, found bool, err error)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	value, found, err := write()
	if err != nil {
		return err
	}
	w.lastValue, w.lastFound = value, found
	return nil
}
