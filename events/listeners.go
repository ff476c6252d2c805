package events

import "sync"

type listener struct {
	id int
	cb func()
}

// Listeners is an ordered registry of callbacks that Notify runs synchronously
// on the caller's goroutine, in registration order.
type Listeners struct {
	mu        sync.Mutex
	nextID    int
	listeners []listener
}

// Add registers cb and returns a function that removes it. The returned function is idempotent.
func (l *Listeners) Add(cb func()) func() {
	l.mu.Lock()
	l.nextID++
	id := l.nextID
	l.listeners = append(l.listeners, listener{id: id, cb: cb})
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { l.remove(id) })
	}
}

func (l *Listeners) remove(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, entry := range l.listeners {
		if entry.id == id {
			l.listeners = append(l.listeners[:i:i], l.listeners[i+1:]...)
			return
		}
	}
}

// Notify calls every registered callback. Callbacks may add or remove listeners.
func (l *Listeners) Notify() {
	l.mu.Lock()
	snapshot := make([]listener, len(l.listeners))
	copy(snapshot, l.listeners)
	l.mu.Unlock()

	for _, entry := range snapshot {
		entry.cb()
	}
}

// Len returns the number of registered callbacks
func (l *Listeners) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.listeners)
}
