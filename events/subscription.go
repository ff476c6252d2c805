package events

import (
	"context"
	"sync"
)

// ISubscription is a single asynchronous listener of a notification source
type ISubscription interface {
	// Chan receives one value per collapsed burst of events and is closed on Cancel
	Chan() <-chan struct{}
	// Cancel detaches the subscription. Repeated calls are no-ops
	Cancel()
	// Watch runs cb on its own goroutine for every event until Cancel or until
	// parentCtx is done. With callNow, cb also runs once before Watch returns
	Watch(parentCtx context.Context, cb func(), callNow bool) ISubscription
}

// Subscription is the ISubscription handed out by SubscriptionManager
type Subscription struct {
	pending chan struct{}
	owner   *SubscriptionManager

	stopOnce  sync.Once
	stopWatch context.CancelFunc
}

var _ ISubscription = (*Subscription)(nil)

func (s *Subscription) Chan() <-chan struct{} {
	return s.pending
}

func (s *Subscription) Cancel() {
	s.stopOnce.Do(func() {
		if s.stopWatch != nil {
			s.stopWatch()
		}
		s.owner.detach(s)
	})
}

func (s *Subscription) Watch(parentCtx context.Context, cb func(), callNow bool) ISubscription {
	ctx, stop := context.WithCancel(parentCtx)
	s.stopWatch = stop

	if callNow {
		cb()
	}

	go s.loop(ctx, cb)
	return s
}

func (s *Subscription) loop(ctx context.Context, cb func()) {
	defer s.Cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case _, open := <-s.pending:
			if !open {
				return
			}
			cb()
		}
	}
}

// SubscriptionManager fans a signal out to asynchronous subscribers. Each
// subscriber holds at most one pending signal, so a slow consumer sees a burst
// of emits as a single event.
type SubscriptionManager struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

func NewSubscriptionManager() *SubscriptionManager {
	return &SubscriptionManager{
		subs: make(map[*Subscription]struct{}),
	}
}

// Subscribe attaches a new subscriber
func (m *SubscriptionManager) Subscribe() ISubscription {
	sub := &Subscription{
		pending: make(chan struct{}, 1),
		owner:   m,
	}

	m.mu.Lock()
	m.subs[sub] = struct{}{}
	m.mu.Unlock()

	return sub
}

func (m *SubscriptionManager) detach(sub *Subscription) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, attached := m.subs[sub]; !attached {
		return
	}
	delete(m.subs, sub)
	close(sub.pending)
}

// Emit signals every subscriber without blocking. It stops early once ctx is done.
func (m *SubscriptionManager) Emit(ctx context.Context) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for sub := range m.subs {
		if ctx.Err() != nil {
			return
		}
		select {
		case sub.pending <- struct{}{}:
		default:
			// already pending
		}
	}
}

// Count returns the number of attached subscribers
func (m *SubscriptionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs)
}
