package streaming

import (
	"log/slog"
	"sync"

	"github.com/JadKHaddad/JobHub/internal/jobs"
)

// subscriberQueueSize is the bounded, lossy per-subscriber queue capacity
// from the broadcast bus specification.
const subscriberQueueSize = 100

// Bus is a single-writer-per-event, many-reader fan-out. Publish never
// blocks: when a subscriber's queue is full, the oldest queued event for
// that subscriber is dropped and the new one takes its place. There is no
// per-job topic scoping -- every subscriber receives every event, matching
// the single flat broadcast channel the core is built around.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[*Subscription]struct{}
	logger      *slog.Logger
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[*Subscription]struct{}),
		logger:      slog.Default().With("component", "bus"),
	}
}

// Subscription is a single subscriber's receive end.
type Subscription struct {
	bus *Bus
	ch  chan jobs.Event
}

// Events returns the channel events are delivered on.
func (s *Subscription) Events() <-chan jobs.Event {
	return s.ch
}

// Close unregisters the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.bus.mu.Lock()
	defer s.bus.mu.Unlock()
	if _, ok := s.bus.subscribers[s]; ok {
		delete(s.bus.subscribers, s)
		close(s.ch)
	}
}

// Subscribe returns a new receive end with its own bounded queue.
func (b *Bus) Subscribe() *Subscription {
	s := &Subscription{bus: b, ch: make(chan jobs.Event, subscriberQueueSize)}
	b.mu.Lock()
	b.subscribers[s] = struct{}{}
	b.mu.Unlock()
	return s
}

// Publish delivers event to every current subscriber without blocking. A
// subscriber whose queue is full loses its oldest queued event; the
// publisher is never slowed down by a lagging consumer.
func (b *Bus) Publish(event jobs.Event) {
	b.mu.RLock()
	targets := make([]*Subscription, 0, len(b.subscribers))
	for s := range b.subscribers {
		targets = append(targets, s)
	}
	b.mu.RUnlock()

	for _, s := range targets {
		select {
		case s.ch <- event:
		default:
			select {
			case <-s.ch:
				b.logger.Debug("dropped oldest event for lagging subscriber")
			default:
			}
			select {
			case s.ch <- event:
			default:
				b.logger.Debug("event dropped, subscriber still full")
			}
		}
	}
}
