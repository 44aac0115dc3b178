package bus

import (
	"sync"
	"sync/atomic"

	"github.com/hupe1980/engineroom/internal/util"
)

// DefaultBufferSize is the subscription channel capacity used when a caller
// passes a non-positive buffer size.
const DefaultBufferSize = 64

// Subscription is the receiving end of one bus registration. Callers range
// over Events and call Close when done; the bus prunes the registration on
// the next publish after Close.
type Subscription[E any] struct {
	id     string
	ch     chan E
	closed atomic.Bool
}

// ID returns the unique identifier of this subscription.
func (s *Subscription[E]) ID() string { return s.id }

// Events returns the channel events are delivered on. The channel is closed
// by the bus once the subscription has been pruned.
func (s *Subscription[E]) Events() <-chan E { return s.ch }

// Close marks the subscription as detached. Delivery stops immediately; the
// bus releases the registration lazily on its next publish, at which point
// the Events channel is closed. Close is idempotent.
func (s *Subscription[E]) Close() { s.closed.Store(true) }

// Bus is a typed fan-out hub. Each subscriber owns one bounded channel; a
// full channel drops the event for that subscriber only. The registry mutex
// guards bookkeeping and is never held while delivering to any channel
// (non-blocking sends make delivery instantaneous, so holding it during the
// snapshot walk does not serialize subscribers).
type Bus[E any] struct {
	mu   sync.Mutex
	subs map[string]*Subscription[E]
}

// New creates an empty bus.
func New[E any]() *Bus[E] {
	return &Bus[E]{subs: make(map[string]*Subscription[E])}
}

// Subscribe registers a new bounded subscription and returns it. Subscribers
// may attach at any time; events published before registration are not
// replayed.
func (b *Bus[E]) Subscribe(buffer int) *Subscription[E] {
	if buffer <= 0 {
		buffer = DefaultBufferSize
	}
	sub := &Subscription[E]{id: util.NewID(), ch: make(chan E, buffer)}

	b.mu.Lock()
	b.subs[sub.id] = sub
	b.mu.Unlock()

	return sub
}

// Publish delivers the event to every live subscriber. Delivery never
// blocks: subscribers with a full buffer miss this event. Closed
// subscriptions encountered during the walk are pruned and their channels
// closed.
func (b *Bus[E]) Publish(event E) {
	b.mu.Lock()
	for id, sub := range b.subs {
		if sub.closed.Load() {
			delete(b.subs, id)
			close(sub.ch)
			continue
		}
		select {
		case sub.ch <- event:
		default:
			// Buffer full: drop for this subscriber.
		}
	}
	b.mu.Unlock()
}

// HasSubscribers reports whether any live subscription exists.
func (b *Bus[E]) HasSubscribers() bool { return b.SubscriberCount() > 0 }

// SubscriberCount returns the number of registrations that have not been
// closed. Closed-but-unpruned registrations are not counted.
func (b *Bus[E]) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, sub := range b.subs {
		if !sub.closed.Load() {
			n++
		}
	}
	return n
}
