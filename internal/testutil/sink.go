package testutil

import (
	"sync"

	"github.com/hupe1980/engineroom/core"
)

// Emitted is one (engine name, event) pair observed by a CaptureSink.
type Emitted struct {
	Engine string
	Event  core.Event
}

// CaptureSink records every forwarded event for later assertion. Safe for
// concurrent use.
type CaptureSink struct {
	mu      sync.Mutex
	emitted []Emitted
}

// NewCaptureSink creates an empty capture sink.
func NewCaptureSink() *CaptureSink { return &CaptureSink{} }

// Emit implements core.Sink.
func (s *CaptureSink) Emit(engine string, event core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emitted = append(s.emitted, Emitted{Engine: engine, Event: event})
}

// Emitted returns a copy of everything captured so far, in emission order.
func (s *CaptureSink) Emitted() []Emitted {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Emitted, len(s.emitted))
	copy(out, s.emitted)
	return out
}

// EventsFor returns the events captured for one engine, in emission order.
func (s *CaptureSink) EventsFor(engine string) []core.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Event
	for _, e := range s.emitted {
		if e.Engine == engine {
			out = append(out, e.Event)
		}
	}
	return out
}

// Ptr returns a pointer to v. Handy for the optional fields used throughout
// the command and update vocabulary.
func Ptr[T any](v T) *T { return &v }
