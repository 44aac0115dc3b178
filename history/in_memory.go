package history

import (
	"sync"
	"time"

	"github.com/hupe1980/engineroom/core"
)

// DefaultRetention is the per-engine entry cap used when a store is created
// with a non-positive limit.
const DefaultRetention = 256

// Entry is one recorded event with its observation time.
type Entry struct {
	Event    core.Event
	Observed time.Time
}

// InMemoryStore is a volatile journal keeping the most recent events per
// engine in a process local map. It is safe for concurrent access and best
// suited for introspection and tests. Returned slices are defensive copies
// to prevent external mutation of internal state.
type InMemoryStore struct {
	mu        sync.RWMutex
	retention int
	journals  map[string][]Entry
}

// NewInMemoryStore constructs an empty journal store keeping at most
// retention entries per engine (DefaultRetention if non-positive).
func NewInMemoryStore(retention int) *InMemoryStore {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &InMemoryStore{
		retention: retention,
		journals:  make(map[string][]Entry),
	}
}

// Append records an event for an engine, evicting the oldest entry once the
// retention cap is reached.
func (s *InMemoryStore) Append(engine string, event core.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	journal := append(s.journals[engine], Entry{Event: event, Observed: time.Now()})
	if len(journal) > s.retention {
		journal = journal[len(journal)-s.retention:]
	}
	s.journals[engine] = journal
}

// Recent returns a copy of the recorded entries for an engine, oldest first.
func (s *InMemoryStore) Recent(engine string) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	journal := s.journals[engine]
	entries := make([]Entry, len(journal))
	copy(entries, journal)
	return entries
}

// Remove drops the journal of an engine.
func (s *InMemoryStore) Remove(engine string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.journals, engine)
}

// Engines returns the names that currently have a journal.
func (s *InMemoryStore) Engines() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.journals))
	for name := range s.journals {
		names = append(names, name)
	}
	return names
}
