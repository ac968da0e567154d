package cache

import (
	"sync"

	"github.com/azacreation/adminsdk/pkg/logging"
)

// Key identifies one cached query, e.g. "designs" or "design-stats".
// Keys are stable and scoped to one entity; mutations invalidate by
// key and must never touch another entity's keys.
type Key string

type invalidatable interface {
	Invalidate()
}

// Store is the shared registry of cached queries. It is read by any
// number of views and written only by completed queries and
// mutations; entries are replaced atomically, never mutated in place.
type Store struct {
	mu      sync.RWMutex
	entries map[Key]invalidatable
	logger  *logging.Logger
}

// NewStore creates an empty query store.
func NewStore() *Store {
	return &Store{
		entries: make(map[Key]invalidatable),
		logger:  logging.GetDefault(),
	}
}

func (s *Store) register(key Key, entry invalidatable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry
}

func (s *Store) unregister(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Invalidate marks the named queries stale. Unknown keys are ignored:
// a query that was never subscribed has nothing to go stale.
func (s *Store) Invalidate(keys ...Key) {
	s.mu.RLock()
	targets := make([]invalidatable, 0, len(keys))
	for _, key := range keys {
		if entry, ok := s.entries[key]; ok {
			targets = append(targets, entry)
		}
	}
	s.mu.RUnlock()

	for _, entry := range targets {
		entry.Invalidate()
	}
}

// Len reports how many queries are registered.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
