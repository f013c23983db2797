// internal/events/store.go
package events

import "sync"

// snapshot is one immutable generation of a collection. The sequence stamp
// makes the last-write-wins behavior observable to callers that care.
type snapshot struct {
	seq   uint64
	items []CanonicalEvent
}

// Store holds the in-memory event collections (all, popular, upcoming,
// favorites). Each collection is replaced wholesale by a fetch and patched
// in place only for the favorite flag and the capacity counters. Consistency
// across collections is best-effort reconciliation, not a transaction.
type Store struct {
	mu          sync.RWMutex
	nextSeq     uint64
	collections map[Collection]snapshot
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{collections: make(map[Collection]snapshot)}
}

// Replace installs a fresh generation of one collection.
func (s *Store) Replace(c Collection, items []CanonicalEvent) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	s.collections[c] = snapshot{seq: s.nextSeq, items: append([]CanonicalEvent(nil), items...)}
	return s.nextSeq
}

// Get returns a copy of one collection and its sequence stamp. The copy is
// shallow on purpose: callers may read but not share the slices back.
func (s *Store) Get(c Collection) ([]CanonicalEvent, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.collections[c]
	if !ok {
		return nil, 0
	}
	return append([]CanonicalEvent(nil), snap.items...), snap.seq
}

// SetFavorite flips the favorite flag for one event id in every collection
// currently holding it and returns how many entries were touched. The
// favorites collection itself is not patched here; it is re-fetched by the
// caller because membership cannot be derived locally.
func (s *Store) SetFavorite(id string, favorite bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	touched := 0
	for name, snap := range s.collections {
		if name == CollectionFavorites {
			continue
		}
		for i := range snap.items {
			if snap.items[i].ID == id && snap.items[i].IsFavorite != favorite {
				snap.items[i].IsFavorite = favorite
				touched++
			}
		}
	}
	return touched
}

// AdjustAvailable patches the available-capacity counter for one event id
// across collections after a booking round trip. The result may go negative
// when upstream data was already inconsistent; the store does not clamp.
func (s *Store) AdjustAvailable(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, snap := range s.collections {
		for i := range snap.items {
			if snap.items[i].ID == id {
				snap.items[i].AvailableCapacity += delta
			}
		}
	}
}
