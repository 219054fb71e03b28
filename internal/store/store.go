package store

import "sync"

// Store is the shared handle to the current snapshot. Mutations go through
// Update, which serializes the read-modify-swap; readers grab the current
// snapshot and work on it without further locking, since snapshots are
// immutable.
type Store struct {
	mu      sync.RWMutex
	current *Snapshot
}

func New(snap *Snapshot) *Store {
	return &Store{current: snap}
}

func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update applies fn to the current snapshot and installs the result. If fn
// returns an error the current snapshot is kept as-is.
func (s *Store) Update(fn func(*Snapshot) (*Snapshot, error)) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.current)
	if err != nil {
		return s.current, err
	}
	s.current = next

	return next, nil
}
