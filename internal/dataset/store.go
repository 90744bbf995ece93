package dataset

import "sync/atomic"

// Store holds the active snapshot. Readers grab the whole snapshot with
// Snapshot and never see a partial update; a reload swaps in a complete new
// Dataset, so concurrent reads need no locking.
type Store struct {
	p atomic.Pointer[Dataset]
}

func NewStore(d *Dataset) *Store {
	s := &Store{}
	s.p.Store(d)
	return s
}

func (s *Store) Snapshot() *Dataset {
	return s.p.Load()
}

func (s *Store) Swap(d *Dataset) {
	s.p.Store(d)
}
