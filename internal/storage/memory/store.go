package memory

import (
	"context"
	"sort"
	"sync"

	"tickets_events/internal/domain"
)

// Store keeps the latest pushed snapshot per entity in memory. Snapshots
// are transient host state, so process lifetime is the right lifetime;
// the host re-pushes after a restart.
type Store struct {
	mu    sync.RWMutex
	snaps map[string]domain.Snapshot
}

func New() *Store {
	return &Store{snaps: make(map[string]domain.Snapshot)}
}

func (s *Store) Put(_ context.Context, snap domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snaps[snap.Entity] = snap
	return nil
}

func (s *Store) Get(_ context.Context, entity string) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.snaps[entity]
	if !ok {
		return domain.Snapshot{}, domain.ErrNoSnapshot
	}
	return snap, nil
}

func (s *Store) Entities(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.snaps))
	for e := range s.snaps {
		out = append(out, e)
	}
	sort.Strings(out)
	return out, nil
}
