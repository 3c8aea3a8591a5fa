package app

import (
	"context"
	"fmt"
	"time"

	"tickets_events/internal/domain"
)

// SnapshotInput is the decoded body of a host push.
type SnapshotInput struct {
	DestinationTitle *string          `json:"destination_title"`
	Events           []map[string]any `json:"events"`
}

// SnapshotService owns the snapshot read/write paths: pushes map and
// enrich the host payload into the store and invalidate the cache; reads
// go cache-first. The store holds the authoritative latest snapshot per
// entity, the cache is best-effort in front of it.
type SnapshotService struct {
	store    domain.SnapshotStore
	cache    domain.Cache
	cacheTTL time.Duration
	currency string
}

func NewSnapshotService(store domain.SnapshotStore, cache domain.Cache, ttl time.Duration, currency string) *SnapshotService {
	if currency == "" {
		currency = "EUR"
	}
	return &SnapshotService{store: store, cache: cache, cacheTTL: ttl, currency: currency}
}

func snapshotKey(entity string) string { return fmt.Sprintf("snapshot:%s", entity) }

// Push replaces the entity's snapshot wholesale. Events keep the host's
// order; derived booking fields are filled where missing.
func (s *SnapshotService) Push(ctx context.Context, entity string, in SnapshotInput) (domain.Snapshot, error) {
	events := mapEvents(in.Events)
	for i := range events {
		enrichEvent(&events[i], s.currency)
	}
	snap := domain.Snapshot{
		Entity:           entity,
		DestinationTitle: in.DestinationTitle,
		Events:           events,
		PushedAtUnix:     time.Now().Unix(),
	}
	if err := s.store.Put(ctx, snap); err != nil {
		return domain.Snapshot{}, err
	}
	// Evict the stale cached copy; the next read repopulates it.
	if s.cache != nil {
		_ = s.cache.Del(ctx, snapshotKey(entity))
	}
	return snap, nil
}

// Get returns the latest snapshot for an entity, cache-first.
func (s *SnapshotService) Get(ctx context.Context, entity string) (domain.Snapshot, error) {
	key := snapshotKey(entity)
	var snap domain.Snapshot
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &snap); ok {
			return snap, nil
		}
	}
	snap, err := s.store.Get(ctx, entity)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, snap, int(s.cacheTTL.Seconds()))
	}
	return snap, nil
}

// Entities lists every entity with a pushed snapshot.
func (s *SnapshotService) Entities(ctx context.Context) ([]string, error) {
	return s.store.Entities(ctx)
}
