package domain

import (
	"context"
	"errors"
)

// ErrNoSnapshot is returned when the host has not pushed state for an
// entity yet. Widgets render a static explanatory message for it and
// re-evaluate on the next push.
var ErrNoSnapshot = errors.New("no snapshot for entity")

// SnapshotStore holds the latest pushed snapshot per entity. The store is
// authoritative; the cache in front of it is best-effort.
type SnapshotStore interface {
	Put(ctx context.Context, s Snapshot) error
	Get(ctx context.Context, entity string) (Snapshot, error)
	Entities(ctx context.Context) ([]string, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
