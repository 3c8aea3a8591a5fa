package memory_test

import (
	"context"
	"errors"
	"testing"

	"tickets_events/internal/domain"
	"tickets_events/internal/storage/memory"
)

func TestStore_PutGet(t *testing.T) {
	s := memory.New()
	ctx := context.Background()

	if _, err := s.Get(ctx, "sensor.x"); !errors.Is(err, domain.ErrNoSnapshot) {
		t.Fatalf("err = %v, want ErrNoSnapshot", err)
	}

	if err := s.Put(ctx, domain.Snapshot{Entity: "sensor.x", PushedAtUnix: 1}); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := s.Get(ctx, "sensor.x")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PushedAtUnix != 1 {
		t.Fatalf("snapshot: %+v", got)
	}

	// Put replaces wholesale.
	if err := s.Put(ctx, domain.Snapshot{Entity: "sensor.x", PushedAtUnix: 2}); err != nil {
		t.Fatalf("put 2: %v", err)
	}
	got, _ = s.Get(ctx, "sensor.x")
	if got.PushedAtUnix != 2 {
		t.Fatalf("snapshot not replaced: %+v", got)
	}
}

func TestStore_EntitiesSorted(t *testing.T) {
	s := memory.New()
	ctx := context.Background()
	for _, e := range []string{"sensor.c", "sensor.a", "sensor.b"} {
		if err := s.Put(ctx, domain.Snapshot{Entity: e}); err != nil {
			t.Fatalf("put %s: %v", e, err)
		}
	}
	got, err := s.Entities(ctx)
	if err != nil {
		t.Fatalf("entities: %v", err)
	}
	want := []string{"sensor.a", "sensor.b", "sensor.c"}
	if len(got) != 3 {
		t.Fatalf("entities: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entities = %v, want %v", got, want)
		}
	}
}
