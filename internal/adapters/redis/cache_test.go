package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	redisad "tickets_events/internal/adapters/redis"
	"tickets_events/internal/domain"
)

func newTestCache(t *testing.T) (*redisad.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	return c, mr
}

func TestCache_SetGetDel(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	snap := domain.Snapshot{Entity: "sensor.x", PushedAtUnix: 42}
	if err := c.Set(ctx, "snapshot:sensor.x", snap, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got domain.Snapshot
	ok, err := c.Get(ctx, "snapshot:sensor.x", &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Entity != "sensor.x" || got.PushedAtUnix != 42 {
		t.Fatalf("round trip: %+v", got)
	}

	if err := c.Del(ctx, "snapshot:sensor.x"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, err = c.Get(ctx, "snapshot:sensor.x", &got)
	if err != nil || ok {
		t.Fatalf("after del: ok=%v err=%v", ok, err)
	}
}

func TestCache_MissIsNotError(t *testing.T) {
	c, _ := newTestCache(t)

	var got domain.Snapshot
	ok, err := c.Get(context.Background(), "snapshot:absent", &got)
	if err != nil {
		t.Fatalf("miss returned error: %v", err)
	}
	if ok {
		t.Fatal("miss reported as hit")
	}
}

func TestCache_TTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "k", domain.Snapshot{Entity: "sensor.x"}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(61 * time.Second)

	var got domain.Snapshot
	ok, err := c.Get(ctx, "k", &got)
	if err != nil || ok {
		t.Fatalf("expired key: ok=%v err=%v", ok, err)
	}
}
