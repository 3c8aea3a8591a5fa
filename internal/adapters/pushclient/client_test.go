package pushclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"tickets_events/internal/adapters/pushclient"
)

func TestPushSnapshot_RetriesThenSuccess(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1, 2:
			// two transient failures
			w.WriteHeader(500)
		default:
			if r.Method != http.MethodPut {
				t.Errorf("method = %s", r.Method)
			}
			if r.URL.Path != "/v1/snapshots/sensor.x" {
				t.Errorf("path = %s", r.URL.Path)
			}
			var body map[string]any
			b, _ := io.ReadAll(r.Body)
			if err := json.Unmarshal(b, &body); err != nil {
				t.Errorf("body not JSON: %v", err)
			}
			w.WriteHeader(200)
		}
	}))
	defer ts.Close()

	cl := pushclient.New(ts.URL, 100) // high RPS for tests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := cl.PushSnapshot(ctx, "sensor.x", map[string]any{"events": []any{}}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if atomic.LoadInt32(&hits) < 3 {
		t.Fatalf("expected at least 3 calls due to retries, got %d", hits)
	}
}

func TestPushSnapshot_RetryAfterHonored(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(200)
	}))
	defer ts.Close()

	cl := pushclient.New(ts.URL, 100)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := cl.PushSnapshot(ctx, "sensor.x", map[string]any{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if atomic.LoadInt32(&hits) != 2 {
		t.Fatalf("expected retry after 429, got %d hits", hits)
	}
}

func TestPushSnapshot_404(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	defer ts.Close()

	cl := pushclient.New(ts.URL, 100)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if err := cl.PushSnapshot(ctx, "sensor.x", map[string]any{}); err != pushclient.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPushSnapshot_BadRequestIsNotRetried(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer ts.Close()

	cl := pushclient.New(ts.URL, 100)
	if err := cl.PushSnapshot(context.Background(), "sensor.x", map[string]any{}); err != pushclient.ErrBadRequest {
		t.Fatalf("err = %v, want ErrBadRequest", err)
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("bad request retried: %d hits", hits)
	}
}
