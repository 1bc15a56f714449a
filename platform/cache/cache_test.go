package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type cachedRecord struct {
	PlaceID string  `json:"placeId"`
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
}

func newTestCache(t *testing.T) *Cache {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewWithClient(client)
}

func TestCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	want := cachedRecord{PlaceID: "place-1", Name: "Joe's Pizza", Rating: 4.5}
	if err := c.Set(ctx, "details:place-1", want, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got cachedRecord
	if err := c.Get(ctx, "details:place-1", &got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestCacheMiss(t *testing.T) {
	c := newTestCache(t)

	var got cachedRecord
	err := c.Get(context.Background(), "details:absent", &got)
	if !errors.Is(err, ErrMiss) {
		t.Fatalf("expected ErrMiss, got %v", err)
	}
}

func TestNilCacheIsDisabled(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	if err := c.Set(ctx, "k", cachedRecord{}, time.Minute); err != nil {
		t.Fatalf("nil cache Set should be a no-op, got %v", err)
	}

	var got cachedRecord
	if err := c.Get(ctx, "k", &got); !errors.Is(err, ErrMiss) {
		t.Fatalf("nil cache Get should miss, got %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("nil cache Close should be a no-op, got %v", err)
	}
}
