package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"
)

func TestSetGetRoundTrip(t *testing.T) {
	addr := os.Getenv("SQUOTE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set SQUOTE_TEST_REDIS_ADDR to run redis integration test")
	}

	ctx := context.Background()
	s := New(addr, os.Getenv("SQUOTE_TEST_REDIS_PASSWORD"), 0, fmt.Sprintf("squote-it-%d:", time.Now().UnixNano()))
	if err := s.Ping(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	t.Cleanup(func() {
		_ = deleteKey(ctx, s, "DefaultItems")
		_ = s.Close()
	})

	if _, ok, err := s.Get(ctx, "DefaultItems"); err != nil || ok {
		t.Fatalf("expected missing key, ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "DefaultItems", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := s.Get(ctx, "DefaultItems")
	if err != nil || !ok || string(got) != "[]" {
		t.Fatalf("unexpected get result %q ok=%v err=%v", got, ok, err)
	}
}

func deleteKey(ctx context.Context, s *Store, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}
