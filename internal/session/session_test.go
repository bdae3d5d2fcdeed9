package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testStore(t *testing.T, name string) Store {
	t.Helper()
	switch name {
	case "memory":
		return NewMemory()
	case "redis":
		mr, err := miniredis.Run()
		if err != nil {
			t.Fatalf("miniredis: %v", err)
		}
		t.Cleanup(mr.Close)
		return NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	}
	panic("unknown store " + name)
}

func TestStoreLifecycle(t *testing.T) {
	for _, backend := range []string{"memory", "redis"} {
		t.Run(backend, func(t *testing.T) {
			st := testStore(t, backend)
			ctx := context.Background()

			s, err := st.Create(ctx, "user-1", time.Hour)
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if s.ID == "" {
				t.Fatal("empty session id")
			}

			got, err := st.Get(ctx, s.ID)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got.UserID != "user-1" {
				t.Errorf("user = %q", got.UserID)
			}

			if err := st.Delete(ctx, s.ID); err != nil {
				t.Fatalf("delete: %v", err)
			}
			if _, err := st.Get(ctx, s.ID); !errors.Is(err, ErrNotFound) {
				t.Errorf("after delete: %v, want ErrNotFound", err)
			}

			// deleting again is fine
			if err := st.Delete(ctx, s.ID); err != nil {
				t.Errorf("second delete: %v", err)
			}
		})
	}
}

func TestStoreUnknownID(t *testing.T) {
	for _, backend := range []string{"memory", "redis"} {
		t.Run(backend, func(t *testing.T) {
			st := testStore(t, backend)
			if _, err := st.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
				t.Errorf("got %v, want ErrNotFound", err)
			}
		})
	}
}

func TestMemoryExpiry(t *testing.T) {
	st := NewMemory()
	ctx := context.Background()

	s, err := st.Create(ctx, "user-1", time.Millisecond)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, err := st.Get(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expired session still valid: %v", err)
	}
}

func TestRedisExpiry(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	defer mr.Close()
	st := NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	s, err := st.Create(ctx, "user-1", time.Minute)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	mr.FastForward(2 * time.Minute)
	if _, err := st.Get(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expired session still valid: %v", err)
	}
}
