package credential

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func newTestRedisStorage(t *testing.T) *RedisStorage {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStorage(client, "storefront:session:", zerolog.Nop())
}

func TestRedisStorage_RoundTrip(t *testing.T) {
	storage := newTestRedisStorage(t)

	storage.Set("token", "a.b.c")
	if v, ok := storage.Get("token"); !ok || v != "a.b.c" {
		t.Fatalf("got %q ok=%v, want a.b.c", v, ok)
	}

	storage.Remove("token")
	if _, ok := storage.Get("token"); ok {
		t.Fatalf("expected miss after remove")
	}
}

func TestRedisStorage_MissOnUnknownKey(t *testing.T) {
	storage := newTestRedisStorage(t)
	if _, ok := storage.Get("nope"); ok {
		t.Fatalf("expected miss for unknown key")
	}
}

func TestRedisStorage_BackendFailureReadsAsMiss(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	storage := NewRedisStorage(client, "storefront:session:", zerolog.Nop())

	storage.Set("token", "a.b.c")
	mr.Close()

	// Fail-closed: an unreachable backend can only log the user out.
	if _, ok := storage.Get("token"); ok {
		t.Fatalf("expected miss when redis is down")
	}
}

func TestStore_OverRedisStorage(t *testing.T) {
	store := NewStore(newTestRedisStorage(t))
	store.Save("aaa.bbb.ccc")

	loaded, ok := store.Load()
	if !ok || loaded != "aaa.bbb.ccc" {
		t.Fatalf("got %q ok=%v", loaded, ok)
	}
	store.Clear()
	if _, ok := store.Load(); ok {
		t.Fatalf("expected no token after clear")
	}
}
