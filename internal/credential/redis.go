package credential

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const redisOpTimeout = 2 * time.Second

// RedisStorage is a Storage backed by Redis, the binding for shared-kiosk
// deployments where several terminals present the same session. Backend
// failures degrade to misses so an unreachable Redis can only log the user
// out, never let a stale token through.
type RedisStorage struct {
	client *redis.Client
	prefix string
	log    zerolog.Logger
}

// NewRedisStorage wraps an already-connected client. prefix namespaces the
// credential keys, e.g. "storefront:session:".
func NewRedisStorage(client *redis.Client, prefix string, log zerolog.Logger) *RedisStorage {
	return &RedisStorage{client: client, prefix: prefix, log: log}
}

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})

	pingCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (r *RedisStorage) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	v, err := r.client.Get(ctx, r.prefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("credential redis get failed")
		return "", false
	}
	return v, true
}

func (r *RedisStorage) Set(key, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("credential redis set failed")
	}
}

func (r *RedisStorage) Remove(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		r.log.Warn().Err(err).Str("key", key).Msg("credential redis del failed")
	}
}
