// Package ratelimit throttles login attempts per key.
package ratelimit

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type Limiter interface {
	// Allow records one attempt for key and reports whether it is within
	// the limit for the current window.
	Allow(ctx context.Context, key string) (bool, error)

	// Reset forgets all attempts for key.
	Reset(ctx context.Context, key string) error
}

// Noop allows everything. Used when no Redis is configured.
type Noop struct{}

func (Noop) Allow(context.Context, string) (bool, error) { return true, nil }
func (Noop) Reset(context.Context, string) error        { return nil }

// RedisLimiter is a fixed-window counter: the first attempt in a window
// creates the key with a TTL of one window.
type RedisLimiter struct {
	client *redis.Client
	prefix string
	max    int
	window time.Duration
}

func NewRedisLimiter(client *redis.Client, prefix string, max int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		max:    max,
		window: window,
	}
}

// NewRedisClient parses a redis:// URL.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func (l *RedisLimiter) key(k string) string {
	return l.prefix + k
}

// incrWindow increments the counter and starts the window on first use,
// atomically, so a key can never be left without a TTL.
var incrWindow = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if n == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return n
`)

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	n, err := incrWindow.Run(ctx, l.client, []string{l.key(key)}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, err
	}
	return n <= int64(l.max), nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.key(key)).Err()
}

var (
	_ Limiter = Noop{}
	_ Limiter = (*RedisLimiter)(nil)
)
