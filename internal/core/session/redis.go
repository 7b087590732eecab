package session

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "epmviz:session:"

	// tokens of idle viewers are forgotten after this long
	redisTokenTTL = 24 * time.Hour
)

// RedisTracker shares tokens between replicas, so a viewer whose requests
// land on different instances still only sees its newest result.
type RedisTracker struct {
	client redis.Cmdable
}

func NewRedisTracker(client redis.Cmdable) *RedisTracker {
	return &RedisTracker{client: client}
}

func (r *RedisTracker) key(viewer string) string {
	return redisKeyPrefix + viewer
}

func (r *RedisTracker) Begin(ctx context.Context, viewer string) (Token, error) {
	key := r.key(viewer)

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, redisTokenTTL)
		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "session: redis: begin")
	}
	return Token(incr.Val()), nil
}

func (r *RedisTracker) Current(ctx context.Context, viewer string) (Token, error) {
	v, err := r.client.Get(ctx, r.key(viewer)).Uint64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "session: redis: current")
	}
	return Token(v), nil
}
