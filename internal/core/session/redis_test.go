package session

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis implements the commands RedisTracker issues. Any other command
// panics through the nil embedded interface.
type fakeRedis struct {
	redis.Cmdable

	mu      sync.Mutex
	values  map[string]int64
	ttls    map[string]time.Duration
	execs   int
	failGet error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{values: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.execs++
	pipe := &fakePipe{store: f}
	if err := fn(pipe); err != nil {
		return nil, err
	}
	return pipe.cmds, nil
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet != nil {
		return redis.NewStringResult("", f.failGet)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(strconv.FormatInt(v, 10), nil)
}

// fakePipe applies commands immediately; the caller holds the store lock.
type fakePipe struct {
	redis.Pipeliner

	store *fakeRedis
	cmds  []redis.Cmder
}

func (p *fakePipe) Incr(_ context.Context, key string) *redis.IntCmd {
	p.store.values[key]++
	cmd := redis.NewIntResult(p.store.values[key], nil)
	p.cmds = append(p.cmds, cmd)
	return cmd
}

func (p *fakePipe) Expire(_ context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	p.store.ttls[key] = ttl
	cmd := redis.NewBoolResult(true, nil)
	p.cmds = append(p.cmds, cmd)
	return cmd
}

func TestRedisTrackerBegin(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	tr := NewRedisTracker(fake)

	a, err := tr.Begin(ctx, "alice")
	require.NoError(t, err)
	b, err := tr.Begin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, Token(1), a)
	assert.Equal(t, Token(2), b)

	// counter and expiry go out in one transaction per request
	assert.Equal(t, 2, fake.execs)
	assert.Equal(t, int64(2), fake.values["epmviz:session:alice"])
	assert.Equal(t, redisTokenTTL, fake.ttls["epmviz:session:alice"])

	assert.ErrorIs(t, Ensure(ctx, tr, "alice", a), ErrStale)
	assert.NoError(t, Ensure(ctx, tr, "alice", b))
}

func TestRedisTrackerCurrent(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	tr := NewRedisTracker(fake)

	cur, err := tr.Current(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, Token(0), cur)

	_, err = tr.Begin(ctx, "bob")
	require.NoError(t, err)
	cur, err = tr.Current(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, Token(1), cur)

	fake.failGet = errors.New("connection reset")
	_, err = tr.Current(ctx, "bob")
	assert.ErrorContains(t, err, "session: redis: current")
}
