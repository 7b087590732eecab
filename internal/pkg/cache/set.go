package cache

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrNotFound = errors.New("cache: key not found")

func NewSet[T any](prefix string, defaultExpiration time.Duration) *Set[T] {
	return &Set[T]{
		prefix: prefix + ":",
		c:      cache.New(defaultExpiration, time.Minute*10),
	}
}

// Set is an in-process keyed cache of T values.
type Set[T any] struct {
	// m is a mutex for MutexGetSet for concurrent prevention
	m sync.Mutex

	prefix string

	c *cache.Cache
}

func (c *Set[T]) key(key string) string {
	return c.prefix + key
}

func (c *Set[T]) Get(key string) (T, error) {
	var zero T
	v, ok := c.c.Get(c.key(key))
	if !ok {
		return zero, ErrNotFound
	}
	t, ok := v.(T)
	if !ok {
		return zero, ErrNotFound
	}
	return t, nil
}

// Set stores value under key. An expire of 0 uses the set's default expiration.
func (c *Set[T]) Set(key string, value T, expire time.Duration) {
	if l := log.Trace(); l.Enabled() {
		l.Str("key", c.key(key)).Msg("setting value to cache")
	}
	if expire == 0 {
		expire = cache.DefaultExpiration
	}
	c.c.Set(c.key(key), value, expire)
}

// MutexGetSet gets the value under key, or if the key does not exist, computes
// it with valueFunc once across concurrent callers and caches it.
// The second return value reports whether the value was calculated.
func (c *Set[T]) MutexGetSet(key string, valueFunc func() (T, error), expire time.Duration) (T, bool, error) {
	if v, err := c.Get(key); err == nil {
		return v, false, nil
	}
	// onwards, cache key does not exist

	c.m.Lock()
	defer c.m.Unlock()
	if v, err := c.Get(key); err == nil {
		return v, false, nil
	}

	value, err := valueFunc()
	if err != nil {
		log.Error().Err(err).Str("key", c.key(key)).Msg("failed to get value from valueFunc() in MutexGetSet")
		var zero T
		return zero, true, err
	}

	c.Set(key, value, expire)
	return value, true, nil
}

func (c *Set[T]) Delete(key string) {
	c.c.Delete(c.key(key))
}

func (c *Set[T]) Len() int {
	return c.c.ItemCount()
}

func (c *Set[T]) Clear() {
	c.c.Flush()
}
