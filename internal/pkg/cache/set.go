package cache

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

func NewSet[T any](prefix string, expiration time.Duration) *Set[T] {
	return &Set[T]{
		prefix:     prefix + ":",
		expiration: expiration,
		c:          cache.New(expiration, expiration*2),
	}
}

// Set is an in-process keyed cache for values that are pure functions of their key.
type Set[T any] struct {
	// m is a mutex for MutexGetSet for concurrent prevention
	m sync.Mutex

	prefix     string
	expiration time.Duration

	c *cache.Cache
}

func (c *Set[T]) key(key string) string {
	return c.prefix + key
}

func (c *Set[T]) Get(key string) (T, bool) {
	v, ok := c.c.Get(c.key(key))
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

func (c *Set[T]) Set(key string, value T) {
	if l := log.Trace(); l.Enabled() {
		l.Str("key", c.key(key)).Msg("setting value to cache")
	}
	c.c.Set(c.key(key), value, c.expiration)
}

// MutexGetSet gets the value for key, or if the key does not exist, executes valueFunc
// serially to compute it, stores it and returns it.
// The second return value reports whether the value was calculated (true) or came from the cache (false).
func (c *Set[T]) MutexGetSet(key string, valueFunc func() (T, error)) (T, bool, error) {
	if v, ok := c.Get(key); ok {
		return v, false, nil
	}

	c.m.Lock()
	defer c.m.Unlock()

	if v, ok := c.Get(key); ok {
		return v, false, nil
	}

	value, err := valueFunc()
	if err != nil {
		log.Error().Err(err).Str("key", c.key(key)).Msg("failed to get value from valueFunc() in MutexGetSet")
		var zero T
		return zero, false, err
	}

	c.Set(key, value)
	return value, true, nil
}

func (c *Set[T]) Count() int {
	return c.c.ItemCount()
}

func (c *Set[T]) Flush() {
	c.c.Flush()
}
