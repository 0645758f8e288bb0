package cache

import (
	"context"
	"sync"

	"github.com/krisalay/policy-cache/api"
	"github.com/krisalay/policy-cache/types"
	"golang.org/x/sync/singleflight"
)

var _ api.Cache = (*Synchronized)(nil)

/*
Synchronized guards one Cache with a single mutex so several goroutines can share it.
The eviction order is exactly that of the wrapped Cache; calls are simply serialized.
*/
type Synchronized struct {
	mu sync.Mutex
	c  *Cache

	// singleflight prevents multiple goroutines from loading the same key simultaneously.
	sf singleflight.Group
}

func NewSynchronized(c *Cache) *Synchronized {
	return &Synchronized{c: c}
}

func (s *Synchronized) Put(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Put(key, value)
}

func (s *Synchronized) Get(key string) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Get(key)
}

func (s *Synchronized) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Size()
}

func (s *Synchronized) Capacity() int { return s.c.Capacity() }

// Do runs fn with exclusive access to the wrapped cache.
func (s *Synchronized) Do(fn func(c *Cache)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.c)
}

/*
GetOrLoad returns the cached value for key, loading it on a miss.

  - Hit: the value is returned and the access is recorded like a Get
  - Miss: loader.Load runs outside the lock; concurrent misses for the same key share one load
  - A non-nil loaded value is Put into the cache (which may evict another key)
  - A nil loaded value or an error leaves the cache untouched
*/
func (s *Synchronized) GetOrLoad(ctx context.Context, key string, loader types.Loader) (any, error) {
	if key == "" {
		return nil, nil
	}
	if v := s.Get(key); v != nil {
		return v, nil
	}

	val, err, _ := s.sf.Do(key, func() (any, error) {
		return loader.Load(ctx, key)
	})
	if err != nil || val == nil {
		return nil, err
	}

	s.Put(key, val)
	return val, nil
}
