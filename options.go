package cache

import (
	"github.com/krisalay/policy-cache/notify"
	"github.com/krisalay/policy-cache/types"
)

// Option configures a Cache before it is used.
type Option func(*Cache)

// WithCapacity sets MAX_ITEMS. It is fixed for the lifetime of the cache.
func WithCapacity(n int) Option {
	return func(c *Cache) {
		c.capacity = n
	}
}

// WithNotifier sets who is told about evictions.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Cache) {
		c.notifier = n
	}
}

// WithMetrics sets where hit/miss/eviction/overwrite events are counted.
func WithMetrics(m types.Metrics) Option {
	return func(c *Cache) {
		c.metrics = m
	}
}
