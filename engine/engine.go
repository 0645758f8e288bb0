package engine

import (
	"github.com/krisalay/policy-cache/notify"
	"github.com/krisalay/policy-cache/types"
)

/*
CacheEngine holds the side effects of the cache.
It is responsible for what the outside world observes, NOT storage.

It decides:
- Who is told about an eviction
- How hits, misses, evictions and overwrites are counted

It does NOT:
- Store data
- Decide eviction order
*/
type CacheEngine struct {

	// Notifier is told the key of every evicted entry, synchronously.
	Notifier notify.Notifier

	// Metrics is how we keep track of what the cache is doing.
	Metrics types.Metrics
}

/*
NewCacheEngine creates a CacheEngine.
Nil collaborators are replaced by no-op implementations so the cache never checks for nil.
*/
func NewCacheEngine(n notify.Notifier, metrics types.Metrics) *CacheEngine {
	if n == nil {
		n = notify.Noop{}
	}
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	return &CacheEngine{Notifier: n, Metrics: metrics}
}

// OnEvict reports one eviction. It must be called exactly once per evicted key.
func (e *CacheEngine) OnEvict(key string) {
	e.Metrics.Eviction()
	e.Notifier.Evicted(key)
}

func (e *CacheEngine) OnHit()       { e.Metrics.Hit() }
func (e *CacheEngine) OnMiss()      { e.Metrics.Miss() }
func (e *CacheEngine) OnOverwrite() { e.Metrics.Overwrite() }
