package cache

import (
	"errors"
	"fmt"
	"io"

	"github.com/krisalay/policy-cache/api"
	"github.com/krisalay/policy-cache/engine"
	evict "github.com/krisalay/policy-cache/eviction"
	"github.com/krisalay/policy-cache/notify"
	"github.com/krisalay/policy-cache/store"
	"github.com/krisalay/policy-cache/types"
)

// MaxItems is the default capacity shared by every bounded policy.
const MaxItems = 4

// ErrInvalidCapacity is returned by New when a bounded policy gets a capacity below 1.
var ErrInvalidCapacity = errors.New("capacity must be at least 1")

var _ api.Cache = (*Cache)(nil)

/*
Cache is the main cache implementation.
This struct is the orchestrator that connects:
- storage (a bounded key → entry map)
- eviction (which key goes when the cache is full)
- the engine (eviction notices and metrics)

A Cache is NOT safe for concurrent use. Wrap it in a Synchronized when
more than one goroutine needs it.
*/
type Cache struct {
	policy   evict.PolicyType
	capacity int

	store    *store.Bounded
	eviction evict.Policy
	engine   *engine.CacheEngine

	// set by options, handed to the engine
	notifier notify.Notifier
	metrics  types.Metrics
}

/*
New creates a cache with the given eviction policy.

Capacity defaults to MaxItems. Basic ignores capacity and never evicts.
*/
func New(policy evict.PolicyType, opts ...Option) (*Cache, error) {
	policy, err := evict.ParsePolicyType(string(policy))
	if err != nil {
		return nil, err
	}

	c := &Cache{
		policy:   policy,
		capacity: MaxItems,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !policy.Bounded() {
		c.capacity = 0
	} else if c.capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, c.capacity)
	}

	c.store = store.NewBounded(store.NewMapStore(), c.capacity)
	c.eviction = evict.NewEvictionPolicy(policy)
	c.engine = engine.NewCacheEngine(c.notifier, c.metrics)
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(policy evict.PolicyType, opts ...Option) *Cache {
	c, err := New(policy, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

/*
Put stores a value in the cache.

An existing key only gets its value replaced (plus an OnUpdate for the policy).
A new key triggers at most one eviction: before insertion when the store is full,
or, for policies that evict after insertion, once the new key pushed the size over capacity.
*/
func (c *Cache) Put(key string, value any) {
	if key == "" || value == nil {
		return
	}

	if ent, ok := c.store.Get(key); ok {
		ent.Value = value
		c.eviction.OnUpdate(key)
		c.engine.OnOverwrite()
		return
	}

	afterInsert := evict.EvictsAfterInsert(c.eviction)
	if !afterInsert && c.store.Full() {
		c.evictOne()
	}

	c.store.Put(key, &types.CacheEntry{Key: key, Value: value})
	c.eviction.OnPut(key)

	if afterInsert && c.store.Overflowing() {
		c.evictOne()
	}

	c.checkInvariants()
}

/*
Get retrieves a value from the cache. It returns nil on a miss.
*/
func (c *Cache) Get(key string) any {
	if key == "" {
		c.engine.OnMiss()
		return nil
	}

	ent, ok := c.store.Get(key)
	if !ok {
		c.engine.OnMiss()
		return nil
	}

	c.eviction.OnGet(key)
	c.engine.OnHit()
	return ent.Value
}

// Size returns the number of cached keys.
func (c *Cache) Size() int { return c.store.Size() }

// Capacity returns MAX_ITEMS, or 0 for the unbounded Basic policy.
func (c *Cache) Capacity() int { return c.capacity }

// Policy returns the eviction policy this cache was built with.
func (c *Cache) Policy() evict.PolicyType { return c.policy }

// Keys returns the cached keys in sorted order.
func (c *Cache) Keys() []string { return c.store.Keys() }

/*
Print writes the cache content in sorted key order:

	Current cache:
	A: Hello
	B: World

Print does not count as an access.
*/
func (c *Cache) Print(w io.Writer) {
	fmt.Fprintln(w, "Current cache:")
	for _, k := range c.store.Keys() {
		ent, _ := c.store.Get(k)
		fmt.Fprintf(w, "%s: %v\n", k, ent.Value)
	}
}

// evictOne removes the policy's victim from storage and reports it.
func (c *Cache) evictOne() {
	k := c.eviction.Evict()
	if k == "" {
		panic(fmt.Sprintf("%s cache: policy has no victim while store holds %d keys", c.policy, c.store.Size()))
	}
	if _, ok := c.store.Get(k); !ok {
		panic(fmt.Sprintf("%s cache: policy evicted untracked key %q", c.policy, k))
	}
	c.store.Delete(k)
	c.engine.OnEvict(k)
}

func (c *Cache) checkInvariants() {
	if c.store.Size() != c.eviction.Len() {
		panic(fmt.Sprintf("%s cache: store holds %d keys, policy tracks %d", c.policy, c.store.Size(), c.eviction.Len()))
	}
	if c.store.Overflowing() {
		panic(fmt.Sprintf("%s cache: %d keys exceed capacity %d", c.policy, c.store.Size(), c.capacity))
	}
}
