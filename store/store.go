package store

import (
	"sort"

	"github.com/krisalay/policy-cache/types"
)

/*
This file defines how data is actually stored inside a cache.
The store only maps keys to entries. It knows nothing about eviction order;
that bookkeeping lives in the eviction policy that sits next to it.
*/

// Store is the interface used by a cache to store and retrieve entries.
type Store interface {

	// Get retrieves an entry by key.
	Get(string) (*types.CacheEntry, bool)

	// Put inserts or replaces an entry.
	Put(string, *types.CacheEntry)

	// Delete removes an entry.
	Delete(string)

	// Size returns how many entries are stored.
	Size() int

	// Keys returns the stored keys in sorted order.
	Keys() []string
}

// mapStore is a plain map based Store. The cache is used by a single caller,
// so no locking happens here.
type mapStore struct {
	data map[string]*types.CacheEntry
}

func NewMapStore() Store {
	return &mapStore{data: make(map[string]*types.CacheEntry)}
}

func (s *mapStore) Get(key string) (*types.CacheEntry, bool) {
	ent, ok := s.data[key]
	return ent, ok
}

func (s *mapStore) Put(key string, ent *types.CacheEntry) {
	s.data[key] = ent
}

func (s *mapStore) Delete(key string) {
	delete(s.data, key)
}

func (s *mapStore) Size() int {
	return len(s.data)
}

func (s *mapStore) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
