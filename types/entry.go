package types

// CacheEntry is one key/value pair held by a cache.
// The empty key and a nil value both mean "absent" and are never stored.
type CacheEntry struct {
	Key   string
	Value any
}
