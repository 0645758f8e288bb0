package api

/*
Cache defines the PUBLIC API of a bounded in-memory cache.
This is a contract that guarantees certain behaviors, without exposing internals.
The eviction policy, the eviction notifier and the metrics are hidden behind this interface.

There is deliberately no Delete: the only way an entry leaves the cache is eviction,
and eviction only happens as a side effect of Put.
*/
type Cache interface {

	/*
		Put stores a key-value pair in the cache.

		BEHAVIOR:
		---------
		- An empty key or a nil value makes Put a no-op (nothing stored, nothing evicted)
		- A new key may evict exactly one other key if the cache is full
		- An existing key only has its value replaced; this never evicts
		- Size() never exceeds Capacity() once Put returns
	*/
	Put(key string, value any)

	/*
		Get retrieves the value associated with the given key.

		BEHAVIOR:
		-------------------
		1. If the key is cached:
		   - Return the last value written by Put
		   - LRU and LFU record the access

		2. If the key is empty or not cached:
		   - Return nil
		   - No eviction state is changed
	*/
	Get(key string) any

	// Size returns the number of distinct keys currently cached.
	Size() int

	// Capacity returns the fixed maximum number of keys (0 means unbounded).
	Capacity() int
}
