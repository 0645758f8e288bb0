// This file implements LRU eviction.

package eviction

// lru keeps keys in a recency list. The head is the LEAST recently used key,
// the tail is the MOST recently used key.
type lru struct {
	order *keyList
}

func newLRU() *lru {
	return &lru{order: newKeyList()}
}

// OnGet marks a present key as most recently used.
// A key that is not tracked is ignored; a miss must not change any order.
func (l *lru) OnGet(k string) {
	if l.order.contains(k) {
		l.order.pushBack(k)
	}
}

// OnPut appends a new key at the most recently used position.
func (l *lru) OnPut(k string) {
	l.order.pushBack(k)
}

// OnUpdate treats an overwrite as a use: the key moves to the most recently used position.
func (l *lru) OnUpdate(k string) {
	if l.order.contains(k) {
		l.order.pushBack(k)
	}
}

// Evict removes the LEAST recently used key. That key is always at the head of the list.
func (l *lru) Evict() string {
	k, _ := l.order.popFront()
	return k
}

func (l *lru) Len() int { return l.order.len() }
