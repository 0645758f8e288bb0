package store

/*
Bounded pairs a Store with a fixed capacity.

The capacity is set once at construction and never changes.
Bounded does NOT evict anything by itself. It only answers the two questions
an eviction policy needs:
- Full:        size >= capacity (checked before a new key is inserted)
- Overflowing: size >  capacity (checked after a new key was inserted)

A capacity of 0 means "unbounded": Full and Overflowing are always false.
*/
type Bounded struct {
	Store
	capacity int
}

func NewBounded(s Store, capacity int) *Bounded {
	if capacity < 0 {
		capacity = 0
	}
	return &Bounded{Store: s, capacity: capacity}
}

// Capacity returns the maximum number of keys, or 0 when unbounded.
func (b *Bounded) Capacity() int { return b.capacity }

// Full reports whether inserting one more new key would exceed capacity.
func (b *Bounded) Full() bool {
	return b.capacity > 0 && b.Size() >= b.capacity
}

// Overflowing reports whether the store currently holds more keys than allowed.
func (b *Bounded) Overflowing() bool {
	return b.capacity > 0 && b.Size() > b.capacity
}
