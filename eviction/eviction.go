package eviction

import (
	"errors"
	"fmt"
	"strings"
)

/*
This file defines how the cache decides what to remove when it runs out of space.
*/

/*
Policy is the interface that all eviction strategies must follow.

This is a set of rules that any eviction algorithm (FIFO, LIFO, LRU, LFU) must obey
so the cache can interact with it in a uniform way.

The cache does NOT care how eviction works internally.
It only calls these methods, and it is the cache that removes the victim from storage.
*/
type Policy interface {

	// OnGet is called whenever a present key is read from the cache.
	//
	// - LRU moves the key to the most-recent position
	// - LFU increments the key's frequency
	// - FIFO and LIFO ignore reads
	OnGet(string)

	// OnPut is called when a NEW key is added to the cache.
	OnPut(string)

	// OnUpdate is called when the value of an existing key is replaced.
	// Only LRU and LFU treat an overwrite as a use.
	OnUpdate(string)

	// Evict is called when the cache needs space.
	//
	// The policy picks the victim, forgets it, and returns it.
	// An empty string means there is nothing to evict.
	Evict() string

	// Len returns how many keys the policy is tracking.
	// The cache uses it to detect store/policy desynchronization.
	Len() int
}

/*
PostInsertEvictor is implemented by policies that evict AFTER the new key has been counted
(size > capacity), instead of before inserting it (size >= capacity).

FIFO works this way.
*/
type PostInsertEvictor interface {
	EvictsAfterInsert() bool
}

// EvictsAfterInsert reports whether p evicts after insertion.
func EvictsAfterInsert(p Policy) bool {
	pi, ok := p.(PostInsertEvictor)
	return ok && pi.EvictsAfterInsert()
}

// PolicyType is a simple identifier for supported eviction strategies.
type PolicyType string

const (
	// Basic never evicts. It has no capacity bound.
	Basic PolicyType = "BASIC"

	// FIFO (First In First Out): Evicts the oldest inserted key, regardless of access.
	FIFO PolicyType = "FIFO"

	// LIFO (Last In First Out): Evicts the most recently inserted key.
	LIFO PolicyType = "LIFO"

	// LRU (Least Recently Used): Evicts the key that has NOT been accessed for the longest time.
	// Both put and get count as an access.
	LRU PolicyType = "LRU"

	// LFU (Least Frequently Used): Evicts the key that has been accessed the fewest times.
	// Ties are broken by LRU inside the lowest frequency.
	LFU PolicyType = "LFU"
)

// ErrUnknownPolicy is returned by ParsePolicyType for names it does not recognize.
var ErrUnknownPolicy = errors.New("unknown eviction policy")

// PolicyTypes lists every supported policy, bounded ones first.
func PolicyTypes() []PolicyType {
	return []PolicyType{FIFO, LIFO, LRU, LFU, Basic}
}

// Bounded reports whether the policy enforces a capacity.
func (t PolicyType) Bounded() bool { return t != Basic }

// ParsePolicyType converts a case-insensitive name ("lru", "Lfu", ...) to a PolicyType.
func ParsePolicyType(s string) (PolicyType, error) {
	t := PolicyType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range PolicyTypes() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// NewEvictionPolicy is a small factory function.
// Given a PolicyType, it creates the correct eviction policy.
func NewEvictionPolicy(t PolicyType) Policy {
	switch t {
	case Basic:
		return newBasic()
	case FIFO:
		return newFIFO()
	case LIFO:
		return newLIFO()
	case LRU:
		return newLRU()
	case LFU:
		return newLFU()
	default:
		panic("unknown eviction policy")
	}
}
