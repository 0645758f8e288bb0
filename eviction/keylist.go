// This file implements the ordered key set shared by LRU and the LFU frequency buckets.

package eviction

// keyNode represents ONE key inside a keyList.
type keyNode struct {
	key string

	// prev points to the node inserted (or touched) just before this one
	prev *keyNode

	// next points to the node inserted (or touched) just after this one
	next *keyNode
}

// keyList is an ordered set of keys: a doubly-linked list for order plus a map for O(1) membership.
// The head is the OLDEST key, the tail is the NEWEST key.
type keyList struct {
	nodes map[string]*keyNode
	head  *keyNode
	tail  *keyNode
}

func newKeyList() *keyList {
	return &keyList{nodes: make(map[string]*keyNode)}
}

func (l *keyList) len() int { return len(l.nodes) }

func (l *keyList) contains(k string) bool {
	_, ok := l.nodes[k]
	return ok
}

// pushBack places k at the tail. A key that is already present is moved, not duplicated.
func (l *keyList) pushBack(k string) {
	if n, ok := l.nodes[k]; ok {
		if n == l.tail {
			return
		}
		l.unlink(n)
		l.linkBack(n)
		return
	}
	n := &keyNode{key: k}
	l.nodes[k] = n
	l.linkBack(n)
}

// remove drops k from the list. It reports whether k was present.
func (l *keyList) remove(k string) bool {
	n, ok := l.nodes[k]
	if !ok {
		return false
	}
	l.unlink(n)
	delete(l.nodes, k)
	return true
}

// popFront removes and returns the oldest key.
func (l *keyList) popFront() (string, bool) {
	if l.head == nil {
		return "", false
	}
	k := l.head.key
	l.remove(k)
	return k, true
}

// keys returns the keys from oldest to newest.
func (l *keyList) keys() []string {
	out := make([]string, 0, len(l.nodes))
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.key)
	}
	return out
}

func (l *keyList) linkBack(n *keyNode) {
	n.prev = l.tail
	n.next = nil
	if l.tail != nil {
		l.tail.next = n
	}
	l.tail = n

	// If the list was empty, head and tail are the same
	if l.head == nil {
		l.head = n
	}
}

// unlink detaches a node and fixes head/tail. Map bookkeeping is left to the caller.
func (l *keyList) unlink(n *keyNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
