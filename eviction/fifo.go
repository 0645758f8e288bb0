// This file implements FIFO eviction.

package eviction

type fifo struct {
	// queue keeps keys in the order they were inserted.
	// The front of the queue (index 0) is the oldest key.
	queue []string

	// set keeps track of which keys are currently in the queue.
	set map[string]struct{}
}

func newFIFO() *fifo {
	return &fifo{
		queue: make([]string, 0),
		set:   make(map[string]struct{}),
	}
}

// OnGet is called when a key is read from the cache. FIFO ignores reads completely.
func (f *fifo) OnGet(string) {}

// OnUpdate is a no-op: an overwrite keeps the key's original queue position.
func (f *fifo) OnUpdate(string) {}

// OnPut is called when a key is added to the cache.
// If the key is already being tracked: Do nothing. FIFO only cares about the first insertion
// If the key is new: Add it to the end of the queue, and record it in the set
func (f *fifo) OnPut(k string) {
	if _, ok := f.set[k]; ok {
		return
	}
	f.queue = append(f.queue, k)
	f.set[k] = struct{}{}
}

// Evict returns the oldest key.
func (f *fifo) Evict() string {
	if len(f.queue) == 0 {
		return ""
	}
	k := f.queue[0]
	f.queue[0] = ""
	f.queue = f.queue[1:]
	delete(f.set, k)
	return k
}

func (f *fifo) Len() int { return len(f.set) }

// EvictsAfterInsert: FIFO counts the incoming key first, then trims the queue head.
func (f *fifo) EvictsAfterInsert() bool { return true }
