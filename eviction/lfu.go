// This file implements LFU eviction with an LRU tie-break.

package eviction

type lfu struct {
	// freq is how many times each key was used (put or get). New keys start at 1.
	freq map[string]int

	// buckets groups keys by frequency. Inside a bucket the head is the key
	// whose last use is the oldest, so it is the first to go.
	buckets map[int]*keyList

	// minFreq keeps track of the smallest frequency currently present in the cache.
	// This avoids scanning the buckets on eviction.
	minFreq int
}

func newLFU() *lfu {
	return &lfu{
		freq:    make(map[string]int),
		buckets: make(map[int]*keyList),
	}
}

// OnGet counts a read of a present key. Unknown keys are ignored.
func (l *lfu) OnGet(k string) {
	if _, ok := l.freq[k]; ok {
		l.touch(k)
	}
}

// OnUpdate counts an overwrite as a use.
func (l *lfu) OnUpdate(k string) {
	if _, ok := l.freq[k]; ok {
		l.touch(k)
	}
}

// OnPut starts tracking a new key at frequency 1.
func (l *lfu) OnPut(k string) {
	if _, ok := l.freq[k]; ok {
		l.touch(k)
		return
	}
	l.freq[k] = 1
	l.bucket(1).pushBack(k)

	// A new key with freq=1 exists, so minFreq must be 1
	l.minFreq = 1
}

// Evict removes the oldest key of the lowest frequency bucket.
func (l *lfu) Evict() string {
	b, ok := l.buckets[l.minFreq]
	if !ok {
		return ""
	}
	k, ok := b.popFront()
	if !ok {
		return ""
	}
	if b.len() == 0 {
		delete(l.buckets, l.minFreq)
	}
	delete(l.freq, k)
	return k
}

func (l *lfu) Len() int { return len(l.freq) }

// touch moves k from its bucket to the tail of the next one.
func (l *lfu) touch(k string) {
	old := l.freq[k]
	if b, ok := l.buckets[old]; ok {
		b.remove(k)

		// If that bucket becomes empty, clean it up
		if b.len() == 0 {
			delete(l.buckets, old)
			if l.minFreq == old {
				l.minFreq++
			}
		}
	}
	l.freq[k] = old + 1
	l.bucket(old + 1).pushBack(k)
}

func (l *lfu) bucket(f int) *keyList {
	b, ok := l.buckets[f]
	if !ok {
		b = newKeyList()
		l.buckets[f] = b
	}
	return b
}
