// This file implements LIFO eviction.

package eviction

type lifo struct {
	// stack keeps keys in insertion order. The top of the stack (last index) is the newest key.
	stack []string

	set map[string]struct{}
}

func newLIFO() *lifo {
	return &lifo{
		stack: make([]string, 0),
		set:   make(map[string]struct{}),
	}
}

// OnGet is a no-op. Reads never change the stack.
func (l *lifo) OnGet(string) {}

// OnUpdate is a no-op. An overwritten key keeps its stack position.
func (l *lifo) OnUpdate(string) {}

// OnPut pushes a new key on top of the stack.
func (l *lifo) OnPut(k string) {
	if _, ok := l.set[k]; ok {
		return
	}
	l.stack = append(l.stack, k)
	l.set[k] = struct{}{}
}

// Evict pops the most recently inserted key that is still cached.
func (l *lifo) Evict() string {
	if len(l.stack) == 0 {
		return ""
	}
	top := len(l.stack) - 1
	k := l.stack[top]
	l.stack = l.stack[:top]
	delete(l.set, k)
	return k
}

func (l *lifo) Len() int { return len(l.set) }
