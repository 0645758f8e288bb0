// Package notify reports evictions.
//
// A Notifier is called synchronously, exactly once per evicted key, from inside
// the cache's Put. Overwrites never produce a notification.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Notifier receives the key of every evicted entry.
type Notifier interface {
	Evicted(key string)
}

// Func adapts a plain function to the Notifier interface.
type Func func(key string)

func (f Func) Evicted(key string) { f(key) }

// Noop ignores every eviction.
type Noop struct{}

func (Noop) Evicted(string) {}

// Writer prints one "DISCARD: <key>" line per eviction.
type Writer struct {
	W io.Writer
}

func (w Writer) Evicted(key string) {
	fmt.Fprintf(w.W, "DISCARD: %s\n", key)
}

// Logger emits one structured record per eviction.
type Logger struct {
	Log   *slog.Logger
	Level slog.Level
}

// NewLogger returns a Logger that logs at info level with the given attributes attached.
func NewLogger(log *slog.Logger, attrs ...any) *Logger {
	return &Logger{Log: log.With(attrs...), Level: slog.LevelInfo}
}

func (l *Logger) Evicted(key string) {
	l.Log.Log(context.Background(), l.Level, "cache eviction", slog.String("key", key))
}

// Recorder keeps evicted keys in the order they were reported.
type Recorder struct {
	mu   sync.Mutex
	keys []string
}

func (r *Recorder) Evicted(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = append(r.keys, key)
}

// Keys returns a copy of the recorded keys.
func (r *Recorder) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.keys...)
}

// Count returns the number of recorded evictions.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.keys)
}

// Reset forgets every recorded key.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = nil
}

type multi []Notifier

func (m multi) Evicted(key string) {
	for _, n := range m {
		n.Evicted(key)
	}
}

// Multi fans one eviction out to several notifiers, in order. Nil entries are skipped.
func Multi(ns ...Notifier) Notifier {
	out := make(multi, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
