package cache_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	cache "github.com/krisalay/policy-cache"
	evict "github.com/krisalay/policy-cache/eviction"
	"github.com/krisalay/policy-cache/notify"
)

// TestLRUMatchesGolangLRU replays a random workload against our LRU cache and
// hashicorp's simplelru and expects the exact same eviction sequence.
func TestLRUMatchesGolangLRU(t *testing.T) {
	const capacity = 8

	var ours notify.Recorder
	c := cache.MustNew(evict.LRU, cache.WithCapacity(capacity), cache.WithNotifier(&ours))

	var theirs []string
	oracle, err := simplelru.NewLRU[string, int](capacity, func(k string, _ int) {
		theirs = append(theirs, k)
	})
	if err != nil {
		t.Fatalf("oracle: %v", err)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20000; i++ {
		k := fmt.Sprintf("k%d", rng.Intn(20))
		if rng.Intn(2) == 0 {
			got := c.Get(k)
			want, ok := oracle.Get(k)
			if ok != (got != nil) || (ok && got != want) {
				t.Fatalf("op %d: get %s = %v, oracle %v (%v)", i, k, got, want, ok)
			}
			continue
		}
		c.Put(k, i)
		oracle.Add(k, i)
	}

	got := ours.Keys()
	if len(got) != len(theirs) {
		t.Fatalf("evicted %d keys, oracle evicted %d", len(got), len(theirs))
	}
	for i := range got {
		if got[i] != theirs[i] {
			t.Fatalf("eviction %d: got %s, oracle %s", i, got[i], theirs[i])
		}
	}
	if len(got) == 0 {
		t.Fatalf("workload never evicted anything")
	}
}
