package eviction_test

import (
	"errors"
	"testing"

	"github.com/krisalay/policy-cache/eviction"
)

// admit mimics what the cache does for a batch of new keys.
func admit(p eviction.Policy, keys ...string) {
	for _, k := range keys {
		p.OnPut(k)
	}
}

func drain(p eviction.Policy) []string {
	var out []string
	for {
		k := p.Evict()
		if k == "" {
			return out
		}
		out = append(out, k)
	}
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

//
// ================= FACTORY =================
//

func TestParsePolicyType(t *testing.T) {
	cases := map[string]eviction.PolicyType{
		"fifo":  eviction.FIFO,
		"LIFO":  eviction.LIFO,
		" lru ": eviction.LRU,
		"Lfu":   eviction.LFU,
		"basic": eviction.Basic,
	}
	for in, want := range cases {
		got, err := eviction.ParsePolicyType(in)
		if err != nil {
			t.Fatalf("ParsePolicyType(%q): unexpected error %v", in, err)
		}
		if got != want {
			t.Fatalf("ParsePolicyType(%q) = %s, want %s", in, got, want)
		}
	}

	if _, err := eviction.ParsePolicyType("mru"); !errors.Is(err, eviction.ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
}

func TestNewEvictionPolicyPanicsOnUnknownType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown policy type")
		}
	}()
	eviction.NewEvictionPolicy("MRU")
}

func TestOnlyFIFOEvictsAfterInsert(t *testing.T) {
	for _, pt := range eviction.PolicyTypes() {
		p := eviction.NewEvictionPolicy(pt)
		if got := eviction.EvictsAfterInsert(p); got != (pt == eviction.FIFO) {
			t.Fatalf("%s: EvictsAfterInsert = %v", pt, got)
		}
	}
}

//
// ================= ORDERING =================
//

func TestFIFOEvictsInInsertionOrder(t *testing.T) {
	p := eviction.NewEvictionPolicy(eviction.FIFO)
	admit(p, "A", "B", "C", "D")

	p.OnGet("A")
	p.OnUpdate("A")
	p.OnPut("B") // re-put of a tracked key keeps its place

	if got := drain(p); !equal(got, []string{"A", "B", "C", "D"}) {
		t.Fatalf("expected A B C D, got %v", got)
	}
}

func TestLIFOEvictsMostRecentInsert(t *testing.T) {
	p := eviction.NewEvictionPolicy(eviction.LIFO)
	admit(p, "A", "B", "C", "D")

	p.OnGet("A")
	p.OnUpdate("B")

	if got := drain(p); !equal(got, []string{"D", "C", "B", "A"}) {
		t.Fatalf("expected D C B A, got %v", got)
	}
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	p := eviction.NewEvictionPolicy(eviction.LRU)
	admit(p, "A", "B", "C", "D")

	p.OnGet("B")
	p.OnUpdate("A")
	p.OnGet("missing")

	if got := drain(p); !equal(got, []string{"C", "D", "B", "A"}) {
		t.Fatalf("expected C D B A, got %v", got)
	}
}

func TestLFUEvictsLowestFrequencyThenLeastRecent(t *testing.T) {
	p := eviction.NewEvictionPolicy(eviction.LFU)
	admit(p, "A", "B", "C", "D")

	p.OnGet("B")    // B:2
	p.OnUpdate("C") // C:2, newer than B
	p.OnGet("D")    // D:2, newest
	p.OnGet("D")    // D:3

	if got := p.Evict(); got != "A" {
		t.Fatalf("expected A (only frequency-1 key), got %s", got)
	}

	// minFreq is now stale (bucket 1 emptied by eviction); a new key resets it to 1.
	p.OnPut("E")
	if got := p.Evict(); got != "E" {
		t.Fatalf("expected the fresh key E, got %s", got)
	}
}

func TestLFUAdvancesMinFrequency(t *testing.T) {
	p := eviction.NewEvictionPolicy(eviction.LFU)
	admit(p, "A", "B")

	p.OnGet("A") // A:2, bucket 1 = [B]
	p.OnGet("B") // B:2, bucket 1 empty, minFreq -> 2, bucket 2 = [A B]

	if got := p.Evict(); got != "A" {
		t.Fatalf("expected A (older in frequency-2 bucket), got %s", got)
	}
	if p.Len() != 1 {
		t.Fatalf("expected 1 tracked key, got %d", p.Len())
	}
}

func TestLFUGetOfUnknownKeyDoesNothing(t *testing.T) {
	p := eviction.NewEvictionPolicy(eviction.LFU)
	admit(p, "A")
	p.OnGet("nope")
	p.OnUpdate("nope")

	if p.Len() != 1 {
		t.Fatalf("unknown key must not be tracked, len=%d", p.Len())
	}
	if got := p.Evict(); got != "A" {
		t.Fatalf("expected A, got %s", got)
	}
}

func TestBasicNeverEvicts(t *testing.T) {
	p := eviction.NewEvictionPolicy(eviction.Basic)
	admit(p, "A", "B", "C", "D", "E")
	if got := p.Evict(); got != "" {
		t.Fatalf("basic must not evict, got %q", got)
	}
	if p.Len() != 5 {
		t.Fatalf("expected 5 tracked keys, got %d", p.Len())
	}
}

func TestEvictOnEmptyPolicy(t *testing.T) {
	for _, pt := range eviction.PolicyTypes() {
		if got := eviction.NewEvictionPolicy(pt).Evict(); got != "" {
			t.Fatalf("%s: expected empty eviction, got %q", pt, got)
		}
	}
}
