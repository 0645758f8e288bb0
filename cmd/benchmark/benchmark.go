package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	cache "github.com/krisalay/policy-cache"
	evict "github.com/krisalay/policy-cache/eviction"
	"github.com/krisalay/policy-cache/notify"
)

// ================= BENCHMARK =================

const (
	capacity   = 10000
	keySpace   = 50000
	goroutines = 16
	opsPerG    = 100000
	readRatio  = 0.8
)

type result struct {
	policy    evict.PolicyType
	duration  time.Duration
	evictions int
	hits      int64
}

// run drives one synchronized cache with concurrent readers/writers.
func run(ctx context.Context, p evict.PolicyType) (result, error) {
	var rec counter
	s := cache.NewSynchronized(cache.MustNew(p,
		cache.WithCapacity(capacity),
		cache.WithNotifier(&rec),
	))

	var (
		mu   sync.Mutex
		hits int64
	)

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < goroutines; i++ {
		seed := int64(i)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			var local int64
			for j := 0; j < opsPerG; j++ {
				if j%1024 == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				// skew towards low keys so LRU/LFU have something to keep
				k := fmt.Sprintf("key-%d", int(float64(keySpace)*rng.Float64()*rng.Float64()))
				if rng.Float64() < readRatio {
					if s.Get(k) != nil {
						local++
					}
					continue
				}
				s.Put(k, j)
			}
			mu.Lock()
			hits += local
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result{}, err
	}

	return result{policy: p, duration: time.Since(start), evictions: rec.n, hits: hits}, nil
}

// counter only counts; the benchmark does not care which key left.
type counter struct{ n int }

func (c *counter) Evicted(string) { c.n++ }

var _ notify.Notifier = (*counter)(nil)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	fmt.Println("\n================ CACHE POLICY BENCHMARK =================")
	fmt.Println("Capacity     :", capacity)
	fmt.Println("Key space    :", keySpace)
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Ops/Goroutine:", opsPerG)
	fmt.Println("---------------------------------------------------------")

	policies := []evict.PolicyType{evict.FIFO, evict.LIFO, evict.LRU, evict.LFU}
	results := make([]result, len(policies))

	// Each policy gets its own cache; policies run one after another so timings are comparable.
	for i, p := range policies {
		log.Info("running", "policy", p)
		r, err := run(ctx, p)
		if err != nil {
			log.Error("benchmark failed", "policy", p, "err", err)
			os.Exit(1)
		}
		results[i] = r
	}

	total := float64(goroutines * opsPerG)
	fmt.Println("\n================ RESULTS =================")
	fmt.Printf("%-6s %14s %16s %10s %10s\n", "POLICY", "TIME", "OPS/SEC", "HIT RATE", "EVICTIONS")
	for _, r := range results {
		reads := total * readRatio
		fmt.Printf("%-6s %14v %16.2f %9.2f%% %10d\n",
			r.policy, r.duration, total/r.duration.Seconds(), 100*float64(r.hits)/reads, r.evictions)
	}
	fmt.Println("=========================================")
}
