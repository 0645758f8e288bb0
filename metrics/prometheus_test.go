package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/krisalay/policy-cache/metrics"
)

func TestPrometheusCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheus(reg, "test", "LRU")

	m.Hit()
	m.Hit()
	m.Miss()
	m.Eviction()
	m.Overwrite()
	m.Overwrite()
	m.Overwrite()

	if got := testutil.ToFloat64(m.Hits); got != 2 {
		t.Fatalf("expected 2 hits, got %v", got)
	}
	if got := testutil.ToFloat64(m.Misses); got != 1 {
		t.Fatalf("expected 1 miss, got %v", got)
	}
	if got := testutil.ToFloat64(m.Evictions); got != 1 {
		t.Fatalf("expected 1 eviction, got %v", got)
	}
	if got := testutil.ToFloat64(m.Overwrites); got != 3 {
		t.Fatalf("expected 3 overwrites, got %v", got)
	}

	if n, err := testutil.GatherAndCount(reg); err != nil || n != 4 {
		t.Fatalf("expected 4 registered series, got %d (err=%v)", n, err)
	}
}

func TestPrometheusPoliciesShareRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := metrics.NewPrometheus(reg, "test", "FIFO")
	b := metrics.NewPrometheus(reg, "test", "LFU")

	a.Eviction()
	b.Eviction()
	b.Eviction()

	if testutil.ToFloat64(a.Evictions) != 1 || testutil.ToFloat64(b.Evictions) != 2 {
		t.Fatalf("policy labels must keep counters apart")
	}
}
