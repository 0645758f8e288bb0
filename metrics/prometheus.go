// Package metrics provides a Prometheus implementation of types.Metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/krisalay/policy-cache/types"
)

// Prometheus counts cache events with client_golang counters.
type Prometheus struct {
	Hits       prometheus.Counter
	Misses     prometheus.Counter
	Evictions  prometheus.Counter
	Overwrites prometheus.Counter
}

var _ types.Metrics = (*Prometheus)(nil)

// NewPrometheus registers the cache counters on reg under namespace.
// Every counter carries a constant "policy" label so several caches can share one registry.
// A nil reg registers on prometheus.DefaultRegisterer.
func NewPrometheus(reg prometheus.Registerer, namespace, policy string) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	labels := prometheus.Labels{"policy": policy}

	return &Prometheus{
		Hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "hits_total",
			Help:        "Total number of Get calls that found the key",
			ConstLabels: labels,
		}),
		Misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "misses_total",
			Help:        "Total number of Get calls that did not find the key",
			ConstLabels: labels,
		}),
		Evictions: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "evictions_total",
			Help:        "Total number of entries evicted to make room for a new key",
			ConstLabels: labels,
		}),
		Overwrites: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "overwrites_total",
			Help:        "Total number of Put calls that replaced an existing value",
			ConstLabels: labels,
		}),
	}
}

func (p *Prometheus) Hit()       { p.Hits.Inc() }
func (p *Prometheus) Miss()      { p.Misses.Inc() }
func (p *Prometheus) Eviction()  { p.Evictions.Inc() }
func (p *Prometheus) Overwrite() { p.Overwrites.Inc() }
