package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers during init; update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Snapshot returns all metrics as "key=value" lines in sorted key order per type
// Used by the host debug overlay
func (r *Registry) Snapshot() []string {
	var lines []string
	r.Bools.Range(func(k string, p *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s=%t", k, p.Load()))
	})
	r.Ints.Range(func(k string, p *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s=%d", k, p.Load()))
	})
	r.Floats.Range(func(k string, p *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s=%.2f", k, p.Get()))
	})
	r.Strings.Range(func(k string, p *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s=%s", k, p.Load()))
	})
	return lines
}
