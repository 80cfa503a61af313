// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector: monotonic counters with dynamic registration
// plus gauge probes evaluated at snapshot time.

package control

import (
	"sync"
	"time"
)

// MetricsRegistry holds named int64 counters and gauge probes.
type MetricsRegistry struct {
	mu       sync.RWMutex
	counters map[string]int64
	probes   map[string]func() int64
	updated  time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		counters: make(map[string]int64),
		probes:   make(map[string]func() int64),
	}
}

// Inc increments the named counter by one.
func (mr *MetricsRegistry) Inc(key string) {
	mr.Add(key, 1)
}

// Add increments the named counter by delta.
func (mr *MetricsRegistry) Add(key string, delta int64) {
	mr.mu.Lock()
	mr.counters[key] += delta
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Get returns the current value of a counter (zero if never touched).
func (mr *MetricsRegistry) Get(key string) int64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.counters[key]
}

// RegisterProbe inserts a named gauge hook evaluated on every Snapshot.
func (mr *MetricsRegistry) RegisterProbe(name string, fn func() int64) {
	mr.mu.Lock()
	mr.probes[name] = fn
	mr.mu.Unlock()
}

// Snapshot returns the counters merged with the current probe readings.
func (mr *MetricsRegistry) Snapshot() map[string]int64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]int64, len(mr.counters)+len(mr.probes))
	for k, v := range mr.counters {
		out[k] = v
	}
	for k, fn := range mr.probes {
		out[k] = fn()
	}
	return out
}

// Updated reports when a counter last changed.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
