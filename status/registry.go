// Package status collects runtime counters written by the simulation and read by the debug HUD line
package status

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Metric keys
const (
	MetricCreepsAlive = "creeps.alive"
	MetricPoolSize    = "creeps.pool"
	MetricSpawned     = "creeps.spawned"
	MetricKilled      = "creeps.killed"
	MetricLeaked      = "creeps.leaked"
	MetricShots       = "towers.shots"
	MetricTracers     = "towers.tracers"
	MetricCasters     = "aura.casters"
	MetricUpdates     = "loop.updates"
	MetricDropped     = "loop.dropped"
	MetricEvents      = "events.dispatched"
	MetricSimTime     = "loop.sim_seconds"
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Line formats every metric as key=value in sorted key order, ints first
func (r *Registry) Line() string {
	var b strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%.1f", key, v.Get())
	})
	return b.String()
}
