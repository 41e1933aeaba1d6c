// Package status collects per-run counters shown in the debug HUD and logged at exit
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Well-known metric keys
const (
	Ticks     = "engine.ticks"
	Enemies   = "arena.enemies"
	Consumed  = "arena.consumed"
	Rollbacks = "arena.rollbacks"
	Size      = "player.size"
	Debug     = "debug.overlay"
)

// Registry is the metrics facade
// The loop is single-threaded; atomics keep reads from the audio goroutine and tests safe
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}

// Line renders every metric as "key=value" pairs in key order
func (r *Registry) Line() string {
	var sb strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%d", key, v.Load())
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%t", key, v.Load())
	})
	return sb.String()
}
