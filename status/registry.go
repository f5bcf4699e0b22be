package status

import (
	"fmt"
	"sync/atomic"
)

// Metric keys written by the session and host loop
const (
	KeyTicks         = "sim.ticks"
	KeyShotsFired    = "sim.shots.player"
	KeyEnemyShots    = "sim.shots.enemy"
	KeyHitsTaken     = "sim.hits.player"
	KeyHitsLanded    = "sim.hits.enemy"
	KeyKills         = "sim.kills"
	KeyResets        = "sim.resets"
	KeyEnemies       = "sim.enemies"
	KeyProjectiles   = "sim.projectiles"
	KeyBestLevel     = "sim.level.best"
	KeyTickRate      = "host.tps"
	KeyFrameTime     = "host.frame_ms"
	KeyPaused        = "host.paused"
	KeyAudio         = "host.audio"
	KeyRunID         = "sim.run"
	KeyDroppedIntent = "host.intents.dropped"
)

// Registry is the central metrics facade
// Writers cache pointers during init and update the atomics directly
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Lines formats every metric as "key: value", grouped by type and sorted by key
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s: %d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s: %.1f", k, v.Get()))
	})
	r.Bools.Range(func(k string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s: %t", k, v.Load()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s: %s", k, v.Load()))
	})
	return lines
}
