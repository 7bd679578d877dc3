// Package status collects process-wide runtime counters: frames drawn,
// simulation ticks, the active scene and spectator traffic.
package status

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Metric names written by the binary
const (
	Frames        = "render.frames"
	Ticks         = "sim.ticks"
	DroppedTicks  = "sim.dropped_ticks"
	Scene         = "scene.current"
	Spectators    = "spectate.clients"
	SpectateDrops = "spectate.dropped"
	FrameMillis   = "render.frame_ms"
)

// AtomicFloat is a float64 stored as bits
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(v float64) {
	f.bits.Store(math.Float64bits(v))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// AtomicString holds a short label
type AtomicString struct {
	ptr atomic.Pointer[string]
}

func (s *AtomicString) Store(v string) {
	s.ptr.Store(&v)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

// group holds the metrics of one value type, created on first lookup
type group[T any] struct {
	m sync.Map
}

// Get returns the metric for name, the pointer stays valid for the process lifetime
func (g *group[T]) Get(name string) *T {
	if v, ok := g.m.Load(name); ok {
		return v.(*T)
	}
	v, _ := g.m.LoadOrStore(name, new(T))
	return v.(*T)
}

// Count returns the number of metrics in the group
func (g *group[T]) Count() int {
	n := 0
	g.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (g *group[T]) format(parts []string, show func(*T) string) []string {
	g.m.Range(func(k, v any) bool {
		parts = append(parts, k.(string)+"="+show(v.(*T)))
		return true
	})
	return parts
}

// Registry groups the metrics by value type
type Registry struct {
	Ints    *group[atomic.Int64]
	Floats  *group[AtomicFloat]
	Strings *group[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    &group[atomic.Int64]{},
		Floats:  &group[AtomicFloat]{},
		Strings: &group[AtomicString]{},
	}
}

// TotalCount returns the number of metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Summary renders every metric as sorted name=value pairs on one line
func (r *Registry) Summary() string {
	parts := r.Ints.format(nil, func(v *atomic.Int64) string { return fmt.Sprint(v.Load()) })
	parts = r.Floats.format(parts, func(v *AtomicFloat) string { return fmt.Sprintf("%.2f", v.Get()) })
	parts = r.Strings.format(parts, (*AtomicString).Load)
	sort.Strings(parts)
	return strings.Join(parts, " ")
}
