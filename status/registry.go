package status

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
)

// Registry is the simulation metrics facade
// Systems cache metric pointers at construction and write atomics during Update
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Gauges *MetricMap[Gauge]
	Labels *MetricMap[Label]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Gauges: NewMetricMap[Gauge](),
		Labels: NewMetricMap[Label](),
	}
}

// TotalCount returns metrics across all kinds
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Gauges.Count() + r.Labels.Count()
}

// Metric is one formatted metric value
type Metric struct {
	Key   string
	Value string
}

// Snapshot formats every metric, sorted by key
func (r *Registry) Snapshot() []Metric {
	return r.SnapshotPrefix("")
}

// SnapshotPrefix formats the metrics of one group, such as "region.", sorted by key
func (r *Registry) SnapshotPrefix(prefix string) []Metric {
	var out []Metric
	r.Bools.RangePrefix(prefix, func(k string, v *atomic.Bool) {
		out = append(out, Metric{k, strconv.FormatBool(v.Load())})
	})
	r.Ints.RangePrefix(prefix, func(k string, v *atomic.Int64) {
		out = append(out, Metric{k, strconv.FormatInt(v.Load(), 10)})
	})
	r.Gauges.RangePrefix(prefix, func(k string, v *Gauge) {
		out = append(out, Metric{k, strconv.FormatFloat(v.Value(), 'g', 6, 64)})
	})
	r.Labels.RangePrefix(prefix, func(k string, v *Label) {
		out = append(out, Metric{k, v.Value()})
	})
	slices.SortFunc(out, func(a, b Metric) int { return strings.Compare(a.Key, b.Key) })
	return out
}

// LogValue groups the snapshot so a registry can be passed straight to slog
func (r *Registry) LogValue() slog.Value {
	snap := r.Snapshot()
	attrs := make([]slog.Attr, len(snap))
	for i, m := range snap {
		attrs[i] = slog.String(m.Key, m.Value)
	}
	return slog.GroupValue(attrs...)
}
