package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 metric, such as warp distance in AU or simulated seconds
// The zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

func (g *Gauge) Value() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Add accumulates delta and returns the total
func (g *Gauge) Add(delta float64) float64 {
	return g.update(func(cur float64) (float64, bool) { return cur + delta, true })
}

// Max keeps the larger of the stored value and v, returning the result
func (g *Gauge) Max(v float64) float64 {
	return g.update(func(cur float64) (float64, bool) { return v, v > cur })
}

// update applies fn until the swap wins; fn reports false to keep cur
func (g *Gauge) update(fn func(cur float64) (float64, bool)) float64 {
	for {
		old := g.bits.Load()
		cur := math.Float64frombits(old)
		next, ok := fn(cur)
		if !ok {
			return cur
		}
		if g.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
