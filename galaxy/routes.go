package galaxy

import (
	"slices"

	"github.com/lixenwraith/gatewarp/core"
)

// TieBreak selects which of several equal-length routes is stored
type TieBreak uint8

const (
	// TieBreakRegistration expands neighbours in gate registration order
	TieBreakRegistration TieBreak = iota
	// TieBreakLowestHandle expands neighbours by ascending entity handle
	TieBreakLowestHandle
)

// RouteOptions configures route table construction
type RouteOptions struct {
	TieBreak TieBreak
}

// Adjacency is the region graph with deterministic neighbour order
type Adjacency struct {
	Regions    []core.Entity
	Neighbours map[core.Entity][]core.Entity
}

// NewAdjacency creates an empty graph
func NewAdjacency() *Adjacency {
	return &Adjacency{Neighbours: make(map[core.Entity][]core.Entity)}
}

// AddRegion appends a node, no-op for known regions
func (a *Adjacency) AddRegion(r core.Entity) {
	if _, ok := a.Neighbours[r]; ok {
		return
	}
	a.Regions = append(a.Regions, r)
	a.Neighbours[r] = nil
}

// AddLink appends a directed link from -> to
func (a *Adjacency) AddLink(from, to core.Entity) {
	a.AddRegion(from)
	a.AddRegion(to)
	a.Neighbours[from] = append(a.Neighbours[from], to)
}

// AddEdge appends links in both directions
func (a *Adjacency) AddEdge(x, y core.Entity) {
	a.AddLink(x, y)
	a.AddLink(y, x)
}

// AdjacencyFromLayout builds the graph a layout registers to, handles indexed like layout regions
func AdjacencyFromLayout(l *Layout, handles []core.Entity) *Adjacency {
	adj := NewAdjacency()
	for _, h := range handles {
		adj.AddRegion(h)
	}
	for _, e := range l.Edges {
		adj.AddEdge(handles[e.From], handles[e.To])
	}
	return adj
}

type routeKey struct {
	from, to core.Entity
}

// RoutePair names an ordered region pair with a stored route
type RoutePair struct {
	From, To core.Entity
}

// RouteTable stores a shortest hop sequence for every reachable ordered pair
// Hops exclude the origin and end with the destination. Immutable once built
type RouteTable struct {
	routes map[routeKey][]core.Entity
	pairs  []RoutePair
}

// BuildRouteTable runs one breadth-first search per region
func BuildRouteTable(adj *Adjacency, opts RouteOptions) *RouteTable {
	rt := &RouteTable{routes: make(map[routeKey][]core.Entity)}

	order := adj.Neighbours
	if opts.TieBreak == TieBreakLowestHandle {
		order = make(map[core.Entity][]core.Entity, len(adj.Neighbours))
		for r, ns := range adj.Neighbours {
			sorted := slices.Clone(ns)
			slices.Sort(sorted)
			order[r] = sorted
		}
	}

	prev := make(map[core.Entity]core.Entity, len(adj.Regions))
	queue := make([]core.Entity, 0, len(adj.Regions))

	for _, origin := range adj.Regions {
		clear(prev)
		prev[origin] = core.NullEntity
		queue = append(queue[:0], origin)

		for head := 0; head < len(queue); head++ {
			cur := queue[head]
			for _, n := range order[cur] {
				if _, visited := prev[n]; visited {
					continue
				}
				prev[n] = cur
				queue = append(queue, n)
			}
		}

		// BFS order gives deterministic pair listing
		for _, dest := range queue[1:] {
			rt.routes[routeKey{origin, dest}] = walkBack(prev, origin, dest)
			rt.pairs = append(rt.pairs, RoutePair{From: origin, To: dest})
		}
	}

	return rt
}

// walkBack rebuilds origin→dest hops from the predecessor map
func walkBack(prev map[core.Entity]core.Entity, origin, dest core.Entity) []core.Entity {
	var hops []core.Entity
	for cur := dest; cur != origin; cur = prev[cur] {
		hops = append(hops, cur)
	}
	slices.Reverse(hops)
	return hops
}

// Lookup returns a copy of the hops from one region to another
// Same-region and unreachable pairs report false
func (rt *RouteTable) Lookup(from, to core.Entity) ([]core.Entity, bool) {
	if rt == nil {
		return nil, false
	}
	hops, ok := rt.routes[routeKey{from, to}]
	if !ok {
		return nil, false
	}
	return slices.Clone(hops), true
}

// Len returns the number of stored ordered pairs
func (rt *RouteTable) Len() int {
	if rt == nil {
		return 0
	}
	return len(rt.routes)
}

// Pairs returns stored pairs in construction order
func (rt *RouteTable) Pairs() []RoutePair {
	if rt == nil {
		return nil
	}
	return slices.Clone(rt.pairs)
}
