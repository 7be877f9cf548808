package galaxy

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/gatewarp/parameter"
	"github.com/lixenwraith/gatewarp/vmath"
)

var (
	ErrEmptyLayout       = errors.New("galaxy layout has no regions")
	ErrUnknownRegion     = errors.New("edge references unknown region")
	ErrSelfLoop          = errors.New("edge connects a region to itself")
	ErrDuplicateEdge     = errors.New("regions already connected")
	ErrCoincidentRegions = errors.New("connected regions share a galaxy position")
	ErrDuplicateName     = errors.New("duplicate region name")
)

// AnomalySpec places a point of interest inside a region, offsets in meters
type AnomalySpec struct {
	Name  string  `yaml:"name"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	Level int     `yaml:"level"`
}

// RegionSpec is a region node; X/Y/Z is the galaxy-level position
// Only directions between connected regions matter
type RegionSpec struct {
	Name      string        `yaml:"name"`
	X         float64       `yaml:"x"`
	Y         float64       `yaml:"y"`
	Z         float64       `yaml:"z"`
	Anomalies []AnomalySpec `yaml:"anomalies"`
}

// Pos returns the galaxy-level position
func (r RegionSpec) Pos() vmath.Vec3F {
	return vmath.Vec3F{X: r.X, Y: r.Y, Z: r.Z}
}

// Edge is an undirected connection by region index; edges register in list order
type Edge struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Layout is a galaxy description: regions and undirected edges
type Layout struct {
	Regions []RegionSpec `yaml:"regions"`
	Edges   []Edge       `yaml:"edges"`
}

// Validate rejects layouts that cannot produce a consistent gate graph
func (l *Layout) Validate() error {
	if len(l.Regions) == 0 {
		return ErrEmptyLayout
	}

	names := make(map[string]int, len(l.Regions))
	for i, r := range l.Regions {
		if r.Name == "" {
			continue
		}
		if prev, ok := names[r.Name]; ok {
			return fmt.Errorf("%w: %q at %d and %d", ErrDuplicateName, r.Name, prev, i)
		}
		names[r.Name] = i
	}

	type pair struct{ a, b int }
	seen := make(map[pair]struct{}, len(l.Edges))
	for i, e := range l.Edges {
		if e.From < 0 || e.From >= len(l.Regions) || e.To < 0 || e.To >= len(l.Regions) {
			return fmt.Errorf("edge %d (%d-%d): %w", i, e.From, e.To, ErrUnknownRegion)
		}
		if e.From == e.To {
			return fmt.Errorf("edge %d (%d-%d): %w", i, e.From, e.To, ErrSelfLoop)
		}

		key := pair{min(e.From, e.To), max(e.From, e.To)}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("edge %d (%d-%d): %w", i, e.From, e.To, ErrDuplicateEdge)
		}
		seen[key] = struct{}{}

		if _, _, err := GatePlacement(l.Regions[e.From].Pos(), l.Regions[e.To].Pos()); err != nil {
			return fmt.Errorf("edge %d (%s-%s): %w", i, l.Regions[e.From].Name, l.Regions[e.To].Name, err)
		}
	}
	return nil
}

// IndexOf returns the index of the region with the given name
func (l *Layout) IndexOf(name string) (int, bool) {
	for i, r := range l.Regions {
		if r.Name == name {
			return i, true
		}
	}
	return 0, false
}

// GatePlacement returns region-local gate positions for a connection from a to b
// Gate A sits at the standoff distance toward B, gate B mirrored toward A
func GatePlacement(posA, posB vmath.Vec3F) (vmath.Vec3F, vmath.Vec3F, error) {
	delta := vmath.V3FSub(posB, posA)
	if vmath.V3FIsZero(delta) {
		return vmath.Vec3F{}, vmath.Vec3F{}, ErrCoincidentRegions
	}

	offset := vmath.V3FScale(vmath.V3FNormalize(delta), AUToSystem(parameter.GateStandoffAU))
	return offset, vmath.V3FNeg(offset), nil
}

// DefaultLayout is the four-region demo galaxy: A-B, B-C, D-B, D-C
func DefaultLayout() Layout {
	scale := MetersToSystem(10)
	anomalies := func() []AnomalySpec {
		return []AnomalySpec{
			{Name: "field-1", X: 400, Y: 400, Level: parameter.DefaultAnomalyLevel},
			{Name: "field-2", X: -400, Y: -400, Level: parameter.DefaultAnomalyLevel},
		}
	}

	return Layout{
		Regions: []RegionSpec{
			{Name: "A", X: -150 * scale, Y: -75 * scale, Anomalies: anomalies()},
			{Name: "B", X: 0, Y: 75 * scale, Anomalies: anomalies()},
			{Name: "C", X: 150 * scale, Y: -75 * scale, Anomalies: anomalies()},
			{Name: "D", X: 150 * scale, Y: 75 * scale, Anomalies: anomalies()},
		},
		Edges: []Edge{
			{From: 0, To: 1},
			{From: 1, To: 2},
			{From: 3, To: 1},
			{From: 3, To: 2},
		},
	}
}
