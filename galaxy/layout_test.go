package galaxy

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/gatewarp/parameter"
	"github.com/lixenwraith/gatewarp/vmath"
)

func TestLayoutValidate(t *testing.T) {
	base := func() Layout {
		return Layout{
			Regions: []RegionSpec{{Name: "a", X: 0}, {Name: "b", X: 1}, {Name: "c", Y: 1}},
			Edges:   []Edge{{From: 0, To: 1}},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Layout)
		want   error
	}{
		{"valid", func(*Layout) {}, nil},
		{"empty", func(l *Layout) { l.Regions = nil; l.Edges = nil }, ErrEmptyLayout},
		{"unknown", func(l *Layout) { l.Edges = append(l.Edges, Edge{From: 0, To: 9}) }, ErrUnknownRegion},
		{"negative", func(l *Layout) { l.Edges = append(l.Edges, Edge{From: -1, To: 0}) }, ErrUnknownRegion},
		{"self loop", func(l *Layout) { l.Edges = append(l.Edges, Edge{From: 2, To: 2}) }, ErrSelfLoop},
		{"duplicate", func(l *Layout) { l.Edges = append(l.Edges, Edge{From: 0, To: 1}) }, ErrDuplicateEdge},
		{"duplicate reversed", func(l *Layout) { l.Edges = append(l.Edges, Edge{From: 1, To: 0}) }, ErrDuplicateEdge},
		{"coincident", func(l *Layout) {
			l.Regions[2] = RegionSpec{Name: "c", X: 1}
			l.Edges = append(l.Edges, Edge{From: 1, To: 2})
		}, ErrCoincidentRegions},
		{"duplicate name", func(l *Layout) { l.Regions[2].Name = "a" }, ErrDuplicateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := base()
			tt.mutate(&l)
			err := l.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDefaultLayoutValid(t *testing.T) {
	l := DefaultLayout()
	if err := l.Validate(); err != nil {
		t.Fatalf("default layout invalid: %v", err)
	}
	if i, ok := l.IndexOf("D"); !ok || i != 3 {
		t.Errorf("IndexOf(D) = %d, %v", i, ok)
	}
}

func TestGatePlacementSymmetric(t *testing.T) {
	standoff := AUToSystem(parameter.GateStandoffAU)
	cases := [][2]vmath.Vec3F{
		{{X: -150, Y: -75}, {X: 0, Y: 75}},
		{{X: 1, Y: 2, Z: 3}, {X: -4, Y: 5, Z: -6}},
		{{}, {X: 1e-5}},
	}

	for _, c := range cases {
		a, b, err := GatePlacement(c[0], c[1])
		if err != nil {
			t.Fatalf("%v -> %v: %v", c[0], c[1], err)
		}
		if d := vmath.V3FMag(vmath.V3FAdd(a, b)); d > 1e-6 {
			t.Errorf("gates not mirrored: %v %v", a, b)
		}
		if math.Abs(vmath.V3FMag(a)-standoff) > 1e-6 {
			t.Errorf("standoff %v, want %v", vmath.V3FMag(a), standoff)
		}
		dir := vmath.V3FNormalize(vmath.V3FSub(c[1], c[0]))
		if vmath.V3FDot(vmath.V3FNormalize(a), dir) < 1-1e-9 {
			t.Errorf("gate A %v not facing %v", a, dir)
		}
	}

	if _, _, err := GatePlacement(vmath.Vec3F{X: 3}, vmath.Vec3F{X: 3}); !errors.Is(err, ErrCoincidentRegions) {
		t.Errorf("coincident err = %v", err)
	}
}
