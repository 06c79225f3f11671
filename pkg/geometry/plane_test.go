package geometry

import (
	"math"
	"testing"

	"github.com/sebostien/go-raytracer/pkg/core"
)

func TestPlane_Hit(t *testing.T) {
	ground := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.Material{})

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		wantHit   bool
		wantT     float64
	}{
		{
			name:      "straight down",
			origin:    core.NewVec3(0, 4, 0),
			direction: core.NewVec3(0, -1, 0),
			wantHit:   true,
			wantT:     4,
		},
		{
			name:      "parallel ray misses",
			origin:    core.NewVec3(0, 1, 0),
			direction: core.NewVec3(1, 0, 0),
			wantHit:   false,
		},
		{
			name:      "plane behind origin",
			origin:    core.NewVec3(0, 1, 0),
			direction: core.NewVec3(0, 1, 0),
			wantHit:   false,
		},
		{
			name:      "diagonal hit",
			origin:    core.NewVec3(0, 1, 0),
			direction: core.NewVec3(1, -1, 0),
			wantHit:   true,
			wantT:     math.Sqrt2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			hit, isHit := ground.Hit(ray, core.Epsilon, math.Inf(1))

			if isHit != tt.wantHit {
				t.Fatalf("Hit = %v, want %v", isHit, tt.wantHit)
			}
			if !tt.wantHit {
				return
			}
			if math.Abs(hit.T-tt.wantT) > 1e-9 {
				t.Errorf("t = %v, want %v", hit.T, tt.wantT)
			}
			if hit.Point.Y != 0 {
				t.Errorf("hit point %v not on plane", hit.Point)
			}
		})
	}
}

func TestPlane_Hit_NormalFacesRay(t *testing.T) {
	ground := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), core.Material{})

	// Hit from below: the reported normal must face the incoming ray
	ray := core.NewRay(core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0))
	hit, isHit := ground.Hit(ray, core.Epsilon, math.Inf(1))
	if !isHit {
		t.Fatal("expected hit from below")
	}
	if hit.Normal != core.NewVec3(0, -1, 0) {
		t.Errorf("normal = %v, want (0, -1, 0)", hit.Normal)
	}
	if hit.FrontFace {
		t.Error("hit from below should be a back face hit")
	}
}

func TestPlane_NewNormalizesNormal(t *testing.T) {
	p := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 5, 0), core.Material{})
	if math.Abs(p.Normal.Length()-1) > 1e-12 {
		t.Errorf("normal not normalized: %v", p.Normal)
	}
}
