// Package scene holds the fully built, immutable description of a
// renderable scene: one camera, the primitives in declaration order
// and the point lights.
package scene

import (
	"github.com/sebostien/go-raytracer/pkg/core"
	"github.com/sebostien/go-raytracer/pkg/geometry"
)

// DefaultMaxDepth is the recursion limit for reflection rays when the
// scene does not configure one.
const DefaultMaxDepth = 5

// Scene is the aggregate produced by the scene builder. It is built
// once and then shared read-only by all render workers.
type Scene struct {
	Camera  *Camera
	Objects []geometry.Hittable // Primitives in declaration order
	Lights  []core.Light

	MaxDepth   int        // Reflection recursion limit
	Background core.Color // Color for rays that hit nothing
}

// Hit finds the nearest intersection of the ray with any object in
// the scene, with t in [tMin, tMax]. Objects are tested in declaration
// order and exact ties keep the earlier object, so results are
// deterministic.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, object := range s.Objects {
		hit, ok := object.Hit(ray, tMin, closestSoFar)
		if !ok {
			continue
		}
		// Strict improvement only, so an exact tie keeps the earlier object
		if closest == nil || hit.T < closest.T {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// Occluded reports whether any object intersects the ray strictly
// before maxDist. Used for shadow tests.
func (s *Scene) Occluded(ray core.Ray, maxDist float64) bool {
	for _, object := range s.Objects {
		if _, ok := object.Hit(ray, core.Epsilon, maxDist-core.Epsilon); ok {
			return true
		}
	}
	return false
}
