package geometry

import (
	"github.com/sebostien/go-raytracer/pkg/core"
)

// Hittable is implemented by every primitive that a ray can intersect.
// Hit returns the nearest intersection with t in [tMin, tMax], if any.
type Hittable interface {
	Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool)
}
