package geometry

import (
	"github.com/sebostien/go-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3     // The three vertices
	Material   core.Material // Material of the triangle
	normal     core.Vec3     // Cached normal vector
	edge1      core.Vec3     // V1 - V0
	edge2      core.Vec3     // V2 - V0
}

// NewTriangle creates a new triangle from three vertices.
// The vertices must not be collinear; the scene builder rejects
// degenerate triangles before they reach this constructor.
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)

	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   edge1.Cross(edge2).Normalize(),
		edge1:    edge1,
		edge2:    edge2,
	}
}

// Normal returns the triangle's unit normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Hit tests if a ray intersects with the triangle using the
// Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	const epsilon = 1e-8

	// Determinant of the system; near zero means the ray lies in the
	// plane of the triangle
	h := ray.Direction.Cross(t.edge2)
	a := t.edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(t.edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * t.edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        tParam,
		Point:    ray.At(tParam),
		Material: t.Material,
	}
	hit.SetFaceNormal(ray, t.normal)

	return hit, true
}
