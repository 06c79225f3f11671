package core

// HitRecord contains information about a ray-surface intersection
type HitRecord struct {
	T         float64  // Distance along the ray
	Point     Vec3     // Intersection point
	Normal    Vec3     // Surface normal, oriented against the ray
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the surface that was hit
}

// SetFaceNormal sets the normal vector and determines front/back face.
// The outward normal must be a unit vector.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
