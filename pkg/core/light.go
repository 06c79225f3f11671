package core

// Light is a point light source. Multiple lights contribute
// independently and are summed at shading time.
type Light struct {
	Position  Vec3
	Intensity float64
}
