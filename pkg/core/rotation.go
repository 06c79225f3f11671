package core

// up is the world up direction used to build camera rotations.
var up = Vec3{X: 0, Y: 1, Z: 0}

// Rotation is a 3x3 rotation matrix stored in row-major order.
type Rotation struct {
	m [3][3]float64
}

// NewRotationTowards builds the rotation that maps the +Z axis onto
// the given view direction, keeping the image upright relative to the
// world up axis. A view direction parallel to up falls back to a +Z
// reference so the basis stays well defined.
func NewRotationTowards(dir Vec3) Rotation {
	v := dir.Normalize()

	reference := up
	if v.Cross(reference).NearZero() {
		// Looking straight up or down
		reference = Vec3{X: 0, Y: 0, Z: 1}
	}

	xAxis := reference.Cross(v).Normalize()
	yAxis := v.Cross(xAxis)

	return Rotation{m: [3][3]float64{
		{xAxis.X, yAxis.X, v.X},
		{xAxis.Y, yAxis.Y, v.Y},
		{xAxis.Z, yAxis.Z, v.Z},
	}}
}

// Apply rotates a vector by the matrix
func (r Rotation) Apply(v Vec3) Vec3 {
	return Vec3{
		X: r.m[0][0]*v.X + r.m[0][1]*v.Y + r.m[0][2]*v.Z,
		Y: r.m[1][0]*v.X + r.m[1][1]*v.Y + r.m[1][2]*v.Z,
		Z: r.m[2][0]*v.X + r.m[2][1]*v.Y + r.m[2][2]*v.Z,
	}
}
