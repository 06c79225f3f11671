package scene

import (
	"errors"
	"math"

	"github.com/sebostien/go-raytracer/pkg/core"
)

// DefaultFOV is the horizontal field of view in degrees used when a
// scene does not specify one.
const DefaultFOV = 90.0

// ErrDirectionZero is returned when a camera is created with a
// zero-length view direction.
var ErrDirectionZero = errors.New("camera direction must be non-zero")

// Camera generates primary rays through a viewport placed in front of
// the camera position. The viewport spans [-aspect, aspect] in x and
// [-1, 1] in y, at distance 1/tan(fov/2) along the view direction.
type Camera struct {
	Width  int // Horizontal resolution in pixels
	Height int // Vertical resolution in pixels

	position core.Vec3
	rotation core.Rotation

	aspect      float64 // width / height
	pixelWidth  float64 // Viewport distance between adjacent pixel centers in x
	pixelHeight float64 // Viewport distance between adjacent pixel centers in y
	distance    float64 // Distance from camera to viewport
}

// NewCamera creates a camera at position looking along dir.
// The fov is the field of view in degrees, in (0, 180).
func NewCamera(width, height int, position, dir core.Vec3, fov float64) (*Camera, error) {
	if dir.LengthSquared() == 0 {
		return nil, ErrDirectionZero
	}

	halfFOV := fov / 2.0 * math.Pi / 180.0
	aspect := float64(width) / float64(height)

	c := &Camera{
		Width:       width,
		Height:      height,
		position:    position,
		rotation:    core.NewRotationTowards(dir),
		aspect:      aspect,
		pixelWidth:  2.0 * aspect / float64(width),
		pixelHeight: 2.0 / float64(height),
		distance:    1.0 / math.Tan(halfFOV),
	}

	return c, nil
}

// Position returns the camera location
func (c *Camera) Position() core.Vec3 {
	return c.position
}

// SetResolution changes the output resolution, preserving position,
// direction and field of view. Used for command-line overrides.
func (c *Camera) SetResolution(width, height int) {
	c.Width = width
	c.Height = height
	c.aspect = float64(width) / float64(height)
	c.pixelWidth = 2.0 * c.aspect / float64(width)
	c.pixelHeight = 2.0 / float64(height)
}

// RayThrough returns the primary ray through the center of pixel
// (i, j), where (0, 0) is the top-left pixel of the image.
func (c *Camera) RayThrough(i, j int) core.Ray {
	// Map i to [-aspect, aspect] and j to [1, -1], top row first
	x := (float64(i)+0.5)*c.pixelWidth - c.aspect
	y := 1.0 - (float64(j)+0.5)*c.pixelHeight

	direction := c.rotation.Apply(core.NewVec3(x, y, c.distance))

	return core.NewRay(c.position, direction)
}
