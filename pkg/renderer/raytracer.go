package renderer

import (
	"math"

	"github.com/sebostien/go-raytracer/pkg/core"
	"github.com/sebostien/go-raytracer/pkg/scene"
)

// shininess is the exponent of the specular highlight lobe.
const shininess = 32.0

// Raytracer computes the color seen along rays in a scene. It holds
// no mutable state, so a single instance may be shared by all render
// workers.
type Raytracer struct {
	scene *scene.Scene
}

// NewRaytracer creates a raytracer for the given scene
func NewRaytracer(sc *scene.Scene) *Raytracer {
	return &Raytracer{scene: sc}
}

// Trace returns the color seen along the ray, recursing on specular
// reflections. Depth counts reflection bounces; once it reaches the
// scene's recursion limit the background color is returned, which
// bounds mutually reflective surfaces.
func (rt *Raytracer) Trace(ray core.Ray, depth int) core.Color {
	if depth >= rt.scene.MaxDepth {
		return rt.scene.Background
	}

	hit, ok := rt.scene.Hit(ray, core.Epsilon, math.Inf(1))
	if !ok {
		return rt.scene.Background
	}

	return rt.shade(ray, hit, depth)
}

// shade combines the ambient, diffuse, specular-highlight and
// reflection contributions at a hit point.
func (rt *Raytracer) shade(ray core.Ray, hit *core.HitRecord, depth int) core.Color {
	mat := hit.Material

	color := mat.Color.Mul(mat.Ambient)

	for _, light := range rt.scene.Lights {
		color = color.Add(rt.lightContribution(ray, hit, light))
	}

	if !mat.Specular.IsZero() {
		// Mirror reflection, origin nudged off the surface to avoid
		// self-intersection
		reflected := ray.Direction.Reflect(hit.Normal)
		origin := hit.Point.Add(hit.Normal.Multiply(core.Epsilon))
		bounce := rt.Trace(core.NewRay(origin, reflected), depth+1)
		color = color.Add(bounce.Mul(mat.Specular))
	}

	return color.Clamp()
}

// lightContribution returns the diffuse and specular-highlight terms
// for a single light, or black when the light is occluded.
func (rt *Raytracer) lightContribution(ray core.Ray, hit *core.HitRecord, light core.Light) core.Color {
	mat := hit.Material

	origin := hit.Point.Add(hit.Normal.Multiply(core.Epsilon))
	toLight := light.Position.Subtract(origin)
	distance := toLight.Length()

	shadowRay := core.NewRay(origin, toLight)
	if rt.scene.Occluded(shadowRay, distance) {
		return core.Black
	}

	var contribution core.Color

	// Lambertian term: cosine of normal and light direction
	if !mat.Lambert.IsZero() {
		brightness := shadowRay.Direction.Dot(hit.Normal) * light.Intensity
		if brightness > 0 {
			contribution = mat.Color.Mul(mat.Lambert).Scale(math.Min(brightness, 1.0))
		}
	}

	// Specular highlight: alignment of the mirror direction with the
	// light direction
	if !mat.Specular.IsZero() {
		reflected := ray.Direction.Reflect(hit.Normal)
		alignment := reflected.Dot(shadowRay.Direction)
		if alignment > 0 {
			strength := math.Pow(alignment, shininess) * light.Intensity
			highlight := core.White.Mul(mat.Specular).Scale(strength)
			contribution = contribution.Add(highlight)
		}
	}

	return contribution
}
