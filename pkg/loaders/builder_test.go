package loaders

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/sebostien/go-raytracer/pkg/core"
	"github.com/sebostien/go-raytracer/pkg/scene"
)

const validCamera = `
Camera {
    width: 512,
    height: 256,
    pos: (0.0, 1.0, -5.0),
    dir: (0.0, 0.0, 1.0),
}
`

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestParse_ValidScene(t *testing.T) {
	src := validCamera + `
Sphere {
    pos: (0.0, 1.0, 0.0),
    r: 2.5,
    material: {
        color: (255.0, 0.0, 0.0),
        lambert: 0.8,
        ambient: 0.1,
    },
}

Plane {
    point: (0.0, 0.0, 0.0),
    normal: (0.0, 1.0, 0.0),
    material: { color: "gray", lambert: 1.0 },
}

Triangle {
    t1: (-1.0, 0.0, 2.0),
    t2: (1.0, 0.0, 2.0),
    t3: (0.0, 2.0, 2.0),
    material: { template: "mirror" },
}

Light {
    pos: (0.0, 5.0, 0.0),
    intensity: 1.0,
}

Light {
    pos: (3.0, 5.0, 0.0),
    intensity: 0.5,
}
`

	sc, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if sc.Camera == nil {
		t.Fatal("scene has no camera")
	}
	if sc.Camera.Width != 512 || sc.Camera.Height != 256 {
		t.Errorf("resolution = %dx%d, want 512x256", sc.Camera.Width, sc.Camera.Height)
	}
	if len(sc.Objects) != 3 {
		t.Errorf("got %d objects, want 3", len(sc.Objects))
	}
	if len(sc.Lights) != 2 {
		t.Errorf("got %d lights, want 2", len(sc.Lights))
	}
	if sc.MaxDepth != scene.DefaultMaxDepth {
		t.Errorf("MaxDepth = %d, want default %d", sc.MaxDepth, scene.DefaultMaxDepth)
	}
	if sc.Background != core.Black {
		t.Errorf("Background = %v, want black", sc.Background)
	}
}

func TestParse_ObjectOrderPreserved(t *testing.T) {
	src := validCamera + `
Sphere { pos: (0.0, 0.0, 5.0), r: 1.0, material: { color: "red" } }
Sphere { pos: (0.0, 0.0, 5.0), r: 1.0, material: { color: "blue" } }
`
	sc, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// Both spheres coincide; the tie must resolve to the first declared.
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	hit, ok := sc.Hit(ray, core.Epsilon, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}
	red, _ := core.ColorByName("red")
	if diff := cmp.Diff(red, hit.Material.Color, approx); diff != "" {
		t.Errorf("hit material color (-want +got):\n%s", diff)
	}
}

func TestParse_GlobalBlock(t *testing.T) {
	src := validCamera + `
Global {
    recurse_depth: 8,
    background: (10.0, 20.0, 30.0),
}
`
	sc, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sc.MaxDepth != 8 {
		t.Errorf("MaxDepth = %d, want 8", sc.MaxDepth)
	}
	want := core.NewColor(10, 20, 30)
	if diff := cmp.Diff(want, sc.Background, approx); diff != "" {
		t.Errorf("background (-want +got):\n%s", diff)
	}
}

func TestParse_CameraFOV(t *testing.T) {
	src := `
Camera {
    width: 101,
    height: 101,
    pos: (0.0, 0.0, 0.0),
    dir: (0.0, 0.0, 1.0),
    fov: 60.0,
}
`
	sc, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// fov 60 puts the viewport at distance 1/tan(30 deg); the center
	// ray still goes straight along the view direction.
	ray := sc.Camera.RayThrough(50, 50)
	if diff := cmp.Diff(core.NewVec3(0, 0, 1), ray.Direction, approx); diff != "" {
		t.Errorf("center ray (-want +got):\n%s", diff)
	}
}

func TestParse_ScalarBroadcastAndTemplates(t *testing.T) {
	src := validCamera + `
Sphere {
    pos: (0.0, 0.0, 5.0),
    r: 1.0,
    material: {
        template: "matte",
        lambert: 0.5,
    },
}
`
	sc, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	sphere := sc.Objects[0]
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	hit, ok := sphere.Hit(ray, core.Epsilon, math.Inf(1))
	if !ok {
		t.Fatal("expected a hit")
	}

	// Explicit lambert overrides the template, broadcast to all channels.
	want := core.NewColor(0.5, 0.5, 0.5)
	if diff := cmp.Diff(want, hit.Material.Lambert, approx); diff != "" {
		t.Errorf("lambert (-want +got):\n%s", diff)
	}

	tmpl, ok := core.MaterialTemplate("matte")
	if !ok {
		t.Fatal("matte template missing")
	}
	if diff := cmp.Diff(tmpl.Ambient, hit.Material.Ambient, approx); diff != "" {
		t.Errorf("ambient (-want +got):\n%s", diff)
	}
}

func TestParse_SemanticErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"no camera",
			`Light { pos: (0, 0, 0), intensity: 1.0 }`,
			"exactly one Camera, found none",
		},
		{
			"two cameras",
			validCamera + validCamera,
			"exactly one Camera, found 2",
		},
		{
			"unknown type",
			validCamera + `Cube { pos: (0, 0, 0) }`,
			"unknown object type 'Cube'",
		},
		{
			"case sensitive type",
			validCamera + `sphere { pos: (0, 0, 0), r: 1.0, material: {} }`,
			"unknown object type 'sphere'",
		},
		{
			"missing field",
			validCamera + `Sphere { pos: (0, 0, 0), material: {} }`,
			"missing field 'r' in Sphere",
		},
		{
			"unknown field",
			validCamera + `Light { pos: (0, 0, 0), intensity: 1.0, radius: 2.0 }`,
			"unknown field 'radius' in Light",
		},
		{
			"duplicate field",
			validCamera + `Light { pos: (0, 0, 0), pos: (1, 1, 1), intensity: 1.0 }`,
			"duplicate field 'pos' in Light",
		},
		{
			"type mismatch vec3",
			validCamera + `Light { pos: 3.0, intensity: 1.0 }`,
			"expected a 3-tuple (x, y, z), got float",
		},
		{
			"type mismatch nested",
			validCamera + `Light { pos: (1, 2, "three"), intensity: 1.0 }`,
			"expected a number, got string",
		},
		{
			"width not an int",
			`Camera { width: 512.0, height: 512, pos: (0, 0, 0), dir: (0, 0, 1) }`,
			"expected an integer for width, got float",
		},
		{
			"width not positive",
			`Camera { width: 0, height: 512, pos: (0, 0, 0), dir: (0, 0, 1) }`,
			"width must be positive",
		},
		{
			"zero view direction",
			`Camera { width: 10, height: 10, pos: (0, 0, 0), dir: (0, 0, 0) }`,
			"invalid Camera",
		},
		{
			"fov out of range",
			`Camera { width: 10, height: 10, pos: (0, 0, 0), dir: (0, 0, 1), fov: 180.0 }`,
			"fov must be in (0, 180)",
		},
		{
			"zero radius",
			validCamera + `Sphere { pos: (0, 0, 0), r: 0.0, material: {} }`,
			"sphere radius must be positive",
		},
		{
			"negative radius",
			validCamera + `Sphere { pos: (0, 0, 0), r: -1.5, material: {} }`,
			"sphere radius must be positive",
		},
		{
			"zero plane normal",
			validCamera + `Plane { point: (0, 0, 0), normal: (0, 0, 0), material: {} }`,
			"plane normal must be non-zero",
		},
		{
			"collinear triangle",
			validCamera + `Triangle { t1: (0, 0, 0), t2: (1, 1, 1), t3: (2, 2, 2), material: {} }`,
			"triangle vertices are collinear",
		},
		{
			"negative intensity",
			validCamera + `Light { pos: (0, 0, 0), intensity: -1.0 }`,
			"light intensity must be non-negative",
		},
		{
			"material not an object",
			validCamera + `Sphere { pos: (0, 0, 0), r: 1.0, material: "red" }`,
			"expected a material object {...}, got string",
		},
		{
			"unknown color name",
			validCamera + `Sphere { pos: (0, 0, 0), r: 1.0, material: { color: "chartreuse" } }`,
			`unknown color name "chartreuse"`,
		},
		{
			"unknown template",
			validCamera + `Sphere { pos: (0, 0, 0), r: 1.0, material: { template: "velvet" } }`,
			`unknown material template "velvet"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if err == nil {
				t.Fatal("expected a semantic error")
			}
			if _, ok := err.(ErrorList); !ok {
				t.Fatalf("error is %T, want ErrorList", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestParse_AccumulatesAllErrors(t *testing.T) {
	src := `
Sphere { pos: (0, 0, 0), material: {} }
Cube { }
Light { pos: (0, 0, 0), intensity: -1.0 }
`
	_, err := Parse(src)
	if err == nil {
		t.Fatal("expected errors")
	}
	errs, ok := err.(ErrorList)
	if !ok {
		t.Fatalf("error is %T, want ErrorList", err)
	}
	// Missing radius, unknown type, negative intensity, missing camera.
	if len(errs) != 4 {
		t.Errorf("got %d errors, want 4:\n%v", len(errs), errs)
	}
}

func TestParse_SyntaxErrorWins(t *testing.T) {
	// A grammar error aborts before any semantic checks run.
	_, err := Parse(`Sphere { pos: }`)
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	if _, ok := err.(*SyntaxError); !ok {
		t.Fatalf("error is %T, want *SyntaxError", err)
	}
}
