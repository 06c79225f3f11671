// Package loaders parses the textual scene description language into
// a validated scene.
//
// Parsing happens in two phases. The grammar phase (lexer.go,
// parser.go) turns source text into generic object declarations and
// fails on the first syntax error. The build phase (this file) turns
// those declarations into typed scene objects, accumulating every
// semantic error it finds so that one pass shows all problems.
package loaders

import (
	"fmt"

	"github.com/sebostien/go-raytracer/pkg/core"
	"github.com/sebostien/go-raytracer/pkg/geometry"
	"github.com/sebostien/go-raytracer/pkg/scene"
)

// Parse parses scene source text into a fully validated scene.
// The returned error is a *SyntaxError when the text does not match
// the grammar, or an ErrorList of semantic errors when it does but
// describes an invalid scene.
func Parse(src string) (*scene.Scene, error) {
	decls, serr := parseObjects(src)
	if serr != nil {
		return nil, serr
	}
	return buildScene(decls)
}

// builder accumulates semantic errors while turning object
// declarations into scene objects. It never stops at the first error.
type builder struct {
	errs ErrorList
}

func (b *builder) errorf(span Span, format string, args ...any) {
	b.errs = append(b.errs, &SemanticError{
		Span: span,
		Msg:  fmt.Sprintf(format, args...),
	})
}

// buildScene converts parsed declarations into a scene, enforcing the
// whole-scene invariants: exactly one camera, valid geometry, known
// object types.
func buildScene(decls []ObjectDecl) (*scene.Scene, error) {
	b := &builder{}

	sc := &scene.Scene{
		MaxDepth:   scene.DefaultMaxDepth,
		Background: core.Black,
	}

	var cameras []*scene.Camera
	var cameraSpans []Span

	for _, decl := range decls {
		switch decl.Name.Name {
		case "Camera":
			if cam, ok := b.buildCamera(decl); ok {
				cameras = append(cameras, cam)
			}
			cameraSpans = append(cameraSpans, decl.Name.Span)
		case "Plane":
			if p, ok := b.buildPlane(decl); ok {
				sc.Objects = append(sc.Objects, p)
			}
		case "Sphere":
			if s, ok := b.buildSphere(decl); ok {
				sc.Objects = append(sc.Objects, s)
			}
		case "Triangle":
			if t, ok := b.buildTriangle(decl); ok {
				sc.Objects = append(sc.Objects, t)
			}
		case "Light":
			if l, ok := b.buildLight(decl); ok {
				sc.Lights = append(sc.Lights, l)
			}
		case "Global":
			b.buildGlobal(decl, sc)
		default:
			b.errorf(decl.Name.Span, "unknown object type '%s'", decl.Name.Name)
		}
	}

	switch {
	case len(cameraSpans) == 0:
		b.errorf(Span{}, "scene must contain exactly one Camera, found none")
	case len(cameraSpans) > 1:
		for _, span := range cameraSpans[1:] {
			b.errorf(span, "scene must contain exactly one Camera, found %d", len(cameraSpans))
		}
	}

	if len(b.errs) > 0 {
		return nil, b.errs
	}

	sc.Camera = cameras[0]
	return sc, nil
}

func (b *builder) buildCamera(decl ObjectDecl) (*scene.Camera, bool) {
	fs := b.newFieldSet(decl.Name, decl.Fields)

	width, widthOK := b.asPositiveInt(fs.require("width"), "width")
	height, heightOK := b.asPositiveInt(fs.require("height"), "height")
	pos, posOK := b.asVec3(fs.require("pos"))
	dir, dirOK := b.asVec3(fs.require("dir"))

	fov := scene.DefaultFOV
	fovOK := true
	if lit, ok := fs.get("fov"); ok {
		if f, ok := b.asFloat(lit); ok {
			if f <= 0 || f >= 180 {
				b.errorf(lit.Span(), "fov must be in (0, 180) degrees, got %v", f)
				fovOK = false
			} else {
				fov = f
			}
		} else {
			fovOK = false
		}
	}
	fs.finish()

	if !(widthOK && heightOK && posOK && dirOK && fovOK) {
		return nil, false
	}

	cam, err := scene.NewCamera(width, height, pos, dir, fov)
	if err != nil {
		b.errorf(decl.Name.Span, "invalid Camera: %v", err)
		return nil, false
	}
	return cam, true
}

func (b *builder) buildPlane(decl ObjectDecl) (geometry.Hittable, bool) {
	fs := b.newFieldSet(decl.Name, decl.Fields)

	point, pointOK := b.asVec3(fs.require("point"))
	normal, normalOK := b.asVec3(fs.require("normal"))
	mat, matOK := b.buildMaterial(fs.require("material"))
	fs.finish()

	if normalOK && normal.NearZero() {
		b.errorf(decl.Name.Span, "plane normal must be non-zero")
		normalOK = false
	}

	if !(pointOK && normalOK && matOK) {
		return nil, false
	}
	return geometry.NewPlane(point, normal, mat), true
}

func (b *builder) buildSphere(decl ObjectDecl) (geometry.Hittable, bool) {
	fs := b.newFieldSet(decl.Name, decl.Fields)

	pos, posOK := b.asVec3(fs.require("pos"))
	radiusLit := fs.require("r")
	radius, radiusOK := b.asFloat(radiusLit)
	mat, matOK := b.buildMaterial(fs.require("material"))
	fs.finish()

	if radiusOK && radius <= 0 {
		b.errorf(radiusLit.Span(), "sphere radius must be positive, got %v", radius)
		radiusOK = false
	}

	if !(posOK && radiusOK && matOK) {
		return nil, false
	}
	return geometry.NewSphere(pos, radius, mat), true
}

func (b *builder) buildTriangle(decl ObjectDecl) (geometry.Hittable, bool) {
	fs := b.newFieldSet(decl.Name, decl.Fields)

	t1, t1OK := b.asVec3(fs.require("t1"))
	t2, t2OK := b.asVec3(fs.require("t2"))
	t3, t3OK := b.asVec3(fs.require("t3"))
	mat, matOK := b.buildMaterial(fs.require("material"))
	fs.finish()

	if !(t1OK && t2OK && t3OK && matOK) {
		return nil, false
	}

	// Zero-area test: collinear vertices produce a zero cross product
	if t2.Subtract(t1).Cross(t3.Subtract(t1)).NearZero() {
		b.errorf(decl.Name.Span, "triangle vertices are collinear")
		return nil, false
	}

	return geometry.NewTriangle(t1, t2, t3, mat), true
}

func (b *builder) buildLight(decl ObjectDecl) (core.Light, bool) {
	fs := b.newFieldSet(decl.Name, decl.Fields)

	pos, posOK := b.asVec3(fs.require("pos"))
	intensityLit := fs.require("intensity")
	intensity, intensityOK := b.asFloat(intensityLit)
	fs.finish()

	if intensityOK && intensity < 0 {
		b.errorf(intensityLit.Span(), "light intensity must be non-negative, got %v", intensity)
		intensityOK = false
	}

	if !(posOK && intensityOK) {
		return core.Light{}, false
	}
	return core.Light{Position: pos, Intensity: intensity}, true
}

// buildGlobal applies the optional Global options block to the scene.
func (b *builder) buildGlobal(decl ObjectDecl, sc *scene.Scene) {
	fs := b.newFieldSet(decl.Name, decl.Fields)

	if lit, ok := fs.get("recurse_depth"); ok {
		if depth, ok := b.asPositiveInt(lit, "recurse_depth"); ok {
			sc.MaxDepth = depth
		}
	}
	if lit, ok := fs.get("background"); ok {
		if c, ok := b.asColor(lit); ok {
			sc.Background = c
		}
	}
	fs.finish()
}

// buildMaterial builds a material from a nested object literal.
// An optional template fills the coefficients first; explicit fields
// override it. Absent fields default to zero/black.
func (b *builder) buildMaterial(lit Literal) (core.Material, bool) {
	if lit == nil {
		// Missing field, already reported by require
		return core.Material{}, false
	}

	obj, ok := lit.(*ObjectLit)
	if !ok {
		b.errorf(lit.Span(), "expected a material object {...}, got %s", lit.TypeName())
		return core.Material{}, false
	}

	fs := b.newFieldSet(Ident{Name: "material", Span: lit.Span()}, obj.Fields)

	var mat core.Material
	matOK := true

	if tmplLit, ok := fs.get("template"); ok {
		if name, nameOK := b.asString(tmplLit); nameOK {
			tmpl, found := core.MaterialTemplate(name)
			if !found {
				b.errorf(tmplLit.Span(), "unknown material template %q", name)
				matOK = false
			} else {
				mat = tmpl
			}
		} else {
			matOK = false
		}
	}

	set := func(field string, dst *core.Color) {
		if colorLit, ok := fs.get(field); ok {
			if c, colorOK := b.asColor(colorLit); colorOK {
				*dst = c
			} else {
				matOK = false
			}
		}
	}
	set("color", &mat.Color)
	set("specular", &mat.Specular)
	set("lambert", &mat.Lambert)
	set("ambient", &mat.Ambient)

	fs.finish()
	return mat, matOK
}
