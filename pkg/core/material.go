package core

// Material describes how a surface responds to light.
//
// The coefficients are per-channel weights in [0, 1]: Specular is how
// mirror-like the surface is, Lambert how matte it appears and Ambient
// how much base light it receives regardless of any light source.
// Each primitive owns its material; materials are never shared.
type Material struct {
	Color    Color
	Specular Color
	Lambert  Color
	Ambient  Color
}

// materialTemplates are the named coefficient presets recognized by
// the scene description language. Explicit material fields override
// the template values.
var materialTemplates = map[string]Material{
	"metal": {
		Specular: Color{0.8, 0.8, 0.8},
		Lambert:  Color{0.4, 0.4, 0.4},
		Ambient:  Color{0.05, 0.05, 0.05},
	},
	"mirror": {
		Specular: Color{0.95, 0.95, 0.95},
		Lambert:  Color{0.05, 0.05, 0.05},
	},
	"matte": {
		Lambert: Color{0.9, 0.9, 0.9},
		Ambient: Color{0.1, 0.1, 0.1},
	},
	"plastic": {
		Specular: Color{0.3, 0.3, 0.3},
		Lambert:  Color{0.8, 0.8, 0.8},
		Ambient:  Color{0.1, 0.1, 0.1},
	},
}

// MaterialTemplate returns the named material preset, without a base color.
func MaterialTemplate(name string) (Material, bool) {
	m, ok := materialTemplates[name]
	return m, ok
}
