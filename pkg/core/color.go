package core

// Color is an RGB color with float64 channels. Pixel colors use the
// range [0, 255]; material coefficients reuse the type with channels
// acting as per-channel weights in [0, 1].
type Color struct {
	R, G, B float64
}

// Predefined colors for the scene description language.
var (
	Black   = Color{0, 0, 0}
	White   = Color{255, 255, 255}
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Yellow  = Color{255, 255, 0}
	Cyan    = Color{0, 255, 255}
	Magenta = Color{255, 0, 255}
	Orange  = Color{255, 165, 0}
	Gray    = Color{128, 128, 128}
)

// colorNames maps the names recognized by the scene description
// language to their colors.
var colorNames = map[string]Color{
	"black":   Black,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"yellow":  Yellow,
	"cyan":    Cyan,
	"magenta": Magenta,
	"orange":  Orange,
	"gray":    Gray,
}

// NewColor creates a color from RGB channel values
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// ColorByName looks up a named color ("red", "white", ...)
func ColorByName(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale returns the color with every channel multiplied by s
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Mul returns the channel-wise product of two colors. Used to apply
// material coefficients to a base color.
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// IsZero reports whether all channels are zero
func (c Color) IsZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// Clamp limits every channel to [0, 255]
func (c Color) Clamp() Color {
	return Color{
		R: max(0, min(255, c.R)),
		G: max(0, min(255, c.G)),
		B: max(0, min(255, c.B)),
	}
}

// RGBA8 converts the color to 8-bit channels plus full alpha.
// Channels outside [0, 255] are clamped first.
func (c Color) RGBA8() (r, g, b, a uint8) {
	cl := c.Clamp()
	return uint8(cl.R + 0.5), uint8(cl.G + 0.5), uint8(cl.B + 0.5), 255
}
