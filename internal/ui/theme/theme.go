package theme

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA parses a "#rrggbb" palette entry. Unparseable input yields opaque
// magenta so a bad entry is visible rather than invisible.
func RGBA(hex string) color.RGBA {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{R: 255, B: 255, A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Mix blends two palette entries in Lab space; t=0 is a, t=1 is b.
func Mix(a, b string, t float64) string {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	switch {
	case errA != nil || errB != nil:
		return a
	case t <= 0:
		return ca.Hex()
	case t >= 1:
		return cb.Hex()
	}
	return ca.BlendLab(cb, t).Clamped().Hex()
}
