package cuboid

import "image/color"

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Common colors.
var (
	Black   = RGB{0x00, 0x00, 0x00}
	White   = RGB{0xff, 0xff, 0xff}
	Red     = RGB{0xff, 0x00, 0x00}
	Green   = RGB{0x00, 0xff, 0x00}
	Blue    = RGB{0x00, 0x00, 0xff}
	Yellow  = RGB{0xff, 0xff, 0x00}
	Cyan    = RGB{0x00, 0xff, 0xff}
	Magenta = RGB{0xff, 0x00, 0xff}
)

// FromColor converts any color.Color to RGB, discarding alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// Color returns the color as a standard library color.Color.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Lerp blends the color toward o. t = 0 keeps the color, t = 1 yields o.
func (c RGB) Lerp(o RGB, t float64) RGB {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return RGB{R: mix(c.R, o.R), G: mix(c.G, o.G), B: mix(c.B, o.B)}
}

// BGRXToRGBA converts a BGRX frame buffer, as produced by Renderer, into
// the RGBA layout expected by most display APIs. dst and src must both
// hold 4 bytes per pixel and be of equal length.
func BGRXToRGBA(dst, src []byte) {
	if len(dst) != len(src) {
		panic("cuboid: BGRX and RGBA buffers differ in size")
	}
	for i := 0; i+3 < len(src); i += 4 {
		dst[i] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i]
		dst[i+3] = 0xff
	}
}
