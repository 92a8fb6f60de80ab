package cuboid

import "math"

// Viewport converts between viewport-agnostic screen coordinates, where
// the visible screen is the unit square, and concrete pixel positions on
// a width-by-height raster. The coordinate 0 maps to the first pixel and
// the coordinate 1 to the last one.
type Viewport struct {
	Width, Height int
}

// Translate maps a screen coordinate to the nearest pixel. Coordinates
// outside [0,1] map to off-raster pixels; clamping them is the
// rasterizer's concern.
func (v Viewport) Translate(p PointF) Point {
	return Point{
		X: int(math.Round(p.X * float64(v.Width-1))),
		Y: int(math.Round(p.Y * float64(v.Height-1))),
	}
}

// Untranslate maps a pixel back to the screen coordinate of its center.
// It inverts Translate up to rounding.
func (v Viewport) Untranslate(p Point) PointF {
	return PointF{
		X: float64(p.X) / float64(v.Width-1),
		Y: float64(p.Y) / float64(v.Height-1),
	}
}
