package raster

// Point is a pixel-space location (internal copy to avoid an import cycle
// with the root package).
type Point struct {
	X, Y int
}

// Add returns the point displaced by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vec {
	return Vec{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec is an integer 2D displacement.
type Vec struct {
	X, Y int
}

// Perp returns v rotated a quarter turn counter-clockwise.
func (v Vec) Perp() Vec {
	return Vec{X: -v.Y, Y: v.X}
}

// RGB is an 8-bit-per-channel opaque color (internal copy to avoid an
// import cycle).
type RGB struct {
	R, G, B uint8
}

// ColorFunc decides the color of a candidate pixel. Returning ok=false
// skips the pixel without writing anything.
type ColorFunc interface {
	ColorAt(p Point) (RGB, bool)
}

// PixelFunc adapts a plain function to the ColorFunc interface.
type PixelFunc func(p Point) (RGB, bool)

// ColorAt calls f.
func (f PixelFunc) ColorAt(p Point) (RGB, bool) { return f(p) }
