// Package raster implements exact-arithmetic scanline rasterization of
// integer-coordinate triangles into a 4-byte-per-pixel framebuffer.
//
// Triangle edges are represented as integer lines (a*x + b*y + c = 0) and
// row bounds come from exact line intersections, so two triangles sharing
// an edge cover it without gaps or seams caused by float drift.
package raster

import "fmt"

// bytesPerPixel is the framebuffer stride per pixel: B, G, R, pad.
const bytesPerPixel = 4

// Rasterizer fills triangles into a caller-supplied pixel buffer. The
// buffer layout is row-major with 4 bytes per pixel in B, G, R, pad order,
// as handed out by a locked window surface.
type Rasterizer struct {
	pix    []byte
	width  int
	height int
}

// NewRasterizer wraps a pixel buffer of the given dimensions. It panics if
// the buffer is too small to hold width*height pixels.
func NewRasterizer(pix []byte, width, height int) *Rasterizer {
	if len(pix) < width*height*bytesPerPixel {
		panic(fmt.Sprintf("raster: pixel buffer holds %d bytes, need %d for %dx%d",
			len(pix), width*height*bytesPerPixel, width, height))
	}
	return &Rasterizer{pix: pix, width: width, height: height}
}

// Width returns the buffer width in pixels.
func (r *Rasterizer) Width() int { return r.width }

// Height returns the buffer height in pixels.
func (r *Rasterizer) Height() int { return r.height }

// Set writes one pixel. Out-of-bounds coordinates are ignored: partially
// on-screen triangles are normal, not an error.
func (r *Rasterizer) Set(x, y int, c RGB) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return
	}
	i := (y*r.width + x) * bytesPerPixel
	r.pix[i] = c.B
	r.pix[i+1] = c.G
	r.pix[i+2] = c.R
}

// FillTriangle scan-converts a triangle, offering every covered pixel to
// fn. The triangle is split through its middle vertex (by y) into two
// glued halves sharing a horizontal base; pixels on the shared base may be
// offered twice, so fn must be idempotent for a repeated pixel.
func (r *Rasterizer) FillTriangle(t Triangle, fn ColorFunc) {
	a, b, c := t.ysort()
	split := Horizontal(b.Y).Intersect(LineFromPoints(a, c))
	base := HorizontalSegmentFromPoints(b, split)

	if top, err := NewGluedTriangle(base, a); err == nil {
		r.FillGluedTriangle(top, fn)
	}
	if bottom, err := NewGluedTriangle(base, c); err == nil {
		r.FillGluedTriangle(bottom, fn)
	}
}

// FillGluedTriangle fills one flat-base half. Each scanline row between
// the base and the apex is intersected with the two slanted edges to get
// inclusive integer x bounds, clamped to the buffer.
func (r *Rasterizer) FillGluedTriangle(g GluedTriangle, fn ColorFunc) {
	yMin, yMax := g.Segment.Y(), g.Apex.Y
	if yMin > yMax {
		yMin, yMax = yMax, yMin
	}
	if yMin < 0 {
		yMin = 0
	}
	if yMax > r.height-1 {
		yMax = r.height - 1
	}

	left := LineFromPoints(g.Segment.Left(), g.Apex)
	right := LineFromPoints(g.Segment.Right(), g.Apex)

	for y := yMin; y <= yMax; y++ {
		row := Horizontal(y)
		xMin := row.Intersect(left).X
		xMax := row.Intersect(right).X
		if xMin < 0 {
			xMin = 0
		}
		if xMax > r.width-1 {
			xMax = r.width - 1
		}
		for x := xMin; x <= xMax; x++ {
			p := Point{X: x, Y: y}
			if c, ok := fn.ColorAt(p); ok {
				r.Set(x, y, c)
			}
		}
	}
}
