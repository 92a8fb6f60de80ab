package cuboid

import "github.com/kodo-pp/cuboid/internal/raster"

// ObjectFiller colors the pixels of a drawn surface by their recovered
// position on it: ColorAt receives the coordinate of the pixel over the
// surface's basis, so that (0,0) is the basis origin and (1,1) is origin
// plus both basis vectors. Returning ok = false leaves the pixel's color
// untouched; its depth has already been written by then, so the skipped
// pixel still occludes. Implement Masker to skip pixels before the depth
// write.
type ObjectFiller interface {
	ColorAt(uv PointF) (RGB, bool)
}

// ObjectFillerFunc adapts a plain function to the ObjectFiller interface.
type ObjectFillerFunc func(uv PointF) (RGB, bool)

// ColorAt calls f.
func (f ObjectFillerFunc) ColorAt(uv PointF) (RGB, bool) { return f(uv) }

// SolidFill returns an ObjectFiller painting every pixel the same color.
func SolidFill(c RGB) ObjectFiller {
	return ObjectFillerFunc(func(PointF) (RGB, bool) { return c, true })
}

// ScreenFiller colors pixels by their raw screen position, bypassing
// coordinate recovery and depth testing. Returning ok = false leaves the
// pixel untouched.
type ScreenFiller interface {
	ColorAt(p Point) (RGB, bool)
}

// ScreenFillerFunc adapts a plain function to the ScreenFiller interface.
type ScreenFillerFunc func(p Point) (RGB, bool)

// ColorAt calls f.
func (f ScreenFillerFunc) ColorAt(p Point) (RGB, bool) { return f(p) }

// Masker is an optional interface a filler of either kind may implement
// to veto pixels before any further work, including the depth write,
// happens on them.
type Masker interface {
	ShouldDraw(p Point) bool
}

// screenShim adapts a public ScreenFiller to the rasterizer's callback
// type, honoring the Masker veto when the filler provides one.
type screenShim struct {
	filler ScreenFiller
}

func (s screenShim) ColorAt(p raster.Point) (raster.RGB, bool) {
	pp := Point{X: p.X, Y: p.Y}
	if m, ok := s.filler.(Masker); ok && !m.ShouldDraw(pp) {
		return raster.RGB{}, false
	}
	c, ok := s.filler.ColorAt(pp)
	return raster.RGB(c), ok
}
