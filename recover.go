package cuboid

import "github.com/kodo-pp/cuboid/internal/raster"

// coordsAdapter turns an ObjectFiller into a per-pixel rasterizer
// callback by recovering, for every pixel of a projected triangle, the
// camera-local 3D point that projected onto it, and expressing that
// point over the surface's basis.
//
// Recovery is exact at the triangle's vertices and geometric elsewhere:
// each pixel is sent back through two plane/line intersections, first
// onto the base edge and then onto the vertex-to-base segment.
type coordsAdapter struct {
	filler ObjectFiller
	tri    Triangle3       // camera-local triangle
	scr    raster.Triangle // its pixel-space projection
	origin Point3          // camera-local basis origin
	u, v   Vec3            // camera-local basis vectors

	axes        axisPair
	cramerRecip float64
	vp          Viewport
	cam         Camera
}

func newCoordsAdapter(filler ObjectFiller, tri Triangle3, scr raster.Triangle, origin Point3, u, v Vec3, vp Viewport, cam Camera) *coordsAdapter {
	axes := bestAxisPair(u, v)
	return &coordsAdapter{
		filler:      filler,
		tri:         tri,
		scr:         scr,
		origin:      origin,
		u:           u,
		v:           v,
		axes:        axes,
		cramerRecip: 1 / Mat2FromColumns(axes.project(u), axes.project(v)).Det(),
		vp:          vp,
		cam:         cam,
	}
}

// axisPair names a pair of coordinate axes to flatten 3D vectors onto
// for the 2D Cramer solve.
type axisPair int

const (
	axesXY axisPair = iota
	axesXZ
	axesYZ
)

func (a axisPair) project(v Vec3) Vec2 {
	switch a {
	case axesXY:
		return Vec2{X: v.X, Y: v.Y}
	case axesXZ:
		return Vec2{X: v.X, Y: v.Z}
	}
	return Vec2{X: v.Y, Y: v.Z}
}

// bestAxisPair picks the component pair where the basis spans the widest
// area. A basis always degenerates on one pair when its plane contains a
// coordinate axis (a wall facing the camera dead on degenerates on xy),
// but it cannot degenerate on all three at once.
func bestAxisPair(u, v Vec3) axisPair {
	best, bestDet := axesXY, 0.0
	for _, a := range [...]axisPair{axesXY, axesXZ, axesYZ} {
		d := Mat2FromColumns(a.project(u), a.project(v)).Det()
		if d < 0 {
			d = -d
		}
		if d > bestDet {
			best, bestDet = a, d
		}
	}
	return best
}

// ColorAt recovers the pixel's basis coordinate and asks the filler.
func (ad *coordsAdapter) ColorAt(p raster.Point) (raster.RGB, bool) {
	c, ok := ad.filler.ColorAt(ad.basisCoordsAt(p))
	return raster.RGB(c), ok
}

// DepthAt returns the distance from the camera to the recovered point.
func (ad *coordsAdapter) DepthAt(p raster.Point) float64 {
	return ad.coordsAt(p).AsVec().Norm()
}

// ShouldDraw forwards the filler's Masker veto when it has one. Unlike
// returning ok = false from ColorAt, a veto here happens before the
// depth buffer is written, so masked-out pixels do not occlude geometry
// behind them.
func (ad *coordsAdapter) ShouldDraw(p raster.Point) bool {
	if m, ok := ad.filler.(Masker); ok {
		return m.ShouldDraw(Point{X: p.X, Y: p.Y})
	}
	return true
}

// basisCoordsAt expresses the recovered point over the basis (u, v)
// relative to the basis origin, solving the chosen component pair with
// Cramer's rule.
func (ad *coordsAdapter) basisCoordsAt(p raster.Point) PointF {
	s := ad.axes.project(ad.coordsAt(p).Sub(ad.origin))
	return PointF{
		X: Mat2FromColumns(s, ad.axes.project(ad.v)).Det() * ad.cramerRecip,
		Y: Mat2FromColumns(ad.axes.project(ad.u), s).Det() * ad.cramerRecip,
	}
}

// coordsAt recovers the camera-local point whose projection is the
// pixel p.
func (ad *coordsAdapter) coordsAt(p raster.Point) Point3 {
	// Projected vertices recover exactly, bypassing the numerical path.
	switch p {
	case ad.scr.A:
		return ad.tri.A
	case ad.scr.B:
		return ad.tri.B
	case ad.scr.C:
		return ad.tri.C
	}

	// Pivot: the point where the line from vertex A through p meets the
	// base edge BC, first on the screen, then lifted back to 3D over the
	// known endpoints B and C.
	baseLine := raster.LineFromPoints(ad.scr.B, ad.scr.C)
	pivot := baseLine.Intersect(raster.LineFromPoints(ad.scr.A, p))
	pivot3 := ad.linearUntranslate(pivot, ad.scr.B, ad.tri.B, ad.scr.C, ad.tri.C)
	if p == pivot {
		return pivot3
	}

	// Then p itself lies on the segment from A to the pivot, both of
	// whose 3D positions are now known.
	return ad.linearUntranslate(p, ad.scr.A, ad.tri.A, pivot, pivot3)
}

// linearUntranslate recovers the 3D position of a pixel p known to lie
// on the screen segment between a2 and b2, whose 3D positions a3 and b3
// are known. The recovered point is the intersection of the 3D line
// through a3 and b3 with the plane spanned by the viewing ray through p
// and the lifted perpendicular of the screen segment's direction.
func (ad *coordsAdapter) linearUntranslate(p, a2 raster.Point, a3 Point3, b2 raster.Point, b3 Point3) Point3 {
	line := MustLine3(a3, b3)

	origin := ad.ontoScreenPlane(p)
	perp := b2.Sub(a2).Perp()
	v1 := ad.ontoScreenPlane(raster.Point{X: perp.X, Y: perp.Y}).AsVec()
	v2 := origin.AsVec()

	pt, ok := MustPlane(origin, v1, v2).Intersect(line)
	if !ok {
		panic("cuboid: recovery plane is parallel to the recovered edge")
	}
	return pt
}

// ontoScreenPlane lifts a pixel onto the camera-local screen plane.
func (ad *coordsAdapter) ontoScreenPlane(p raster.Point) Point3 {
	return ad.cam.ontoScreenPlane(ad.vp.Untranslate(Point{X: p.X, Y: p.Y}))
}

// depthSource is what the depth proxy needs from its wrapped callback.
type depthSource interface {
	raster.ColorFunc
	DepthAt(p raster.Point) float64
	ShouldDraw(p raster.Point) bool
}

// depthProxy gates a per-pixel callback behind the depth buffer: a pixel
// is colored only when it is strictly nearer than everything drawn there
// before. Losing the depth test leaves both the pixel and the buffer
// untouched.
type depthProxy struct {
	inner depthSource
	depth *DepthBuffer
}

func (d *depthProxy) ColorAt(p raster.Point) (raster.RGB, bool) {
	if !d.inner.ShouldDraw(p) {
		return raster.RGB{}, false
	}
	if !d.depth.TryUpdate(p.X, p.Y, float32(d.inner.DepthAt(p))) {
		return raster.RGB{}, false
	}
	return d.inner.ColorAt(p)
}
