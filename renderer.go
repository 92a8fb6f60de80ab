package cuboid

import "github.com/kodo-pp/cuboid/internal/raster"

// Renderer draws 3D triangles into a caller-supplied BGRX pixel buffer.
// It owns a depth buffer, so surfaces may be drawn in any order; nearer
// geometry wins per pixel.
//
// The renderer is single threaded. Build one per frame buffer, set the
// camera for the frame, draw, and present the buffer.
type Renderer struct {
	ras   *raster.Rasterizer
	depth *DepthBuffer
	cam   Camera
	vp    Viewport
}

// NewRenderer wraps pix, which must hold at least width*height*4 bytes,
// laid out row-major with 4 bytes per pixel in B, G, R, unused order.
func NewRenderer(pix []byte, width, height int, cam Camera) *Renderer {
	return &Renderer{
		ras:   raster.NewRasterizer(pix, width, height),
		depth: NewDepthBuffer(width, height),
		cam:   cam,
		vp:    Viewport{Width: width, Height: height},
	}
}

// SetCamera replaces the camera for subsequent draws.
func (r *Renderer) SetCamera(cam Camera) { r.cam = cam }

// Camera returns the current camera.
func (r *Renderer) Camera() Camera { return r.cam }

// ClearDepth resets the depth buffer, starting a new frame. The pixel
// buffer itself is the caller's to clear.
func (r *Renderer) ClearDepth() { r.depth.Clear() }

// FillTriangle draws a world-space triangle, coloring each pixel by its
// recovered coordinate over the basis (A, B-A, C-A): the filler sees
// (0,0) at vertex A, (1,0) at B and (0,1) at C.
func (r *Renderer) FillTriangle(t Triangle3, filler ObjectFiller) {
	r.FillTriangleWithBasis(t, t.A, t.B.Sub(t.A), t.C.Sub(t.A), filler)
}

// FillTriangleWithBasis draws a world-space triangle, coloring each
// pixel by its recovered coordinate over an explicit basis. The basis
// must span the triangle's plane; it does not have to be anchored at a
// vertex.
func (r *Renderer) FillTriangleWithBasis(t Triangle3, origin Point3, u, v Vec3, filler ObjectFiller) {
	adj := MustTriangle3(r.cam.Adjust(t.A), r.cam.Adjust(t.B), r.cam.Adjust(t.C))

	// The basis moves into camera space as point differences, so the
	// adjusted triangle's vertices keep their exact basis coordinates.
	adjOrigin := r.cam.Adjust(origin)
	adjU := r.cam.Adjust(origin.Add(u)).Sub(adjOrigin)
	adjV := r.cam.Adjust(origin.Add(v)).Sub(adjOrigin)

	clipped := r.cam.ClipTriangle(adj)
	switch len(clipped) {
	case 0:
		Logger().Debug("triangle clipped away", "triangle", t)
		return
	case 2:
		Logger().Debug("triangle split on the visibility boundary", "triangle", t)
	}
	for _, sub := range clipped {
		r.fillProjectable(sub, adjOrigin, adjU, adjV, filler)
	}
}

// FillParallelogram draws the parallelogram spanned by u and v at
// origin as two triangles sharing one basis, so the filler sees a
// single continuous coordinate space with (1,1) at the far corner.
func (r *Renderer) FillParallelogram(origin Point3, u, v Vec3, filler ObjectFiller) {
	near := origin
	right := origin.Add(u)
	up := origin.Add(v)
	far := origin.Add(u).Add(v)

	r.FillTriangleWithBasis(MustTriangle3(near, right, up), origin, u, v, filler)
	r.FillTriangleWithBasis(MustTriangle3(right, up, far), origin, u, v, filler)
}

// FillTriangleScreen draws a world-space triangle colored by raw screen
// position, skipping coordinate recovery and depth testing. It is meant
// for backdrops and overlays that should not interact with the scene's
// depth.
func (r *Renderer) FillTriangleScreen(t Triangle3, filler ScreenFiller) {
	adj := MustTriangle3(r.cam.Adjust(t.A), r.cam.Adjust(t.B), r.cam.Adjust(t.C))
	for _, sub := range r.cam.ClipTriangle(adj) {
		scr, ok := r.projectTriangle(sub)
		if !ok {
			continue
		}
		r.ras.FillTriangle(scr, screenShim{filler: filler})
	}
}

// fillProjectable rasterizes one fully projectable camera-local triangle
// through the recovery adapter and the depth buffer.
func (r *Renderer) fillProjectable(t Triangle3, origin Point3, u, v Vec3, filler ObjectFiller) {
	scr, ok := r.projectTriangle(t)
	if !ok {
		// The triangle collapsed to under a pixel; nothing to draw.
		return
	}
	ad := newCoordsAdapter(filler, t, scr, origin, u, v, r.vp, r.cam)
	r.ras.FillTriangle(scr, &depthProxy{inner: ad, depth: r.depth})
}

// projectTriangle projects a camera-local triangle onto the raster. ok
// is false when the projected vertices no longer form a proper triangle.
func (r *Renderer) projectTriangle(t Triangle3) (raster.Triangle, bool) {
	tri, err := raster.NewTriangle(r.projectPoint(t.A), r.projectPoint(t.B), r.projectPoint(t.C))
	return tri, err == nil
}

func (r *Renderer) projectPoint(p Point3) raster.Point {
	coord, _ := r.cam.Project(p)
	pp := r.vp.Translate(coord)
	return raster.Point{X: pp.X, Y: pp.Y}
}
