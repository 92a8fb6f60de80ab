package cuboid

// projectionBoundary is the conservative visibility boundary used by the
// frustum clipper. It sits slightly in front of the projector's own x > 0
// precondition so that split points land strictly inside the projectable
// half-space instead of on its numerically fragile edge.
const projectionBoundary = 1e-3

// Camera converts world-space points into normalized screen coordinates
// under an angular projection: a point's azimuth and vertical angle are
// mapped through tan(angle) * cot(fov/2) * 0.5 + 0.5 rather than a linear
// perspective divide. The camera is an immutable value; build one per
// frame and pass it wherever it is needed.
type Camera struct {
	position Point3
	azimuth  Angle
	vangle   Angle
	hHalfCot float64
	vHalfCot float64
}

// NewCamera builds a camera at the given position, looking along the
// azimuth with the given vertical tilt, with the given horizontal and
// vertical fields of view.
func NewCamera(position Point3, azimuth, vangle, hfov, vfov Angle) Camera {
	return Camera{
		position: position,
		azimuth:  azimuth,
		vangle:   vangle,
		hHalfCot: 0.5 / (hfov * 0.5).Tan(),
		vHalfCot: 0.5 / (vfov * 0.5).Tan(),
	}
}

// Adjust translates a world-space point into camera-local coordinates:
// the camera sits at the origin looking along +x.
func (c Camera) Adjust(p Point3) Point3 {
	return p.Sub(c.position).Rotate(-c.azimuth, -c.vangle).AsPoint()
}

// CanProject reports whether a camera-local point is safely in front of
// the camera. The check is deliberately stricter than Project's own x > 0
// precondition; the frustum clipper uses it so that borderline points are
// split away instead of fed into the projector.
func (c Camera) CanProject(adjusted Point3) bool {
	return adjusted.X > projectionBoundary
}

// Project maps a camera-local point to a normalized screen coordinate in
// [0,1]^2 and its distance from the camera.
//
// The point must be strictly in front of the camera (x > 0). Violating
// this is a programming error and panics: excluding out-of-view geometry
// gracefully is the clipper's job, not the projector's.
func (c Camera) Project(adjusted Point3) (PointF, float64) {
	if adjusted.X <= 0 {
		panic("cuboid: a point behind the camera cannot be projected onto the screen")
	}

	v := adjusted.AsVec()
	coord := PointF{
		X: v.Azimuth().Tan()*c.hHalfCot + 0.5,
		Y: v.VAngle().Tan()*c.vHalfCot + 0.5,
	}
	return coord, v.Norm()
}

// ontoScreenPlane lifts a viewport-agnostic screen coordinate onto the
// camera-local screen plane, the plane x = cot(hfov/2)/2 that screen
// rays are drawn through during coordinate recovery. The lift inverts
// Project up to the tan/linear difference along each axis, so a lifted
// point is always on the same side of the view axis as the points that
// projected there.
func (c Camera) ontoScreenPlane(p PointF) Point3 {
	return Point3{
		X: c.hHalfCot,
		Y: p.Y - 0.5,
		Z: p.X - 0.5,
	}
}
