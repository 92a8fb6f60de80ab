package cuboid

import "errors"

// ErrCollinearBasis is returned when a plane is requested from two
// collinear spanning vectors, which do not determine it uniquely.
var ErrCollinearBasis = errors.New("cuboid: plane is not uniquely determined by collinear vectors")

// ErrCoincidentPoints is returned when a 3D line is requested through two
// coinciding points.
var ErrCoincidentPoints = errors.New("cuboid: more than one line passes through two coinciding points")

// Plane is a 3D plane in the form A*x + B*y + C*z + D = 0.
type Plane struct {
	A, B, C, D float64
}

// PlaneFromTriangle returns the plane carrying a triangle, with
// coefficients from the cofactor expansion of the vertex determinant.
func PlaneFromTriangle(t Triangle3) Plane {
	p1, p2, p3 := t.A, t.B, t.C
	d := p1.X*p2.Y*p3.Z +
		p2.X*p3.Y*p1.Z +
		p3.X*p1.Y*p2.Z -
		p3.X*p2.Y*p1.Z -
		p1.X*p3.Y*p2.Z -
		p2.X*p1.Y*p3.Z

	a := (p2.Y-p3.Y)*p1.Z - (p1.Y-p3.Y)*p2.Z + (p1.Y-p2.Y)*p3.Z
	b := (p2.Z-p3.Z)*p1.X - (p1.Z-p3.Z)*p2.X + (p1.Z-p2.Z)*p3.X
	c := (p2.X-p3.X)*p1.Y - (p1.X-p3.X)*p2.Y + (p1.X-p2.X)*p3.Y
	return Plane{A: a, B: b, C: c, D: d}
}

// NewPlane builds the plane through origin spanned by two vectors.
func NewPlane(origin Point3, v1, v2 Vec3) (Plane, error) {
	t, err := NewTriangle3(origin, origin.Add(v1), origin.Add(v2))
	if err != nil {
		return Plane{}, ErrCollinearBasis
	}
	return PlaneFromTriangle(t), nil
}

// MustPlane is like NewPlane but panics on collinear spanning vectors.
// Supplying a valid basis is the caller's responsibility.
func MustPlane(origin Point3, v1, v2 Vec3) Plane {
	p, err := NewPlane(origin, v1, v2)
	if err != nil {
		panic(err)
	}
	return p
}

// ParallelTo reports whether a direction lies (numerically) within the
// plane, i.e. is perpendicular to its normal.
func (p Plane) ParallelTo(v Vec3) bool {
	d := p.A*v.X + p.B*v.Y + p.C*v.Z
	return d < 1e-12 && d > -1e-12
}

// Intersect returns the point where a line crosses the plane. ok is false
// when the line is parallel to the plane and no unique intersection
// exists.
func (p Plane) Intersect(l Line3) (Point3, bool) {
	if p.ParallelTo(l.Dir()) {
		return Point3{}, false
	}
	o := l.Origin()
	v := l.Dir()
	k := -(p.A*o.X + p.B*o.Y + p.C*o.Z + p.D) / (p.A*v.X + p.B*v.Y + p.C*v.Z)
	return o.Add(v.Scale(k)), true
}

// ProjectWithBasis drops a point perpendicularly onto the plane and
// expresses the foot as a coordinate over the basis (u, v), solving the
// xy components with Cramer's rule. The basis vectors must span the plane
// and must not project onto collinear xy directions.
func (p Plane) ProjectWithBasis(pt Point3, u, v Vec3) PointF {
	t := -(p.A*pt.X + p.B*pt.Y + p.C*pt.Z + p.D) / (p.A*p.A + p.B*p.B + p.C*p.C)
	s := Vec2{X: pt.X + p.A*t, Y: pt.Y + p.B*t}

	uXY := u.OntoXY()
	vXY := v.OntoXY()
	recip := 1 / Mat2FromColumns(uXY, vXY).Det()
	return PointF{
		X: Mat2FromColumns(s, vXY).Det() * recip,
		Y: Mat2FromColumns(uXY, s).Det() * recip,
	}
}

// Line3 is a 3D line through an origin point along a direction.
type Line3 struct {
	origin Point3
	dir    Vec3
}

// NewLine3 builds the line through two distinct points.
func NewLine3(a, b Point3) (Line3, error) {
	if a.Sub(b).ApproxZero() {
		return Line3{}, ErrCoincidentPoints
	}
	return Line3{origin: a, dir: b.Sub(a)}, nil
}

// MustLine3 is like NewLine3 but panics on coinciding points.
func MustLine3(a, b Point3) Line3 {
	l, err := NewLine3(a, b)
	if err != nil {
		panic(err)
	}
	return l
}

// Origin returns a point on the line.
func (l Line3) Origin() Point3 { return l.origin }

// Dir returns the line's direction (not normalized).
func (l Line3) Dir() Vec3 { return l.dir }
