package cuboid

import "math"

// Vec3 is a 3D float64 displacement.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z} }

// Sub returns the difference of two vectors.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z} }

// Neg returns the opposite vector.
func (v Vec3) Neg() Vec3 { return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z} }

// Scale returns the vector scaled by k.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k} }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Norm returns the Euclidean length.
func (v Vec3) Norm() float64 { return math.Sqrt(v.NormSq()) }

// NormSq returns the squared Euclidean length.
func (v Vec3) NormSq() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// ApproxZero reports whether the vector is negligibly short.
func (v Vec3) ApproxZero() bool { return v.NormSq() < 1e-10 }

// AsPoint reinterprets the vector as a position.
func (v Vec3) AsPoint() Point3 { return Point3{X: v.X, Y: v.Y, Z: v.Z} }

// OntoXY projects the vector onto the xy plane, dropping z.
func (v Vec3) OntoXY() Vec2 { return Vec2{X: v.X, Y: v.Y} }

// OntoXZ zeroes the vertical component, keeping the vector 3D.
func (v Vec3) OntoXZ() Vec3 { return Vec3{X: v.X, Y: 0, Z: v.Z} }

// Azimuth returns the horizontal rotation of the vector about the
// vertical (y) axis: zero along +x, growing toward +z.
func (v Vec3) Azimuth() Angle {
	return Radians(math.Atan2(v.Z, v.X))
}

// VAngle returns the elevation of the vector above the horizontal plane,
// negative when the vector points down.
func (v Vec3) VAngle() Angle {
	abs := v.AngleWith(v.OntoXZ())
	if v.Y < 0 {
		return -abs
	}
	return abs
}

// AngleWith returns the unsigned angle between two vectors.
func (v Vec3) AngleWith(o Vec3) Angle {
	cos := v.Dot(o) / (v.Norm() * o.Norm())
	// Rounding can push the ratio just outside [-1, 1], where Acos is NaN.
	cos = math.Max(-1, math.Min(1, cos))
	return Radians(math.Acos(cos))
}

// Rotate rotates the vector by deltaAzimuth about the vertical axis and
// tilts it by deltaVAngle. The tilt is applied in the vector's own
// vertical plane: the vector is first swung to azimuth zero, tilted
// there, then swung to its new azimuth.
func (v Vec3) Rotate(deltaAzimuth, deltaVAngle Angle) Vec3 {
	oldAzimuth := v.Azimuth()
	north := v.rotateXZ(-oldAzimuth)
	tilted := north.rotateXY(deltaVAngle)
	return tilted.rotateXZ(oldAzimuth + deltaAzimuth)
}

// rotateXZ rotates about the y axis.
func (v Vec3) rotateXZ(a Angle) Vec3 {
	w := a.RotationMatrix().Apply(Vec2{X: v.X, Y: v.Z})
	return Vec3{X: w.X, Y: v.Y, Z: w.Y}
}

// rotateXY rotates about the z axis.
func (v Vec3) rotateXY(a Angle) Vec3 {
	w := a.RotationMatrix().Apply(Vec2{X: v.X, Y: v.Y})
	return Vec3{X: w.X, Y: w.Y, Z: v.Z}
}

// Point3 is a 3D position with float64 coordinates.
type Point3 struct {
	X, Y, Z float64
}

// Add returns the point displaced by v.
func (p Point3) Add(v Vec3) Point3 { return Point3{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z} }

// Sub returns the displacement from q to p.
func (p Point3) Sub(q Point3) Vec3 { return Vec3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z} }

// SubVec returns the point displaced by -v.
func (p Point3) SubVec(v Vec3) Point3 { return Point3{X: p.X - v.X, Y: p.Y - v.Y, Z: p.Z - v.Z} }

// AsVec reinterprets the position as a displacement from the origin.
func (p Point3) AsVec() Vec3 { return Vec3{X: p.X, Y: p.Y, Z: p.Z} }

// liesOn reports whether p lies on the line through a and b, up to an
// angular tolerance. The test compares the sine of the angle the chords
// to a and b subtend at p, via their cross product; near-parallel and
// near-antiparallel chords both report true, so exact collinearity never
// slips through the rounding noise an angle comparison would carry.
func (p Point3) liesOn(a, b Point3) bool {
	u := a.Sub(p)
	w := b.Sub(p)
	return u.Cross(w).NormSq() < 1e-20*u.NormSq()*w.NormSq()
}
