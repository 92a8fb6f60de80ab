package cuboid

// Point is an integer pixel-space location.
type Point struct {
	X, Y int
}

// PointF is a 2D point with float64 coordinates. It serves double duty as
// a viewport-agnostic screen coordinate in [0,1]^2 and as a basis
// coordinate handed to object-space fillers.
type PointF struct {
	X, Y float64
}

// Vec2 is a 2D float64 displacement.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns the difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns the vector scaled by k.
func (v Vec2) Scale(k float64) Vec2 { return Vec2{X: v.X * k, Y: v.Y * k} }

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }
