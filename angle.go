package cuboid

import "math"

// Angle is a plane angle stored in radians. Plain float64 arithmetic works
// on it directly; the named type keeps radians from being confused with
// other scalars in camera and rotation signatures.
type Angle float64

// QuarterTurn is a 90 degree angle.
const QuarterTurn Angle = math.Pi / 2

// Radians builds an angle from a radian value.
func Radians(v float64) Angle { return Angle(v) }

// Degrees builds an angle from a degree value.
func Degrees(v float64) Angle { return Angle(v * math.Pi / 180) }

// Rad returns the angle in radians.
func (a Angle) Rad() float64 { return float64(a) }

// Deg returns the angle in degrees.
func (a Angle) Deg() float64 { return float64(a) * 180 / math.Pi }

// Normalized wraps the angle into (-pi, pi].
func (a Angle) Normalized() Angle {
	r := math.Mod(a.Rad(), 2*math.Pi)
	if r > math.Pi {
		r -= 2 * math.Pi
	} else if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return Angle(r)
}

// Positive wraps the angle into [0, 2*pi).
func (a Angle) Positive() Angle {
	r := math.Mod(a.Rad(), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return Angle(r)
}

// Div returns the ratio of two angles.
func (a Angle) Div(b Angle) float64 { return float64(a) / float64(b) }

// Tan returns the tangent of the angle.
func (a Angle) Tan() float64 { return math.Tan(a.Rad()) }

// RotationMatrix returns the 2x2 matrix rotating by the angle.
func (a Angle) RotationMatrix() Mat2 {
	sin, cos := math.Sincos(a.Rad())
	return Mat2{A: cos, B: -sin, C: sin, D: cos}
}
