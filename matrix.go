package cuboid

// Mat2 is a 2x2 matrix in row-major order:
//
//	| A  B |
//	| C  D |
type Mat2 struct {
	A, B float64
	C, D float64
}

// Mat2FromColumns builds a matrix whose columns are the given vectors.
func Mat2FromColumns(c0, c1 Vec2) Mat2 {
	return Mat2{A: c0.X, B: c1.X, C: c0.Y, D: c1.Y}
}

// Det returns the determinant.
func (m Mat2) Det() float64 {
	return m.A*m.D - m.B*m.C
}

// Apply multiplies the matrix with a column vector.
func (m Mat2) Apply(v Vec2) Vec2 {
	return Vec2{
		X: m.A*v.X + m.B*v.Y,
		Y: m.C*v.X + m.D*v.Y,
	}
}
