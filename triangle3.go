package cuboid

import "errors"

// ErrDegenerateTriangle is returned when three 3D points do not span a
// proper triangle: two of them coincide, or one lies on the line through
// the other two (within the angular tolerance of Point3 collinearity).
var ErrDegenerateTriangle = errors.New("cuboid: degenerate triangle")

// Triangle3 is a 3D triangle. Construct it with NewTriangle3 or
// MustTriangle3; both reject degenerate vertex sets.
type Triangle3 struct {
	A, B, C Point3
}

// NewTriangle3 validates the vertices and builds a triangle.
func NewTriangle3(a, b, c Point3) (Triangle3, error) {
	if a == b || b == c || a == c {
		return Triangle3{}, ErrDegenerateTriangle
	}
	if a.liesOn(b, c) || b.liesOn(a, c) || c.liesOn(a, b) {
		return Triangle3{}, ErrDegenerateTriangle
	}
	return Triangle3{A: a, B: b, C: c}, nil
}

// MustTriangle3 is like NewTriangle3 but panics on degenerate input. It
// is meant for call sites that have already validated their vertices.
func MustTriangle3(a, b, c Point3) Triangle3 {
	t, err := NewTriangle3(a, b, c)
	if err != nil {
		panic(err)
	}
	return t
}
