package raster

// Line is a 2D line in the form a*x + b*y + c = 0 with exact integer
// coefficients. Exact representation keeps triangle edges free of the
// accumulated floating-point error a slope/intercept form would pick up,
// so adjacent triangles sharing an edge rasterize without seams.
type Line struct {
	a, b, c int
}

// LineFromPoints builds the line through two distinct points.
// It panics if p == q, since infinitely many lines pass through one point.
func LineFromPoints(p, q Point) Line {
	if p == q {
		panic("raster: more than one line passes through two coinciding points")
	}
	if p.X == q.X {
		return Line{a: 1, b: 0, c: -p.X}
	}
	return Line{
		a: p.Y - q.Y,
		b: q.X - p.X,
		c: p.X*q.Y - p.Y*q.X,
	}
}

// Horizontal returns the horizontal line at the given y.
func Horizontal(y int) Line {
	return Line{a: 0, b: 1, c: -y}
}

// Intersect returns the intersection point of two lines, computed with
// Cramer's rule on 64-bit widened coefficients. Non-integer intersections
// truncate toward zero. The caller must not pass parallel lines: the
// denominator would be zero.
func (l Line) Intersect(m Line) Point {
	la, lb, lc := int64(l.a), int64(l.b), int64(l.c)
	ma, mb, mc := int64(m.a), int64(m.b), int64(m.c)
	xNum := lc*mb - lb*mc
	yNum := la*mc - lc*ma
	denom := lb*ma - la*mb
	return Point{X: int(xNum / denom), Y: int(yNum / denom)}
}

// ContainsPoint reports whether p lies exactly on the line.
func (l Line) ContainsPoint(p Point) bool {
	return int64(l.a)*int64(p.X)+int64(l.b)*int64(p.Y)+int64(l.c) == 0
}

// Eq reports whether two lines describe the same set of points. The
// coefficient triples are compared after canonicalization (reduction by
// their GCD with a fixed sign convention), so lines built from the same
// points in either order compare equal.
func (l Line) Eq(m Line) bool {
	return l.canonical() == m.canonical()
}

// canonical reduces the coefficients by their common divisor and makes the
// first nonzero coefficient positive.
func (l Line) canonical() Line {
	g := gcd(gcd(abs(l.a), abs(l.b)), abs(l.c))
	if g == 0 {
		return l
	}
	a, b, c := l.a/g, l.b/g, l.c/g
	lead := a
	if lead == 0 {
		lead = b
	}
	if lead == 0 {
		lead = c
	}
	if lead < 0 {
		a, b, c = -a, -b, -c
	}
	return Line{a: a, b: b, c: c}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
