package raster

import "errors"

// ErrDegenerateTriangle is returned when three points do not form a proper
// triangle: two of them coincide, or one lies on the line through the
// other two.
var ErrDegenerateTriangle = errors.New("raster: degenerate triangle")

// ErrApexOnSegment is returned when a glued triangle's free point lies on
// the line carrying its horizontal segment.
var ErrApexOnSegment = errors.New("raster: glued triangle apex lies on the segment line")

// Triangle is a 2D triangle with integer vertices. Construct it with
// NewTriangle or MustTriangle; both reject degenerate vertex sets, so a
// Triangle value always has three distinct, non-collinear vertices.
type Triangle struct {
	A, B, C Point
}

// NewTriangle validates the vertices and builds a triangle.
func NewTriangle(a, b, c Point) (Triangle, error) {
	if a == b || b == c || a == c {
		return Triangle{}, ErrDegenerateTriangle
	}
	if LineFromPoints(b, c).ContainsPoint(a) {
		return Triangle{}, ErrDegenerateTriangle
	}
	return Triangle{A: a, B: b, C: c}, nil
}

// MustTriangle is like NewTriangle but panics on degenerate input. It is
// meant for call sites that have already validated their vertices.
func MustTriangle(a, b, c Point) Triangle {
	t, err := NewTriangle(a, b, c)
	if err != nil {
		panic(err)
	}
	return t
}

// ysort returns the vertices ordered by ascending y.
func (t Triangle) ysort() (Point, Point, Point) {
	a, b, c := t.A, t.B, t.C
	if a.Y > b.Y {
		a, b = b, a
	}
	if b.Y > c.Y {
		b, c = c, b
	}
	if a.Y > b.Y {
		a, b = b, a
	}
	return a, b, c
}

// HorizontalSegment is a horizontal span between two pixels, stored in
// canonical left-to-right order.
type HorizontalSegment struct {
	left  Point
	width int
}

// HorizontalSegmentFromPoints builds a segment from its two endpoints,
// swapping them into canonical order if needed. It panics if the points do
// not share a y coordinate.
func HorizontalSegmentFromPoints(p, q Point) HorizontalSegment {
	if p.Y != q.Y {
		panic("raster: endpoints of a horizontal segment must share a y coordinate")
	}
	if p.X > q.X {
		p, q = q, p
	}
	return HorizontalSegment{left: p, width: q.X - p.X}
}

// Left returns the leftmost endpoint.
func (s HorizontalSegment) Left() Point { return s.left }

// Right returns the rightmost endpoint.
func (s HorizontalSegment) Right() Point {
	return Point{X: s.left.X + s.width, Y: s.left.Y}
}

// Y returns the row the segment lies on.
func (s HorizontalSegment) Y() int { return s.left.Y }

// Line returns the horizontal line carrying the segment.
func (s HorizontalSegment) Line() Line { return Horizontal(s.Y()) }

// GluedTriangle is a triangle decomposed into a horizontal base segment
// plus one free apex off that line. It is the atomic unit the scanline
// rasterizer fills: every triangle splits into at most two glued halves
// sharing their base.
type GluedTriangle struct {
	Segment HorizontalSegment
	Apex    Point
}

// NewGluedTriangle validates that the apex is off the segment's line.
func NewGluedTriangle(segment HorizontalSegment, apex Point) (GluedTriangle, error) {
	if segment.Line().ContainsPoint(apex) {
		return GluedTriangle{}, ErrApexOnSegment
	}
	return GluedTriangle{Segment: segment, Apex: apex}, nil
}

// MustGluedTriangle is like NewGluedTriangle but panics on invalid input.
func MustGluedTriangle(segment HorizontalSegment, apex Point) GluedTriangle {
	g, err := NewGluedTriangle(segment, apex)
	if err != nil {
		panic(err)
	}
	return g
}
