package cuboid

// segmentClass describes how a camera-local segment relates to the
// visibility boundary.
type segmentClass int

const (
	// segFront: both endpoints are projectable.
	segFront segmentClass = iota
	// segSplit: exactly one endpoint is projectable; the segment crosses
	// the boundary.
	segSplit
	// segBehind: neither endpoint is projectable.
	segBehind
)

// classifySegment classifies the segment from a to b against the
// visibility boundary. For segSplit it also returns the point where the
// segment crosses the plane x = projectionBoundary.
func (c Camera) classifySegment(a, b Point3) (segmentClass, Point3) {
	canA := c.CanProject(a)
	canB := c.CanProject(b)
	switch {
	case canA && canB:
		return segFront, Point3{}
	case !canA && !canB:
		return segBehind, Point3{}
	}
	t := (projectionBoundary - a.X) / (b.X - a.X)
	return segSplit, a.Add(b.Sub(a).Scale(t))
}

// ClipTriangle cuts a camera-local triangle against the visibility
// boundary, returning the projectable pieces: the whole triangle when it
// is fully in front, up to two sub-triangles when the boundary crosses
// it, and nothing when it is fully behind.
//
// Pieces that collapse to degenerate triangles under the cut are
// silently discarded.
func (c Camera) ClipTriangle(t Triangle3) []Triangle3 {
	// Order the vertices so that a is the front-most one. Then the edge
	// bc decides the case: if bc is in front the whole triangle is, and
	// if bc is behind, only the corner at a may poke out.
	a, b, cc := xsortDesc(t)

	classBC, isectBC := c.classifySegment(b, cc)
	switch classBC {
	case segFront:
		return []Triangle3{t}
	case segSplit:
		// b is in front of c, so a and b are visible and only the
		// corner at c is cut off, splitting the quad a-b-isectBC-isectAC
		// into two triangles.
		classAC, isectAC := c.classifySegment(a, cc)
		if classAC != segSplit {
			panic("cuboid: frustum clip reached an impossible vertex classification")
		}
		out := make([]Triangle3, 0, 2)
		if t1, err := NewTriangle3(a, isectAC, isectBC); err == nil {
			out = append(out, t1)
		}
		if t2, err := NewTriangle3(a, b, isectBC); err == nil {
			out = append(out, t2)
		}
		return out
	default:
		classAB, isectAB := c.classifySegment(a, b)
		classAC, isectAC := c.classifySegment(a, cc)
		switch {
		case classAB == segSplit && classAC == segSplit:
			t1, err := NewTriangle3(a, isectAB, isectAC)
			if err != nil {
				return nil
			}
			return []Triangle3{t1}
		case classAB == segBehind && classAC == segBehind:
			return nil
		}
		panic("cuboid: frustum clip reached an impossible vertex classification")
	}
}

// xsortDesc returns the triangle's vertices ordered by descending
// camera-local depth coordinate x.
func xsortDesc(t Triangle3) (Point3, Point3, Point3) {
	a, b, c := t.A, t.B, t.C
	if a.X < b.X {
		a, b = b, a
	}
	if b.X < c.X {
		b, c = c, b
	}
	if a.X < b.X {
		a, b = b, a
	}
	return a, b, c
}
