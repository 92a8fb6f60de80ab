package cuboid

import "testing"

// TestPlaneFromTriangle checks that all three vertices satisfy the plane
// equation.
func TestPlaneFromTriangle(t *testing.T) {
	tri := MustTriangle3(
		Point3{X: 1, Y: 0, Z: 0},
		Point3{X: 0, Y: 2, Z: 0},
		Point3{X: 0, Y: 0, Z: 3},
	)
	p := PlaneFromTriangle(tri)
	for _, v := range []Point3{tri.A, tri.B, tri.C} {
		if got := p.A*v.X + p.B*v.Y + p.C*v.Z + p.D; !almostEq(got, 0, 1e-9) {
			t.Errorf("vertex %+v off the plane by %v", v, got)
		}
	}
}

// TestNewPlaneCollinear checks rejection of a collinear spanning basis.
func TestNewPlaneCollinear(t *testing.T) {
	_, err := NewPlane(Point3{}, Vec3{X: 1, Y: 2}, Vec3{X: 2, Y: 4})
	if err != ErrCollinearBasis {
		t.Fatalf("NewPlane with collinear vectors: error = %v, want ErrCollinearBasis", err)
	}
}

// TestPlaneIntersectLine checks a plain crossing and the parallel case.
func TestPlaneIntersectLine(t *testing.T) {
	// The plane z = 2.
	plane := MustPlane(Point3{Z: 2}, Vec3{X: 1}, Vec3{Y: 1})

	crossing := MustLine3(Point3{}, Point3{X: 1, Y: 1, Z: 1})
	got, ok := plane.Intersect(crossing)
	if !ok {
		t.Fatal("crossing line reported as parallel")
	}
	want := Point3{X: 2, Y: 2, Z: 2}
	if !point3AlmostEq(got, want, 1e-9) {
		t.Errorf("Intersect() = %+v, want %+v", got, want)
	}

	parallel := MustLine3(Point3{}, Point3{X: 1, Y: 1})
	if _, ok := plane.Intersect(parallel); ok {
		t.Error("in-plane-direction line reported an intersection")
	}
}

// TestPlaneProjectWithBasis checks perpendicular projection expressed
// over an explicit basis.
func TestPlaneProjectWithBasis(t *testing.T) {
	// The xy plane with the standard basis; projection just drops z.
	plane := MustPlane(Point3{}, Vec3{X: 1}, Vec3{Y: 1})
	got := plane.ProjectWithBasis(Point3{X: 3, Y: -2, Z: 7}, Vec3{X: 1}, Vec3{Y: 1})
	if !almostEq(got.X, 3, 1e-9) || !almostEq(got.Y, -2, 1e-9) {
		t.Errorf("ProjectWithBasis() = %+v, want (3,-2)", got)
	}
}

// TestNewLine3Coincident checks rejection of a line through one point.
func TestNewLine3Coincident(t *testing.T) {
	p := Point3{X: 1, Y: 2, Z: 3}
	if _, err := NewLine3(p, p); err != ErrCoincidentPoints {
		t.Fatalf("NewLine3(p, p): error = %v, want ErrCoincidentPoints", err)
	}
}
