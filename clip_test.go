package cuboid

import "testing"

// TestClipTriangleCases checks the three clipping outcomes: kept whole,
// discarded, and cut against the visibility boundary.
func TestClipTriangleCases(t *testing.T) {
	cam := NewCamera(Point3{}, 0, 0, QuarterTurn, QuarterTurn)
	tests := []struct {
		name      string
		tri       Triangle3
		wantCount int
	}{
		{
			"fully in front",
			MustTriangle3(Point3{X: 1}, Point3{X: 2, Z: 1}, Point3{X: 2, Y: 1}),
			1,
		},
		{
			"fully behind",
			MustTriangle3(Point3{X: -1}, Point3{X: -2, Z: 1}, Point3{X: -2, Y: 1}),
			0,
		},
		{
			"one vertex in front",
			MustTriangle3(Point3{X: 1}, Point3{X: -1, Y: 1}, Point3{X: -1, Z: 1}),
			1,
		},
		{
			"two vertices in front",
			MustTriangle3(Point3{X: 1}, Point3{X: 1, Y: 1}, Point3{X: -1, Z: 1}),
			2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cam.ClipTriangle(tt.tri)
			if len(got) != tt.wantCount {
				t.Fatalf("ClipTriangle() returned %d triangles, want %d", len(got), tt.wantCount)
			}
			for _, tri := range got {
				for _, v := range []Point3{tri.A, tri.B, tri.C} {
					if v.X < projectionBoundary-1e-12 {
						t.Errorf("emitted vertex %+v is behind the boundary", v)
					}
				}
			}
		})
	}
}

// TestClipTriangleKeepsWholeTriangle checks that an unclipped triangle
// comes back unchanged, not rebuilt.
func TestClipTriangleKeepsWholeTriangle(t *testing.T) {
	cam := NewCamera(Point3{}, 0, 0, QuarterTurn, QuarterTurn)
	tri := MustTriangle3(Point3{X: 3, Y: 1}, Point3{X: 2, Z: 1}, Point3{X: 4, Y: -1})
	got := cam.ClipTriangle(tri)
	if len(got) != 1 || got[0] != tri {
		t.Fatalf("ClipTriangle() = %+v, want the input triangle unchanged", got)
	}
}

// TestClipTriangleCutLandsOnBoundary checks that split points sit exactly
// on the visibility boundary plane.
func TestClipTriangleCutLandsOnBoundary(t *testing.T) {
	cam := NewCamera(Point3{}, 0, 0, QuarterTurn, QuarterTurn)
	tri := MustTriangle3(Point3{X: 1}, Point3{X: -1, Y: 1}, Point3{X: -1, Z: 1})
	got := cam.ClipTriangle(tri)
	if len(got) != 1 {
		t.Fatalf("ClipTriangle() returned %d triangles, want 1", len(got))
	}

	onBoundary := 0
	for _, v := range []Point3{got[0].A, got[0].B, got[0].C} {
		if almostEq(v.X, projectionBoundary, 1e-12) {
			onBoundary++
		}
	}
	if onBoundary != 2 {
		t.Errorf("%d vertices on the boundary plane, want 2 (got %+v)", onBoundary, got[0])
	}
}

// TestClipTrianglePreservesFrontVertices checks that vertices already in
// front survive the cut untouched.
func TestClipTrianglePreservesFrontVertices(t *testing.T) {
	cam := NewCamera(Point3{}, 0, 0, QuarterTurn, QuarterTurn)
	front1 := Point3{X: 1}
	front2 := Point3{X: 1, Y: 1}
	tri := MustTriangle3(front1, front2, Point3{X: -1, Z: 1})

	seen := map[Point3]bool{}
	for _, piece := range cam.ClipTriangle(tri) {
		for _, v := range []Point3{piece.A, piece.B, piece.C} {
			seen[v] = true
		}
	}
	if !seen[front1] || !seen[front2] {
		t.Errorf("front vertices lost in the cut: %v", seen)
	}
}
