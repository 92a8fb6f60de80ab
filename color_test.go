package cuboid

import (
	"image/color"
	"testing"
)

// TestFromColor checks conversion from the standard color interface.
func TestFromColor(t *testing.T) {
	got := FromColor(color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff})
	want := RGB{R: 0x12, G: 0x34, B: 0x56}
	if got != want {
		t.Errorf("FromColor() = %+v, want %+v", got, want)
	}
	if got := FromColor(White.Color()); got != White {
		t.Errorf("round trip through color.Color = %+v, want white", got)
	}
}

// TestLerp checks the endpoints and midpoint of a blend.
func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want RGB
	}{
		{"start", 0, Black},
		{"end", 1, RGB{R: 200, G: 100, B: 50}},
		{"midpoint", 0.5, RGB{R: 100, G: 50, B: 25}},
	}
	to := RGB{R: 200, G: 100, B: 50}
	for _, tt := range tests {
		t.Run(tt.name, func(t2 *testing.T) {
			if got := Black.Lerp(to, tt.t); got != tt.want {
				t2.Errorf("Lerp(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

// TestBGRXToRGBA checks channel reordering and the forced opaque alpha.
func TestBGRXToRGBA(t *testing.T) {
	src := []byte{
		0x56, 0x34, 0x12, 0x00, // BGRX pixel
		0xff, 0x00, 0x00, 0x99, // pure blue, junk pad
	}
	dst := make([]byte, len(src))
	BGRXToRGBA(dst, src)

	want := []byte{
		0x12, 0x34, 0x56, 0xff,
		0x00, 0x00, 0xff, 0xff,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %#x, want %#x", i, dst[i], want[i])
		}
	}
}

// TestBGRXToRGBASizeMismatch checks the size precondition.
func TestBGRXToRGBASizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("mismatched buffer sizes did not panic")
		}
	}()
	BGRXToRGBA(make([]byte, 4), make([]byte, 8))
}
