package cuboid

import "math"

// DepthBuffer keeps the distance of the nearest drawn point per pixel so
// that nearer geometry overwrites farther geometry regardless of draw
// order. A fresh buffer holds +Inf everywhere.
type DepthBuffer struct {
	values []float32
	width  int
	height int
}

// NewDepthBuffer allocates a cleared width-by-height depth buffer.
func NewDepthBuffer(width, height int) *DepthBuffer {
	d := &DepthBuffer{
		values: make([]float32, width*height),
		width:  width,
		height: height,
	}
	d.Clear()
	return d
}

// Clear resets every pixel to +Inf, making the whole buffer writable
// again.
func (d *DepthBuffer) Clear() {
	inf := float32(math.Inf(1))
	for i := range d.values {
		d.values[i] = inf
	}
}

// InBounds reports whether the pixel lies within the buffer.
func (d *DepthBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < d.width && y >= 0 && y < d.height
}

// TryUpdate records value at (x, y) if it is strictly nearer than the
// stored depth and reports whether it did. Pixels outside the buffer are
// never updated. A value equal to the stored depth loses: the first
// surface drawn at a given depth keeps the pixel.
func (d *DepthBuffer) TryUpdate(x, y int, value float32) bool {
	if !d.InBounds(x, y) {
		return false
	}
	i := y*d.width + x
	if value >= d.values[i] {
		return false
	}
	d.values[i] = value
	return true
}
