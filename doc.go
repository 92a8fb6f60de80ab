// Package cuboid is a small software 3D renderer built around an
// angular camera projection: points are mapped to the screen by their
// azimuth and elevation as seen from the camera, not by a perspective
// divide.
//
// The package draws triangles and parallelograms into a plain BGRX byte
// buffer. Visible-surface resolution uses a per-pixel depth buffer, fed
// by geometric coordinate recovery: for every rasterized pixel the
// renderer reconstructs the 3D point that projected onto it, which also
// gives fillers the pixel's position on the drawn surface.
//
// Rasterization itself is exact: triangle edges are integer lines and
// pixel spans come from integer intersections, so adjacent triangles
// sharing an edge tile without seams or double-drawn pixels.
//
// The entry point is Renderer; see the examples directory for a
// complete frame loop.
package cuboid
