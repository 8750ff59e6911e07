package quad

import "github.com/IMackerI/darts-solver/geom"

// Polygon integrates f over a convex polygon by fan-triangulating from vertex 0 — triangles
// (v0, vi, vi+1) for i = 1..n-2 — and summing the 7-point rule over each triangle (§4.2). This
// is exact for convex polygons; calling it on a non-convex polygon may include inverted
// triangles in the fan and is the caller's responsibility to avoid (§4.2, §9 quadrature/MC
// trade-off).
func Polygon(p geom.Polygon, f func(geom.Vec2) float64) float64 {
	verts := p.Verts
	if len(verts) < 3 {
		return 0
	}
	v0 := verts[0]
	total := 0.0
	for i := 1; i < len(verts)-1; i++ {
		total += Triangle(v0, verts[i], verts[i+1], f)
	}
	return total
}
