// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package quad implements the fixed 7-point, degree-5 Dunavant quadrature rule on the reference
// triangle and its extension, via fan triangulation, to arbitrary convex polygons. This mirrors
// the way shp's shapes carry a fixed set of integration points per element type (shp/quads.go,
// shp/tris.go): a package-level table of barycentric nodes and weights, registered once, and
// applied through a small mapping routine rather than re-derived per call.
package quad

import "github.com/IMackerI/darts-solver/geom"

// Node is one quadrature node in barycentric (L1, L2, L3) coordinates over the reference
// triangle (0,0), (1,0), (0,1), with its associated weight. Weights sum to 1.
type Node struct {
	L1, L2, L3 float64
	W          float64
}

// Tri7 is the standard 7-point, degree-5 Dunavant rule: one centroid node and two symmetric
// triples.
var Tri7 = buildTri7()

func buildTri7() []Node {
	const (
		a  = 0.470142064105115
		b1 = 1 - 2*a
		c  = 0.101286507323456
		d1 = 1 - 2*c
		wA = 0.132394152788506
		wC = 0.125939180544827
		wO = 0.225
	)
	return []Node{
		{1.0 / 3, 1.0 / 3, 1.0 / 3, wO},
		{a, a, b1, wA},
		{a, b1, a, wA},
		{b1, a, a, wA},
		{c, c, d1, wC},
		{c, d1, c, wC},
		{d1, c, c, wC},
	}
}

// point maps a reference-triangle barycentric node to the physical point inside triangle
// (v0, v1, v2).
func (n Node) point(v0, v1, v2 geom.Vec2) geom.Vec2 {
	return geom.Vec2{
		X: n.L1*v0.X + n.L2*v1.X + n.L3*v2.X,
		Y: n.L1*v0.Y + n.L2*v1.Y + n.L3*v2.Y,
	}
}

// Triangle integrates f over the triangle (v0, v1, v2) using the 7-point rule: exact for
// polynomials of degree <= 5.
func Triangle(v0, v1, v2 geom.Vec2, f func(geom.Vec2) float64) float64 {
	area := geom.TriangleArea(v0, v1, v2)
	sum := 0.0
	for _, n := range Tri7 {
		sum += n.W * f(n.point(v0, v1, v2))
	}
	return area * sum
}
