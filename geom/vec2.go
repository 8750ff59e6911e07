// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the planar geometry primitives used by the rest of the solver:
// points/vectors, axis-aligned bounds, and polygons with a point-containment predicate.
package geom

import "math"

// Vec2 is a planar point or vector.
type Vec2 struct {
	X, Y float64
}

// Add returns o+p.
func (o Vec2) Add(p Vec2) Vec2 { return Vec2{o.X + p.X, o.Y + p.Y} }

// Sub returns o-p.
func (o Vec2) Sub(p Vec2) Vec2 { return Vec2{o.X - p.X, o.Y - p.Y} }

// Scale returns o*s.
func (o Vec2) Scale(s float64) Vec2 { return Vec2{o.X * s, o.Y * s} }

// Cross returns the 2D scalar cross product o×p.
func (o Vec2) Cross(p Vec2) float64 { return o.X*p.Y - o.Y*p.X }

// Dot returns the dot product o·p.
func (o Vec2) Dot(p Vec2) float64 { return o.X*p.X + o.Y*p.Y }

// Len returns the Euclidean norm of o.
func (o Vec2) Len() float64 { return math.Sqrt(o.Dot(o)) }

// Eq reports whether o and p are exactly equal, componentwise.
func (o Vec2) Eq(p Vec2) bool { return o.X == p.X && o.Y == p.Y }

// TriangleArea returns the unsigned area of the triangle (v0, v1, v2), order-independent.
func TriangleArea(v0, v1, v2 Vec2) float64 {
	return math.Abs(v1.Sub(v0).Cross(v2.Sub(v0))) / 2
}
