package geom

// Polygon is a simple planar polygon given as an ordered vertex sequence; the edge from the
// last vertex back to the first is implicit. A Polygon need not be convex for Contains, but
// quad.Polygon requires convexity (fan triangulation from vertex 0 is only exact when convex).
type Polygon struct {
	Verts []Vec2
}

// NewPolygon wraps verts as a Polygon. verts is not copied.
func NewPolygon(verts []Vec2) Polygon { return Polygon{Verts: verts} }

// Bounds returns the axis-aligned bounding box of the polygon's vertices.
func (p Polygon) Bounds() Bounds { return BoundsOf(p.Verts) }

// Contains reports whether pt lies inside p using even-odd ray casting with a half-open edge
// convention (§4.1): for each directed edge (a, b) oriented so a.Y <= b.Y, the edge counts iff
// a.Y <= pt.Y < b.Y and the edge's x-intercept at pt.Y is >= pt.X. This excludes points on a
// horizontal edge and includes points on the lower endpoint of a non-horizontal edge, which
// keeps the predicate deterministic at vertices without double-counting. Whether a boundary
// point lands in this bed or a neighboring one is left to this convention, per §1's non-goal
// on boundary guarantees.
func (p Polygon) Contains(pt Vec2) bool {
	n := len(p.Verts)
	if n < 3 {
		return false
	}
	inside := false
	for i := 0; i < n; i++ {
		a := p.Verts[i]
		b := p.Verts[(i+1)%n]
		if a.Y > b.Y {
			a, b = b, a
		}
		if a.Y <= pt.Y && pt.Y < b.Y {
			// x-intercept of the edge at height pt.Y
			t := (pt.Y - a.Y) / (b.Y - a.Y)
			x := a.X + t*(b.X-a.X)
			if x >= pt.X {
				inside = !inside
			}
		}
	}
	return inside
}

// Translate returns p with every vertex shifted by off.
func (p Polygon) Translate(off Vec2) Polygon {
	out := make([]Vec2, len(p.Verts))
	for i, v := range p.Verts {
		out[i] = v.Add(off)
	}
	return Polygon{Verts: out}
}
