package geom

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max Vec2
}

// Valid reports whether Min is componentwise no greater than Max.
func (b Bounds) Valid() bool { return b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y }

// Width returns Max.X - Min.X.
func (b Bounds) Width() float64 { return b.Max.X - b.Min.X }

// Height returns Max.Y - Min.Y.
func (b Bounds) Height() float64 { return b.Max.Y - b.Min.Y }

// Expand returns b grown by frac of each side's extent on every side, e.g. frac=0.1 for a 10%
// expansion as used by Game's bounding box (§4.5).
func (b Bounds) Expand(frac float64) Bounds {
	dx := b.Width() * frac
	dy := b.Height() * frac
	return Bounds{
		Min: Vec2{b.Min.X - dx, b.Min.Y - dy},
		Max: Vec2{b.Max.X + dx, b.Max.Y + dy},
	}
}

// BoundsOf returns the bounding box of a non-empty slice of points.
func BoundsOf(pts []Vec2) Bounds {
	min, max := pts[0], pts[0]
	for _, p := range pts[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return Bounds{min, max}
}

// Union returns the smallest Bounds containing both a and b.
func Union(a, b Bounds) Bounds {
	return Bounds{
		Min: Vec2{min(a.Min.X, b.Min.X), min(a.Min.Y, b.Min.Y)},
		Max: Vec2{max(a.Max.X, b.Max.X), max(a.Max.Y, b.Max.Y)},
	}
}
