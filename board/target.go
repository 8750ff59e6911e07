package board

import (
	"github.com/cpmech/gosl/chk"

	"github.com/IMackerI/darts-solver/geom"
)

// Bed is a scoring region: a polygon plus its typed score delta (§3). Shape must be non-empty.
type Bed struct {
	Shape geom.Polygon
	Hit   HitData
}

// Target is an ordered collection of beds; beds are classified by iteration order and overlap
// is resolved by first match (§3, §4.4). A Target owns its beds.
type Target struct {
	Beds []Bed
}

// NewTarget validates and constructs a Target from beds. A target with zero beds is a
// configuration error (§7); a bed with an empty shape is likewise rejected so that Classify's
// "non-empty shape" invariant (§3) holds for every stored bed.
func NewTarget(beds []Bed) (*Target, error) {
	if len(beds) == 0 {
		return nil, chk.Err("board.NewTarget: target must have at least one bed")
	}
	for i, b := range beds {
		if len(b.Shape.Verts) < 3 {
			return nil, chk.Err("board.NewTarget: bed %d has fewer than 3 vertices", i)
		}
	}
	return &Target{Beds: append([]Bed{}, beds...)}, nil
}

// Classify returns the HitData of the first bed containing p, or Miss if no bed contains it
// (§4.4).
func (t *Target) Classify(p geom.Vec2) HitData {
	for _, b := range t.Beds {
		if b.Shape.Contains(p) {
			return b.Hit
		}
	}
	return Miss
}

// Bounds returns the axis-aligned bounding box covering every bed vertex.
func (t *Target) Bounds() geom.Bounds {
	b := t.Beds[0].Shape.Bounds()
	for _, bed := range t.Beds[1:] {
		b = geom.Union(b, bed.Shape.Bounds())
	}
	return b
}
