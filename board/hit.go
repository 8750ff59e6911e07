// Package board implements the dartboard data model: typed scoring regions (beds) and the
// target they compose into, plus the classification of a point into its bed (§4.4).
//
// This mirrors the shape of gofem/mreten's registry of liquid-retention models in spirit only:
// here the "types" (normal/double/treble) are a small closed enum rather than a plugin
// registry, since §3 fixes the set to exactly three members with a total ordering.
package board

import "fmt"

// HitType tags a scored hit. The zero value is Normal.
type HitType int

const (
	Normal HitType = iota
	Double
	Treble
)

// String renders the hit type for diagnostics.
func (t HitType) String() string {
	switch t {
	case Normal:
		return "normal"
	case Double:
		return "double"
	case Treble:
		return "treble"
	default:
		return fmt.Sprintf("HitType(%d)", int(t))
	}
}

// HitData is a typed score delta (§3). Diff is <= 0 for in-target beds (points are deducted); a
// miss is represented as HitData{Type: Normal, Diff: 0}.
type HitData struct {
	Type HitType
	Diff int
}

// Miss is the canonical miss outcome.
var Miss = HitData{Type: Normal, Diff: 0}

// Less gives the total order used to sort a HitDistribution: by Type then by Diff (§4.5).
func (h HitData) Less(o HitData) bool {
	if h.Type != o.Type {
		return h.Type < o.Type
	}
	return h.Diff < o.Diff
}
