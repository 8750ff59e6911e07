package game

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/IMackerI/darts-solver/board"
	"github.com/IMackerI/darts-solver/dist"
	"github.com/IMackerI/darts-solver/geom"
)

func sq(cx, cy, half float64) geom.Polygon {
	return geom.NewPolygon([]geom.Vec2{
		{cx - half, cy - half}, {cx + half, cy - half},
		{cx + half, cy + half}, {cx - half, cy + half},
	})
}

func mustNormal(t *testing.T, mean geom.Vec2, variance float64) dist.Distribution {
	t.Helper()
	n, err := dist.NewNormal(dist.VariantQuadrature, mean, [2][2]float64{{variance, 0}, {0, variance}})
	if err != nil {
		t.Fatalf("NewNormal: %v", err)
	}
	return n
}

func sumProb(hd HitDistribution) float64 {
	total := 0.0
	for _, e := range hd {
		total += e.Prob
	}
	return total
}

func Test_hit_distribution01(tst *testing.T) {

	chk.PrintTitle("hit_distribution01 (sums to one, ordered)")

	beds := []board.Bed{
		{Shape: sq(0, 0, 2), Hit: board.HitData{Type: board.Double, Diff: -20}},
		{Shape: sq(6, 6, 1.5), Hit: board.HitData{Type: board.Normal, Diff: -20}},
	}
	tg, err := board.NewTarget(beds)
	if err != nil {
		tst.Fatal(err)
	}
	d := mustNormal(tst, geom.Vec2{}, 2)
	g, err := New(tg, d, VariantFinishOnAny)
	if err != nil {
		tst.Fatal(err)
	}

	aims := []geom.Vec2{{0, 0}, {6, 6}, {0, 6}, {-10, 0}}
	for _, aim := range aims {
		hd := g.HitDistribution(aim)
		chk.Scalar(tst, "sum(p)", 1e-6, sumProb(hd), 1)
		for i := 1; i < len(hd); i++ {
			if hd[i].Hit.Less(hd[i-1].Hit) {
				tst.Errorf("aim %v: hit distribution not sorted at index %d", aim, i)
			}
		}
	}
}

func Test_state_transitions01(tst *testing.T) {

	chk.PrintTitle("state_transitions01 (sums to one)")

	beds := []board.Bed{{Shape: sq(0, 0, 5), Hit: board.HitData{Type: board.Normal, Diff: -20}}}
	tg, _ := board.NewTarget(beds)
	d := mustNormal(tst, geom.Vec2{}, 1)
	g, err := New(tg, d, VariantFinishOnAny)
	if err != nil {
		tst.Fatal(err)
	}
	for _, s := range []State{1, 20, 40} {
		sd := g.StateTransitions(geom.Vec2{}, s)
		sum := 0.0
		for _, e := range sd {
			sum += e.Prob
		}
		chk.Scalar(tst, "sum(p)", 1e-6, sum, 1)
	}
}

func Test_finish_on_double01(tst *testing.T) {

	chk.PrintTitle("finish_on_double01 (bust scenario)")

	doubleBed := board.Bed{Shape: sq(0, 0, 2), Hit: board.HitData{Type: board.Double, Diff: -20}}
	normalBed := board.Bed{Shape: sq(6, 6, 1), Hit: board.HitData{Type: board.Normal, Diff: -20}}
	tg, _ := board.NewTarget([]board.Bed{doubleBed, normalBed})

	// concentrated at the double's center: finishes with near-certainty
	dAtOrigin := mustNormal(tst, geom.Vec2{}, 0.01)
	gOrigin, err := New(tg, dAtOrigin, VariantFinishOnDouble)
	if err != nil {
		tst.Fatal(err)
	}
	sdOrigin := gOrigin.StateTransitions(geom.Vec2{}, 20)
	foundWin := false
	for _, e := range sdOrigin {
		if e.State == 0 {
			if e.Prob < 0.95 {
				tst.Errorf("expected win probability near 1, got %v", e.Prob)
			}
			foundWin = true
		}
		if e.State == 20 && e.Prob > 0.05 {
			tst.Errorf("unexpected bust-to-20 probability %v when aiming at the double", e.Prob)
		}
	}
	if !foundWin {
		tst.Error("expected a transition to state 0")
	}

	// concentrated at the normal bed's center, far from the double: busts with near-certainty
	dAtNormal := mustNormal(tst, geom.Vec2{X: 6, Y: 6}, 0.01)
	gNormal, err := New(tg, dAtNormal, VariantFinishOnDouble)
	if err != nil {
		tst.Fatal(err)
	}
	sdNormal := gNormal.StateTransitions(geom.Vec2{}, 20)
	for _, e := range sdNormal {
		if e.State == 20 && e.Prob < 0.95 {
			tst.Errorf("expected bust probability near 1, got %v", e.Prob)
		}
	}
}

func Test_game_config01(tst *testing.T) {

	chk.PrintTitle("game_config01 (rejects unknown variant and empty target)")

	beds := []board.Bed{{Shape: sq(0, 0, 1), Hit: board.HitData{Type: board.Normal, Diff: -1}}}
	tg, _ := board.NewTarget(beds)
	d := mustNormal(tst, geom.Vec2{}, 1)
	if _, err := New(tg, d, "bogus"); err == nil {
		tst.Error("expected error for unknown transition variant")
	}
	if _, err := New(nil, d, VariantFinishOnAny); err == nil {
		tst.Error("expected error for nil target")
	}
}

func Test_hit_distribution_cache01(tst *testing.T) {

	chk.PrintTitle("hit_distribution_cache01 (cache consistency)")

	beds := []board.Bed{{Shape: sq(0, 0, 5), Hit: board.HitData{Type: board.Normal, Diff: -20}}}
	tg, _ := board.NewTarget(beds)
	d := mustNormal(tst, geom.Vec2{}, 1)
	g, _ := New(tg, d, VariantFinishOnAny)
	a := g.HitDistribution(geom.Vec2{X: 1, Y: 2})
	b := g.HitDistribution(geom.Vec2{X: 1, Y: 2})
	if len(a) != len(b) {
		tst.Fatalf("cache inconsistency: lengths differ")
	}
	for i := range a {
		if a[i] != b[i] {
			tst.Errorf("cache inconsistency at %d: %v != %v", i, a[i], b[i])
		}
	}
}

func Test_throw01(tst *testing.T) {

	chk.PrintTitle("throw01 (single-sample simulated throw, deterministic seed)")

	beds := []board.Bed{
		{Shape: sq(0, 0, 2), Hit: board.HitData{Type: board.Double, Diff: -20}},
		{Shape: sq(6, 6, 1), Hit: board.HitData{Type: board.Normal, Diff: -20}},
	}
	tg, err := board.NewTarget(beds)
	if err != nil {
		tst.Fatal(err)
	}
	// tightly concentrated at the double bed, deterministic seed: Throw should land a double and
	// finish a state-20 leg under finish-on-double (§4.5 "Single-sample throw").
	d, err := dist.NewNormal(dist.VariantQuadrature, geom.Vec2{}, [2][2]float64{{0.01, 0}, {0, 0.01}}, dist.WithSeed(99))
	if err != nil {
		tst.Fatal(err)
	}
	g, err := New(tg, d, VariantFinishOnDouble)
	if err != nil {
		tst.Fatal(err)
	}
	next := g.Throw(geom.Vec2{}, 20)
	if next != 0 {
		tst.Errorf("Throw(aim=origin, s=20) = %v, want 0 (deterministic seed concentrated on the double)", next)
	}
}
