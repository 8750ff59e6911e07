package dist

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/IMackerI/darts-solver/geom"
)

func unitNormal(t *testing.T, variant string) *Normal {
	t.Helper()
	n, err := NewNormal(variant, geom.Vec2{}, [2][2]float64{{1, 0}, {0, 1}}, WithSeed(42))
	if err != nil {
		t.Fatalf("NewNormal: %v", err)
	}
	return n
}

func Test_normal_density01(tst *testing.T) {

	chk.PrintTitle("normal_density01 (value and rotational symmetry at origin)")

	n := unitNormal(tst, VariantQuadrature)
	chk.Scalar(tst, "density(0)", 1e-9, n.Density(geom.Vec2{}), 1/(2*math.Pi))

	d0 := n.Density(geom.Vec2{X: 1, Y: 0})
	for _, theta := range []float64{0, 0.7, 1.3, 2.9, 4.4} {
		p := geom.Vec2{X: math.Cos(theta), Y: math.Sin(theta)}
		chk.Scalar(tst, "density(theta)", 1e-9, n.Density(p), d0)
	}
}

func Test_normal_integrate01(tst *testing.T) {

	chk.PrintTitle("normal_integrate01 (quadrature vs monte carlo agreement)")

	square := geom.NewPolygon([]geom.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}})

	nq := unitNormal(tst, VariantQuadrature)
	qv := nq.Integrate(square)

	nmc, err := NewNormal(VariantMonteCarlo, geom.Vec2{}, [2][2]float64{{1, 0}, {0, 1}},
		WithSeed(7), WithMonteCarloSamples(100000))
	if err != nil {
		tst.Fatalf("NewNormal: %v", err)
	}
	mcv := nmc.Integrate(square)

	if qv < 0.45 || qv > 0.48 {
		tst.Errorf("quadrature integral = %v, want in [0.45,0.48]", qv)
	}
	chk.Scalar(tst, "quadrature vs monte-carlo", 0.05, qv, mcv)
}

func Test_normal_integrate02(tst *testing.T) {

	chk.PrintTitle("normal_integrate02 (offset convention matches translated region)")

	n := unitNormal(tst, VariantQuadrature)
	region := geom.NewPolygon([]geom.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}})
	offset := geom.Vec2{X: 3, Y: -2}

	got := n.IntegrateOffset(region, offset)
	shifted := region.Translate(offset.Scale(-1))
	want := n.Integrate(shifted)
	chk.Scalar(tst, "IntegrateOffset", 1e-9, got, want)
}

func Test_normal_config01(tst *testing.T) {

	chk.PrintTitle("normal_config01 (configuration errors)")

	if _, err := NewNormal("bogus", geom.Vec2{}, [2][2]float64{{1, 0}, {0, 1}}); err == nil {
		tst.Error("expected error for unknown variant")
	}
	if _, err := NewNormal(VariantQuadrature, geom.Vec2{}, [2][2]float64{{1, 0}, {0, 1}}, WithMonteCarloSamples(0)); err == nil {
		tst.Error("expected error for non-positive sample count")
	}
	if _, err := EstimateFromPoints([]geom.Vec2{{0, 0}}); err == nil {
		tst.Error("expected error estimating from fewer than 2 points")
	}
}

func Test_normal_estimate01(tst *testing.T) {

	chk.PrintTitle("normal_estimate01 (population vs unbiased covariance)")

	pts := []geom.Vec2{{0, 0}, {2, 0}, {0, 2}, {2, 2}}
	_, covPop, _ := EstimateFromPoints(pts)
	_, covUnb, _ := EstimateFromPointsUnbiased(pts)
	if covPop[0][0] >= covUnb[0][0] {
		tst.Errorf("population covariance %v should be smaller than unbiased %v", covPop[0][0], covUnb[0][0])
	}
}

func Test_normal_addpoint01(tst *testing.T) {

	chk.PrintTitle("normal_addpoint01 (add_point recomputes parameters)")

	n, err := NewNormalFromPoints(VariantQuadrature, []geom.Vec2{{0, 0}, {2, 0}, {0, 2}, {2, 2}})
	if err != nil {
		tst.Fatalf("NewNormalFromPoints: %v", err)
	}
	before := n.Mean
	n.AddPoint(geom.Vec2{X: 10, Y: 10})
	n.AddPoint(geom.Vec2{X: 12, Y: 8})
	if n.Mean.Eq(before) {
		tst.Error("expected AddPoint to move the mean")
	}
}

func Test_normal_degenerate01(tst *testing.T) {

	chk.PrintTitle("normal_degenerate01 (degenerate variance floored, not NaN/Inf)")

	n, err := NewNormal(VariantQuadrature, geom.Vec2{}, [2][2]float64{{0, 0}, {0, 1}})
	if err != nil {
		tst.Fatalf("expected degenerate variance to be floored, got error: %v", err)
	}
	d := n.Density(geom.Vec2{})
	if math.IsNaN(d) || math.IsInf(d, 0) {
		tst.Fatalf("density with floored variance is %v", d)
	}
}
