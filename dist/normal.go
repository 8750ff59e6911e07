package dist

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/IMackerI/darts-solver/geom"
	"github.com/IMackerI/darts-solver/internal/diag"
)

const defaultMCSamples = 10000

// minVariance is the floor applied to a covariance diagonal entry that is too small to invert
// safely (§4.3: "implementations must handle cov[0][0] very small by falling back gracefully").
const minVariance = 1e-12

// Normal is a bivariate normal distribution: density, sampling (Box-Muller + Cholesky), and
// parameter estimation from a calibration point set, shared by every integration variant.
type Normal struct {
	Mean geom.Vec2
	Cov  [2][2]float64

	invCov [2][2]float64
	det    float64
	chol   [2][2]float64 // lower-triangular Cholesky factor of Cov

	rng       *rand.Rand
	mcSamples int
	integrate integrateFunc
	variant   string

	pts      []geom.Vec2
	unbiased bool
}

// factorize computes the Cholesky factor, inverse, and determinant of Cov, clamping a
// degenerate variance to minVariance rather than failing (the caller is responsible for
// avoiding this in principle, per §4.3).
func (n *Normal) factorize() error {
	c := n.Cov
	if c[0][0] < minVariance {
		c[0][0] = minVariance
	}
	if c[1][1] < minVariance {
		c[1][1] = minVariance
	}
	cov := [][]float64{{c[0][0], c[0][1]}, {c[1][0], c[1][1]}}
	inv := la.MatAlloc(2, 2)
	det, err := la.MatInv(inv, cov, 1e-14)
	if err != nil {
		return chk.Err("dist.Normal: covariance is not invertible: %v", err)
	}
	if det <= 0 {
		return chk.Err("dist.Normal: covariance must be symmetric positive definite, got det=%g", det)
	}
	n.det = det
	n.invCov = [2][2]float64{{inv[0][0], inv[0][1]}, {inv[1][0], inv[1][1]}}

	l11 := math.Sqrt(c[0][0])
	l21 := c[1][0] / l11
	under := c[1][1] - l21*l21
	if under < 0 {
		under = 0
	}
	l22 := math.Sqrt(under)
	n.chol = [2][2]float64{{l11, 0}, {l21, l22}}
	return nil
}

// Density evaluates (2*pi*sqrt(det(Cov)))^-1 * exp(-1/2 (p-mean)^T Cov^-1 (p-mean)) (§4.3).
func (n *Normal) Density(p geom.Vec2) float64 {
	d := p.Sub(n.Mean)
	quad := d.X*(n.invCov[0][0]*d.X+n.invCov[0][1]*d.Y) + d.Y*(n.invCov[1][0]*d.X+n.invCov[1][1]*d.Y)
	norm := 1.0 / (2 * math.Pi * math.Sqrt(n.det))
	return norm * math.Exp(-0.5*quad)
}

// Sample draws one point via Box-Muller plus the Cholesky factor of Cov (§4.3).
func (n *Normal) Sample() geom.Vec2 {
	u1, u2 := n.rng.Float64(), n.rng.Float64()
	for u1 <= 1e-300 {
		u1 = n.rng.Float64()
	}
	r := math.Sqrt(-2 * math.Log(u1))
	z0 := r * math.Cos(2*math.Pi*u2)
	z1 := r * math.Sin(2*math.Pi*u2)
	x := n.chol[0][0]*z0
	y := n.chol[1][0]*z0 + n.chol[1][1]*z1
	return geom.Vec2{X: n.Mean.X + x, Y: n.Mean.Y + y}
}

// Integrate returns the probability mass of region (§4.3).
func (n *Normal) Integrate(region geom.Polygon) float64 {
	return clampProb(n.integrate(n, region, geom.Vec2{}))
}

// IntegrateOffset returns the probability mass of region under the density translated by
// offset (§4.3).
func (n *Normal) IntegrateOffset(region geom.Polygon, offset geom.Vec2) float64 {
	return clampProb(n.integrate(n, region, offset))
}

// AddPoint appends a calibration sample and re-estimates Mean/Cov from the accumulated set
// (§4.3 add_point). Fewer than two accumulated points leaves parameters unchanged; callers
// needing the diagnostic error from §4.3 should use EstimateFromPoints directly.
func (n *Normal) AddPoint(p geom.Vec2) {
	n.pts = append(n.pts, p)
	if len(n.pts) < 2 {
		return
	}
	mean, cov, err := estimate(n.pts, n.unbiased)
	if err != nil {
		return
	}
	prevMean, prevCov := n.Mean, n.Cov
	n.Mean = mean
	n.Cov = cov
	if err := n.factorize(); err != nil {
		// keep the previous (valid) parameters rather than leaving the distribution unusable;
		// this mirrors the construction-time check without letting a transient bad sample set
		// brick an otherwise-live distribution.
		diag.LogErr(err, "dist: add_point factorize failed, rolling back last sample")
		n.Mean, n.Cov = prevMean, prevCov
		n.pts = n.pts[:len(n.pts)-1]
	}
}

// clampProb clamps a probability that has drifted slightly outside [0,1] due to floating
// point error (§7 numerical edge conditions).
func clampProb(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// estimate computes the mean and covariance of pts: population covariance by default, or the
// Bessel-corrected (sample) covariance when unbiased is true. §9 open question 2: this
// implementation picks population covariance as the default, the way gofem's own
// parameter-estimation helpers favor the simpler closed form, and exposes the unbiased variant
// explicitly for callers who want it (see EstimateFromPoints / EstimateFromPointsUnbiased).
func estimate(pts []geom.Vec2, unbiased bool) (mean geom.Vec2, cov [2][2]float64, err error) {
	if len(pts) < 2 {
		return mean, cov, chk.Err("dist.estimate: need at least 2 points, got %d", len(pts))
	}
	n := float64(len(pts))
	for _, p := range pts {
		mean = mean.Add(p)
	}
	mean = mean.Scale(1 / n)

	denom := n
	if unbiased {
		denom = n - 1
	}
	var sxx, sxy, syy float64
	for _, p := range pts {
		d := p.Sub(mean)
		sxx += d.X * d.X
		sxy += d.X * d.Y
		syy += d.Y * d.Y
	}
	cov[0][0] = sxx / denom
	cov[0][1] = sxy / denom
	cov[1][0] = sxy / denom
	cov[1][1] = syy / denom
	return mean, cov, nil
}

// EstimateFromPoints estimates (mean, cov) from pts using population covariance (§4.3, §9 open
// question 2).
func EstimateFromPoints(pts []geom.Vec2) (mean geom.Vec2, cov [2][2]float64, err error) {
	return estimate(pts, false)
}

// EstimateFromPointsUnbiased estimates (mean, cov) from pts using Bessel-corrected (sample)
// covariance.
func EstimateFromPointsUnbiased(pts []geom.Vec2) (mean geom.Vec2, cov [2][2]float64, err error) {
	return estimate(pts, true)
}

// NewNormalFromPoints builds a Normal with parameters estimated from pts (population
// covariance).
func NewNormalFromPoints(variant string, pts []geom.Vec2, opts ...Option) (*Normal, error) {
	mean, cov, err := EstimateFromPoints(pts)
	if err != nil {
		return nil, err
	}
	n, err := NewNormal(variant, mean, cov, opts...)
	if n != nil {
		n.pts = append([]geom.Vec2{}, pts...)
	}
	return n, err
}

// NewNormalFromPointsUnbiased is NewNormalFromPoints using Bessel-corrected covariance.
func NewNormalFromPointsUnbiased(variant string, pts []geom.Vec2, opts ...Option) (*Normal, error) {
	mean, cov, err := EstimateFromPointsUnbiased(pts)
	if err != nil {
		return nil, err
	}
	n, err := NewNormal(variant, mean, cov, opts...)
	if n != nil {
		n.pts = append([]geom.Vec2{}, pts...)
		n.unbiased = true
	}
	return n, err
}
