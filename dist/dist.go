// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist implements the two-dimensional probability distributions consulted by the game
// layer: a density, a sampler, and an integrator over (possibly offset) polygonal regions.
//
// Distribution families are registered into a small allocator table the way gofem/mreten
// registers liquid-retention models (mreten.GetModel) and gofem/msolid registers solid models:
// a package-level map[string]func(...) populated by each variant's init(), rather than an open
// interface hierarchy. §9 of the specification calls this out explicitly as the preferred shape
// for "the small closed set actually used" because it keeps the integration inner loop — the
// hottest path in the whole system — free of virtual dispatch.
package dist

import (
	"math/rand"

	"github.com/cpmech/gosl/chk"

	"github.com/IMackerI/darts-solver/geom"
)

// Distribution is the capability set every concrete family must provide (§4.3).
type Distribution interface {
	// Density evaluates the probability density at p.
	Density(p geom.Vec2) float64

	// Sample draws one point from the distribution.
	Sample() geom.Vec2

	// Integrate returns the probability mass of region under the distribution.
	Integrate(region geom.Polygon) float64

	// IntegrateOffset returns the probability that Sample()+offset lands in region, i.e. the
	// integral of Density(p-offset) over region. The game layer uses this convention: the bed
	// is fixed, the aim translates the density (§4.3, §4.5).
	IntegrateOffset(region geom.Polygon, offset geom.Vec2) float64

	// AddPoint appends a calibration sample and recomputes the distribution's parameters.
	AddPoint(p geom.Vec2)
}

// integrateFunc is the variant-specific integration strategy plugged into a *Normal.
type integrateFunc func(n *Normal, region geom.Polygon, offset geom.Vec2) float64

// integrators holds the closed set of integration strategies, keyed by variant name.
var integrators = map[string]integrateFunc{}

// registerIntegrator is called from each variant's init().
func registerIntegrator(name string, f integrateFunc) {
	integrators[name] = f
}

// variantNames lists the registered variants, for error messages.
func variantNames() []string {
	names := make([]string, 0, len(integrators))
	for k := range integrators {
		names = append(names, k)
	}
	return names
}

// NewNormal constructs a bivariate normal distribution with the named integration variant
// ("quadrature" or "montecarlo", registered by normal_quad.go / normal_mc.go respectively).
// Diagonal entries of cov below minVariance are floored to minVariance; construction then fails
// if the floored matrix is not invertible or its determinant is not positive (§7 configuration
// errors). Symmetry of cov is not checked.
func NewNormal(variant string, mean geom.Vec2, cov [2][2]float64, opts ...Option) (*Normal, error) {
	integrate, ok := integrators[variant]
	if !ok {
		return nil, chk.Err("dist.NewNormal: unknown variant %q (have %v)", variant, variantNames())
	}
	n := &Normal{
		Mean:      mean,
		Cov:       cov,
		rng:       rand.New(rand.NewSource(1)),
		mcSamples: defaultMCSamples,
		integrate: integrate,
		variant:   variant,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.mcSamples <= 0 {
		return nil, chk.Err("dist.NewNormal: sample count must be positive, got %d", n.mcSamples)
	}
	if err := n.factorize(); err != nil {
		return nil, err
	}
	return n, nil
}

// Option configures a Normal at construction time.
type Option func(*Normal)

// WithSeed fixes the pseudorandom seed used by Sample, for deterministic tests (§4.3).
func WithSeed(seed int64) Option {
	return func(n *Normal) { n.rng = rand.New(rand.NewSource(seed)) }
}

// WithMonteCarloSamples overrides the sample count used by the montecarlo variant's Integrate
// (default 10000, §4.3).
func WithMonteCarloSamples(nSamples int) Option {
	return func(n *Normal) { n.mcSamples = nSamples }
}
