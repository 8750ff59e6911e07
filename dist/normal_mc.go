package dist

import "github.com/IMackerI/darts-solver/geom"

// VariantMonteCarlo selects the Monte-Carlo integrator: draw N samples, count region
// inclusion, return the ratio (§4.3). N defaults to defaultMCSamples and is configurable via
// WithMonteCarloSamples.
const VariantMonteCarlo = "montecarlo"

func init() {
	registerIntegrator(VariantMonteCarlo, integrateMonteCarlo)
}

func integrateMonteCarlo(n *Normal, region geom.Polygon, offset geom.Vec2) float64 {
	hits := 0
	for i := 0; i < n.mcSamples; i++ {
		s := n.Sample().Add(offset)
		if region.Contains(s) {
			hits++
		}
	}
	return float64(hits) / float64(n.mcSamples)
}
