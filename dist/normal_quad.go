package dist

import (
	"github.com/IMackerI/darts-solver/geom"
	"github.com/IMackerI/darts-solver/quad"
)

// VariantQuadrature selects the deterministic 7-point Dunavant quadrature integrator (§4.3).
const VariantQuadrature = "quadrature"

func init() {
	registerIntegrator(VariantQuadrature, integrateQuadrature)
}

// integrateQuadrature applies quad.Polygon with f(p) = density(p-offset), requiring region to
// be convex (§4.2, §4.3).
func integrateQuadrature(n *Normal, region geom.Polygon, offset geom.Vec2) float64 {
	return quad.Polygon(region, func(p geom.Vec2) float64 {
		return n.Density(p.Sub(offset))
	})
}
