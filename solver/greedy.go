package solver

import (
	"github.com/IMackerI/darts-solver/game"
	"github.com/IMackerI/darts-solver/geom"
)

// Greedy is the maximum-expected-points solver (§4.6): a purely myopic, single-step evaluation
// with no memoization and no recursion. It scores expected point reduction using the game's
// transition rule, so a bust counts as zero reduction (under finish-on-double this includes an
// exact finish on a non-double); it does not look beyond the single throw.
type Greedy struct {
	g           *game.Game
	sampleCount int
}

// NewGreedy constructs a Greedy solver over g, sampling sampleCount aim candidates per state.
func NewGreedy(g *game.Game, sampleCount int) (*Greedy, error) {
	if err := checkSampleCount(sampleCount); err != nil {
		return nil, err
	}
	return &Greedy{g: g, sampleCount: sampleCount}, nil
}

// SolveAim returns the expected score reduction Σ_hit (s - s') * p_hit for throwing at aim from
// state s (§4.6).
func (gr *Greedy) SolveAim(s game.State, aim geom.Vec2) (float64, error) {
	if err := checkState(s); err != nil {
		return 0, err
	}
	hd := gr.g.HitDistribution(aim)
	value := 0.0
	for _, e := range hd {
		next := gr.g.Transition(s, e.Hit)
		value += float64(int(s)-int(next)) * e.Prob
	}
	return value, nil
}

// Solve returns the aim maximizing expected score reduction from s, and that value (§4.6).
func (gr *Greedy) Solve(s game.State) (Result, error) {
	if err := checkState(s); err != nil {
		return Result{}, err
	}
	aims := Grid(gr.g.Bounds(), gr.sampleCount)
	best := Result{Value: negInf, Aim: aims[0]}
	for _, aim := range aims {
		v, err := gr.SolveAim(s, aim)
		if err != nil {
			return Result{}, err
		}
		if v > best.Value {
			best = Result{Value: v, Aim: aim}
		}
	}
	return best, nil
}

const negInf = -1e300
