package solver

import (
	"fmt"
	"sync"

	"github.com/IMackerI/darts-solver/game"
	"github.com/IMackerI/darts-solver/geom"
	"github.com/IMackerI/darts-solver/internal/diag"
)

// DP is the minimum-expected-throws solver (§4.6): a demand-driven, memoized dynamic program
// over game states with the exact self-loop fold and winnability propagation the specification
// requires (§4.6, §9). Its memo and winnability set are append-only for the DP's lifetime; a
// caller that mutates the underlying game must discard the DP and build a new one (§9).
type DP struct {
	g           *game.Game
	sampleCount int

	mu       sync.Mutex
	memo     map[game.State]Result
	winnable map[game.State]bool
}

// NewDP constructs a DP solver over g, sampling sampleCount aim candidates per state (§4.6).
func NewDP(g *game.Game, sampleCount int) (*DP, error) {
	if err := checkSampleCount(sampleCount); err != nil {
		return nil, err
	}
	return &DP{
		g:           g,
		sampleCount: sampleCount,
		memo:        make(map[game.State]Result),
		winnable:    make(map[game.State]bool),
	}, nil
}

// Solve returns the optimal (expected throws, aim) for state s, computing and memoizing every
// state the demand-driven recursion touches along the way (§4.6).
func (d *DP) Solve(s game.State) (Result, error) {
	if err := checkState(s); err != nil {
		return Result{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.solve(s), nil
}

// SolveAim returns the expected-throws value of aim from s without searching the aim grid
// (§4.6, §6), used by heatmap.HeatMap.
func (d *DP) SolveAim(s game.State, aim geom.Vec2) (float64, error) {
	if err := checkState(s); err != nil {
		return 0, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if s == 0 {
		return 0, nil
	}
	return d.evalAim(s, aim), nil
}

// Winnable reports whether s is known winnable. It only reflects states already visited by
// Solve/SolveAim; an unvisited state reports false until demanded.
func (d *DP) Winnable(s game.State) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.winnable[s]
}

// solve is the memoized recursion core. Callers must hold d.mu.
func (d *DP) solve(s game.State) Result {
	if r, ok := d.memo[s]; ok {
		return r
	}
	if s == 0 {
		r := Result{Value: 0, Aim: geom.Vec2{}}
		d.memo[0] = r
		d.winnable[0] = true
		return r
	}

	aims := Grid(d.g.Bounds(), d.sampleCount)
	best := Result{Value: InfiniteScore, Aim: aims[0]}
	anyFinite := false
	for _, aim := range aims {
		ea := d.evalAim(s, aim)
		if ea < best.Value {
			best = Result{Value: ea, Aim: aim}
			if ea < InfiniteScore {
				anyFinite = true
			}
		}
	}

	d.memo[s] = best
	d.winnable[s] = anyFinite
	if !anyFinite {
		diag.LogErr(fmt.Errorf("no sampled aim reaches a winnable successor"), fmt.Sprintf("solver: state %d discovered unwinnable", s))
	}
	return best
}

// evalAim computes E_a for state s and a single aim (§4.6): decompose the transition
// distribution into the self-loop probability (misses, busts, and any transition into a
// state already known unwinnable) and the remainder; fold unwinnable mass into the self-loop
// exactly as §4.6/§9 describe, then apply the closed-form geometric expectation. Every
// non-self successor is strictly smaller than s (diffs are non-positive), so the recursive
// calls to d.solve terminate. Callers must hold d.mu.
func (d *DP) evalAim(s game.State, aim geom.Vec2) float64 {
	sd := d.g.StateTransitions(aim, s)
	pSelf, contrib := 0.0, 0.0
	for _, e := range sd {
		if e.State == s {
			pSelf += e.Prob
			continue
		}
		child := d.solve(e.State)
		if d.winnable[e.State] {
			contrib += e.Prob * child.Value
		} else {
			pSelf += e.Prob
		}
	}
	if pSelf >= 1-Epsilon {
		return InfiniteScore
	}
	return (1 + contrib) / (1 - pSelf)
}
