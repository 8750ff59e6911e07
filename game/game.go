// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package game combines a board.Target and a dist.Distribution into the hit-distribution and
// state-transition layer the solver consumes (§4.5). A Game borrows its target and distribution
// for its entire lifetime — it does not own them — mirroring the borrowing relationships §9
// describes for the whole component chain.
package game

import (
	"sort"
	"sync"

	"github.com/cpmech/gosl/chk"

	"github.com/IMackerI/darts-solver/board"
	"github.com/IMackerI/darts-solver/dist"
	"github.com/IMackerI/darts-solver/geom"
)

// State is the countdown score remaining; 0 is a win (§3).
type State int

// HitEntry pairs a typed hit outcome with its probability.
type HitEntry struct {
	Hit  board.HitData
	Prob float64
}

// HitDistribution is an ordered-by-HitData sequence of (hit, probability) pairs (§3, §4.5).
type HitDistribution []HitEntry

// StateEntry pairs a successor state with its probability.
type StateEntry struct {
	State State
	Prob  float64
}

// StateDistribution is an ordered-by-State sequence of (state, probability) pairs (§3).
type StateDistribution []StateEntry

// Game lifts a target's hit distributions to state transitions under a chosen rule variant
// (§4.5), caching hit distributions per aim point (§3 caches).
type Game struct {
	Target     *board.Target
	Dist       dist.Distribution
	Transition TransitionFunc

	bounds geom.Bounds

	mu       sync.Mutex
	hitCache map[geom.Vec2]HitDistribution
}

// New constructs a Game over target and distribution using the named transition variant
// (VariantFinishOnAny or VariantFinishOnDouble). The target bounding box is computed once and
// expanded by 10% on each side (§4.5), then cached for the Game's lifetime.
func New(target *board.Target, distribution dist.Distribution, variant string) (*Game, error) {
	if target == nil || len(target.Beds) == 0 {
		return nil, chk.Err("game.New: target must have at least one bed")
	}
	transition, ok := transitions[variant]
	if !ok {
		return nil, chk.Err("game.New: unknown transition variant %q (have %v)", variant, transitionNames())
	}
	return &Game{
		Target:     target,
		Dist:       distribution,
		Transition: transition,
		bounds:     target.Bounds().Expand(0.1),
		hitCache:   make(map[geom.Vec2]HitDistribution),
	}, nil
}

// Bounds returns the game's (already-expanded) bounding box (§4.5).
func (g *Game) Bounds() geom.Bounds { return g.bounds }

// HitDistribution computes, for aim, the probability distribution over typed hit outcomes
// (§4.5), caching the result on aim. The returned sequence is ordered by HitData (type then
// diff, §3) and sums to 1 within floating-point tolerance.
func (g *Game) HitDistribution(aim geom.Vec2) HitDistribution {
	g.mu.Lock()
	defer g.mu.Unlock()
	if hd, ok := g.hitCache[aim]; ok {
		return hd
	}

	acc := make(map[board.HitData]float64)
	total := 0.0
	for _, bed := range g.Target.Beds {
		p := g.Dist.IntegrateOffset(bed.Shape, aim)
		acc[bed.Hit] += p
		total += p
	}
	missProb := 1 - total
	if missProb < 0 {
		missProb = 0
	}
	acc[board.Miss] += missProb

	hd := make(HitDistribution, 0, len(acc))
	for hit, prob := range acc {
		hd = append(hd, HitEntry{Hit: hit, Prob: prob})
	}
	sort.Slice(hd, func(i, j int) bool { return hd[i].Hit.Less(hd[j].Hit) })

	g.hitCache[aim] = hd
	return hd
}

// StateTransitions lifts the hit distribution at aim to a StateDistribution over successor
// states from s, using the Game's configured transition rule (§4.5), summing probability over
// duplicate successors and ordering the result by State.
func (g *Game) StateTransitions(aim geom.Vec2, s State) StateDistribution {
	hd := g.HitDistribution(aim)
	acc := make(map[State]float64)
	for _, e := range hd {
		s2 := g.Transition(s, e.Hit)
		acc[s2] += e.Prob
	}
	sd := make(StateDistribution, 0, len(acc))
	for st, prob := range acc {
		sd = append(sd, StateEntry{State: st, Prob: prob})
	}
	sort.Slice(sd, func(i, j int) bool { return sd[i].State < sd[j].State })
	return sd
}

// Throw draws a single sample from Dist, adds aim, classifies it against Target, and applies
// the Game's transition rule from s. This is the simulation path — the solver never calls it
// (§4.5 "Single-sample throw").
func (g *Game) Throw(aim geom.Vec2, s State) State {
	landing := g.Dist.Sample().Add(aim)
	hit := g.Target.Classify(landing)
	return g.Transition(s, hit)
}
