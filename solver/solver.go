// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements the two aim-selection strategies over a game.Game: a
// minimum-expected-throws dynamic program (DP, §4.6) with memoization and winnability tracking,
// and a myopic maximum-expected-points greedy strategy. Both share the uniform aim-sampling
// grid; they differ only in how they score a single aim, the way gofem's fem.Solver variants
// (see fem/solver.go's iterative convergence loop) share assembly/residual machinery but differ
// in their update rule.
package solver

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/IMackerI/darts-solver/game"
	"github.com/IMackerI/darts-solver/geom"
)

// InfiniteScore is the sentinel value standing in for "no finite expected value" (§4.6, §6).
const InfiniteScore = 1e9

// Epsilon is the self-loop-probability tolerance: an aim whose self-loop probability is at least
// 1-Epsilon is treated as never escaping state s and scores InfiniteScore (§4.6, §6).
const Epsilon = 1e-9

// Result is a solver's answer for one state: the value in that solver's units (expected throws
// for DP, expected points for Greedy) and the aim that achieves it.
type Result struct {
	Value float64
	Aim   geom.Vec2
}

// Solver is the capability shared by DP and Greedy (§6 "Solver API").
type Solver interface {
	// Solve returns the optimal (value, aim) for state s.
	Solve(s game.State) (Result, error)

	// SolveAim returns the value of throwing at aim from state s, under this solver's
	// semantics, without searching over the aim grid.
	SolveAim(s game.State, aim geom.Vec2) (float64, error)
}

// Grid returns the centers of a uniform grid of k rows by n/k columns over bounds, in row-major
// order, where k = floor(sqrt(n)) (§4.6). Both dimensions are clamped to at least
// 1 so a tiny sample count still yields a usable grid.
func Grid(bounds geom.Bounds, n int) []geom.Vec2 {
	rows := int(math.Sqrt(float64(n)))
	if rows < 1 {
		rows = 1
	}
	cols := n / rows
	if cols < 1 {
		cols = 1
	}
	w, h := bounds.Width(), bounds.Height()
	aims := make([]geom.Vec2, 0, rows*cols)
	for r := 0; r < rows; r++ {
		y := bounds.Min.Y + (float64(r)+0.5)/float64(rows)*h
		for c := 0; c < cols; c++ {
			x := bounds.Min.X + (float64(c)+0.5)/float64(cols)*w
			aims = append(aims, geom.Vec2{X: x, Y: y})
		}
	}
	return aims
}

// checkSampleCount is the shared §7 configuration-error check for both solvers.
func checkSampleCount(n int) error {
	if n <= 0 {
		return chk.Err("solver: sample count must be positive, got %d", n)
	}
	return nil
}

// checkState is the shared §7 check rejecting a negative state.
func checkState(s game.State) error {
	if s < 0 {
		return chk.Err("solver: state must be non-negative, got %d", s)
	}
	return nil
}
