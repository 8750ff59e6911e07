// Copyright 2012 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heatmap evaluates a solver.Solver at every cell of a rectangular grid over a target's
// bounds, for a given game state, and caches the result per state (§4.6).
//
// Cell evaluation fans out one goroutine per row and fans the per-row channels back in with
// channerics.Merge, the same fan-out/fan-in shape niceyeti-tabular's reinforcement package uses
// to fan multiple episode-generating agents into a single estimator channel
// (reinforcement/learning.go's channerics.Merge(done, workers...)) — here the "agents" are rows
// of the grid and the "episodes" are evaluated cells.
package heatmap

import (
	"sync"

	"github.com/cpmech/gosl/chk"
	channerics "github.com/niceyeti/channerics/channels"

	"github.com/IMackerI/darts-solver/game"
	"github.com/IMackerI/darts-solver/geom"
	"github.com/IMackerI/darts-solver/internal/diag"
	"github.com/IMackerI/darts-solver/solver"
)

// cell is one evaluated grid cell, produced by a row worker and consumed by the merge loop.
type cell struct {
	row, col int
	value    float64
}

// HeatMap evaluates Solver.SolveAim over a rectangular grid for each requested state, caching
// the result per state (§4.6). A HeatMap borrows its solver; it owns its per-state grids.
type HeatMap struct {
	solver solver.Solver
	bounds geom.Bounds

	mu    sync.Mutex
	cache map[game.State][][]float64
}

// New constructs a HeatMap over solv, evaluating aims within bounds.
func New(solv solver.Solver, bounds geom.Bounds) *HeatMap {
	return &HeatMap{solver: solv, bounds: bounds, cache: make(map[game.State][][]float64)}
}

// Grid returns the rows x cols matrix of Solver.SolveAim values for state s, with row 0 as the
// top row (§4.6): cell (r, c) samples the aim at
// bounds.min + ((c+0.5)/cols, (rows-r-0.5)/rows) * (bounds.max - bounds.min).
// One grid is cached per state; a request for the same state with a different grid size
// recomputes and replaces the cached grid.
func (h *HeatMap) Grid(s game.State, rows, cols int) ([][]float64, error) {
	if rows <= 0 || cols <= 0 {
		return nil, chk.Err("heatmap.Grid: rows and cols must be positive, got %d x %d", rows, cols)
	}
	if s < 0 {
		return nil, chk.Err("heatmap.Grid: state must be non-negative, got %d", s)
	}

	h.mu.Lock()
	if g, ok := h.cache[s]; ok && len(g) == rows && (rows == 0 || len(g[0]) == cols) {
		h.mu.Unlock()
		return g, nil
	}
	h.mu.Unlock()

	grid := make([][]float64, rows)
	for r := range grid {
		grid[r] = make([]float64, cols)
	}

	done := make(chan struct{})
	workers := make([]<-chan cell, 0, rows)
	for r := 0; r < rows; r++ {
		workers = append(workers, h.rowWorker(s, r, rows, cols, done))
	}
	merged := channerics.Merge(done, workers...)
	for c := range merged {
		grid[c.row][c.col] = c.value
	}
	close(done)

	h.mu.Lock()
	h.cache[s] = grid
	h.mu.Unlock()
	return grid, nil
}

// rowWorker evaluates every column of row r and streams the results on a channel, the way
// learning.go's agent_worker streams episodes for channerics.Merge to fan in.
func (h *HeatMap) rowWorker(s game.State, r, rows, cols int, done <-chan struct{}) <-chan cell {
	out := make(chan cell)
	go func() {
		defer close(out)
		for c := 0; c < cols; c++ {
			aim := cellAim(h.bounds, r, rows, c, cols)
			v, err := h.solver.SolveAim(s, aim)
			if diag.LogErrCond(err != nil, "heatmap: solve_aim(state=%d, aim=%v) failed: %v", s, aim, err) {
				v = solver.InfiniteScore
			}
			select {
			case out <- cell{row: r, col: c, value: v}:
			case <-done:
				return
			}
		}
	}()
	return out
}

// cellAim maps grid indices to the aim point for that cell, with row 0 as the top row (§4.6).
func cellAim(bounds geom.Bounds, r, rows, c, cols int) geom.Vec2 {
	fx := (float64(c) + 0.5) / float64(cols)
	fy := (float64(rows-r) - 0.5) / float64(rows)
	return geom.Vec2{
		X: bounds.Min.X + fx*bounds.Width(),
		Y: bounds.Min.Y + fy*bounds.Height(),
	}
}
