package game

import "github.com/IMackerI/darts-solver/board"

// TransitionFunc maps a state and a hit outcome to the successor state under one rule variant.
type TransitionFunc func(s State, hit board.HitData) State

// transitions holds the closed set of rule variants, keyed by name, populated by each variant's
// init() — the same allocator-registry idiom used throughout gofem for its small closed sets of
// element/material types (e.g. mreten.GetModel, fem's eallocators).
var transitions = map[string]TransitionFunc{}

func registerTransition(name string, f TransitionFunc) {
	transitions[name] = f
}

func transitionNames() []string {
	names := make([]string, 0, len(transitions))
	for k := range transitions {
		names = append(names, k)
	}
	return names
}
