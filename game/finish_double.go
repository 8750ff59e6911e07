package game

import "github.com/IMackerI/darts-solver/board"

// VariantFinishOnDouble selects the rule where the winning throw must land exactly on 0 with a
// Double hit; any other way of reaching (or passing) 0 is a bust (§4.5). Consequence: a state of
// 1 can never be finished on a standard board, since no double scores exactly 1 — the solver
// must detect this as unwinnable rather than recurse forever (§4.6).
const VariantFinishOnDouble = "finish_on_double"

func init() {
	registerTransition(VariantFinishOnDouble, transitionFinishOnDouble)
}

func transitionFinishOnDouble(s State, hit board.HitData) State {
	next := int(s) + hit.Diff
	switch {
	case next == 0 && hit.Type == board.Double:
		return 0 // win
	case next == 0: // exact finish on a non-double: bust
		return s
	case next < 0: // overshoot: bust
		return s
	default:
		return State(next)
	}
}
