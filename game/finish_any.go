package game

import "github.com/IMackerI/darts-solver/board"

// VariantFinishOnAny selects the rule where any throw that reaches exactly 0 wins (§4.5).
const VariantFinishOnAny = "finish_on_any"

func init() {
	registerTransition(VariantFinishOnAny, transitionFinishOnAny)
}

// transitionFinishOnAny busts (state unchanged) when the throw would go negative; otherwise it
// applies the (non-positive) diff.
func transitionFinishOnAny(s State, hit board.HitData) State {
	next := int(s) + hit.Diff
	if next < 0 {
		return s
	}
	return State(next)
}
