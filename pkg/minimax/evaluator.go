package minimax

import "math"

// Evaluator decides how terminal values are compared during the search,
// so the engine never has to know whether the game is zero-sum.
type Evaluator[V any] interface {
	// Value worse than any reachable outcome for the mover, used to seed the search
	Worst(mover Turn) V
	// Wheter 'candidate' is strictly better than 'best' for the mover
	Better(mover Turn, candidate, best V) bool
	// Wheter 'v' can't be improved upon by the mover, stops enumerating moves
	Proven(mover Turn, v V) bool
}

// Zero-sum games with a bounded {Win2, Draw, Win1} outcome,
// player 1 maximizes and player 2 minimizes the score
type SignedEvaluator struct{}

func (SignedEvaluator) Worst(mover Turn) Score {
	if mover == Player1 {
		return math.MinInt
	}
	return math.MaxInt
}

func (SignedEvaluator) Better(mover Turn, candidate, best Score) bool {
	if mover == Player1 {
		return candidate > best
	}
	return candidate < best
}

func (SignedEvaluator) Proven(mover Turn, v Score) bool {
	if mover == Player1 {
		return v == Win1
	}
	return v == Win2
}

// Games where each participant maximizes his own score component.
// Outcomes are unbounded, so no move set is ever cut short
type ScorePairEvaluator struct{}

func (ScorePairEvaluator) Worst(mover Turn) ScorePair {
	return ScorePair{math.MinInt, math.MinInt}
}

func (ScorePairEvaluator) Better(mover Turn, candidate, best ScorePair) bool {
	return candidate.Of(mover) > best.Of(mover)
}

func (ScorePairEvaluator) Proven(Turn, ScorePair) bool {
	return false
}
