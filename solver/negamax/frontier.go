package negamax

import "github.com/ClaytonKnittel/abstract-game/score"

// frontier accumulates the scores of a position's moves, each already seen
// from the position itself.
type frontier[M comparable] struct {
	best    score.Score
	move    M
	found   bool
	skipped bool
	// Shortest tie horizon among undecided moves.
	minTie uint32
}

func newFrontier[M comparable]() frontier[M] {
	return frontier[M]{minTie: score.MaxTieDepth}
}

func (f *frontier[M]) add(s score.Score, m M) {
	if s.IsTie() {
		f.minTie = min(f.minTie, s.TurnCountTie())
	}
	if !f.found || s.Better(f.best) {
		f.best, f.move, f.found = s, m, true
	}
}

// skip records a move that could not be scored.
func (f *frontier[M]) skip() {
	f.skipped = true
}

func (f *frontier[M]) result() (score.Score, M, bool) {
	switch {
	case !f.found:
		return score.NoInfo(), f.move, false
	case f.skipped && f.best.IsWin():
		return f.best.BreakEarly(), f.move, true
	case f.skipped:
		return score.NoInfo(), f.move, true
	case f.best.IsTie():
		// The position is only tied as far as every undecided move is.
		return score.Tie(f.minTie), f.move, true
	default:
		return f.best, f.move, true
	}
}
