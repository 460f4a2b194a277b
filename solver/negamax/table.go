package negamax

import (
	"github.com/rs/zerolog/log"

	"github.com/ClaytonKnittel/abstract-game/game"
	"github.com/ClaytonKnittel/abstract-game/score"
)

type table map[game.StateHash]score.Memo

// begin marks h as being searched, so revisits along the current line are
// recognized.
func (t table) begin(h game.StateHash) {
	t[h] = score.InProgressMemo()
}

// record stores the result of searching h, folding in what was known before
// the search started.
func (t table) record(h game.StateHash, prev score.Memo, s score.Score) {
	if known, ok := prev.Score(); ok && !known.Compatible(s) {
		log.Warn().
			Uint64("hash", uint64(h)).
			Stringer("cached", known).
			Stringer("fresh", s).
			Msg("replacing incompatible cached score")
	}
	t[h] = prev.Merge(s)
}

// absorb merges the known scores of other into t.
func (t table) absorb(other table) {
	for h, memo := range other {
		if s, ok := memo.Score(); ok {
			t.record(h, t[h], s)
		}
	}
}
