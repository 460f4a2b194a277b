// Package solver defines the contract shared by game solvers and the helpers
// built on top of it.
package solver

import (
	"fmt"
	"iter"

	"github.com/ClaytonKnittel/abstract-game/game"
	"github.com/ClaytonKnittel/abstract-game/score"
)

// Solver searches a game to a bounded depth.
type Solver[G game.Game[G, M], M comparable] interface {
	// BestMove returns the score of g from the perspective of its current
	// player, searching at most depth moves ahead, along with the move that
	// achieves it. The bool is false when no move is suggested, e.g. because g
	// is already finished.
	BestMove(g G, depth uint32) (score.Score, M, bool)
}

// Loss grades a move against the best available one.
type Loss uint8

const (
	// Equivalent moves are as good as the best move as far as the solver can
	// tell at the searched depth.
	Equivalent Loss = iota
	Worse
)

func (l Loss) String() string {
	switch l {
	case Equivalent:
		return "equivalent"
	case Worse:
		return "worse"
	default:
		return fmt.Sprintf("Loss(%d)", uint8(l))
	}
}

// MoveLoss reports whether playing m in g gives up anything compared to the
// solver's best move. g must not be finished and depth must be at least 1.
func MoveLoss[G game.Game[G, M], M comparable](s Solver[G, M], m M, g G, depth uint32) Loss {
	if g.Finished().IsFinished() {
		panic("MoveLoss called on a finished game")
	}
	if depth == 0 {
		panic("MoveLoss needs a depth of at least 1")
	}

	best, _, _ := s.BestMove(g, depth)
	next := game.WithMove(g, m)
	moveScore := FinishedScore(next.Finished(), g.CurrentPlayer())
	if !next.Finished().IsFinished() {
		childScore, _, _ := s.BestMove(next, depth-1)
		moveScore = childScore.Backstep()
	}

	if best.Compatible(moveScore) {
		return Equivalent
	}
	if !best.Better(moveScore) {
		panic(fmt.Sprintf("move scored %s, better than the best move's %s", moveScore, best))
	}
	return Worse
}

// FinishedScore scores a finished game for mover, the player who made the
// move that ended it. Unfinished games have no information.
func FinishedScore(res game.Result, mover game.Player) score.Score {
	switch res.Outcome {
	case game.Win:
		if res.Winner == mover {
			return score.OptimalWin(1)
		}
		return score.OptimalLose(1)
	case game.Tie:
		return score.GuaranteedTie()
	default:
		return score.NoInfo()
	}
}

// Playout yields the successive positions reached by letting s pick every move,
// paired with the move that produced them. It stops once the game is finished
// or s suggests no move. g is not modified.
func Playout[G game.Game[G, M], M comparable](s Solver[G, M], g G, depth uint32) iter.Seq2[G, M] {
	return func(yield func(G, M) bool) {
		cur := g
		for !cur.Finished().IsFinished() {
			_, m, ok := s.BestMove(cur, depth)
			if !ok {
				return
			}
			cur = game.WithMove(cur, m)
			if !yield(cur, m) {
				return
			}
		}
	}
}
