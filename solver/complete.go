package solver

import (
	"fmt"

	"github.com/ClaytonKnittel/abstract-game/game"
	"github.com/ClaytonKnittel/abstract-game/score"
)

// CompleteSolver is implemented by solvers that always find the true optimal
// score, including the shortest path to a win and the longest path to a loss.
// A solver that merely never loses is not complete.
type CompleteSolver[G game.Game[G, M], M comparable] interface {
	Solver[G, M]
	Complete()
}

// BestMoveDetermined runs s and converts its score to a determined score. It
// fails if s returned a score with undecided depths, which a complete solver
// must never do.
func BestMoveDetermined[G game.Game[G, M], M comparable](s CompleteSolver[G, M], g G, depth uint32) (score.Determined, M, bool, error) {
	sc, m, ok := s.BestMove(g, depth)
	d, determined := score.FromScore(sc)
	if !determined {
		return score.Determined{}, m, ok, fmt.Errorf("expected a determined score, got %s: %w", sc, score.ErrUndetermined)
	}
	return d, m, ok, nil
}
