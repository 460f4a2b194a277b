// Package gametest holds helpers for testing games and solvers. Everything is
// driven by an explicit random source, so failures reproduce from a seed.
package gametest

import (
	"fmt"
	"slices"

	"golang.org/x/exp/rand"

	"github.com/ClaytonKnittel/abstract-game/game"
	"github.com/ClaytonKnittel/abstract-game/score"
	"github.com/ClaytonKnittel/abstract-game/solver"
)

// RandomMove picks one of g's legal moves uniformly.
func RandomMove[G game.Game[G, M], M comparable](g G, r *rand.Rand) (M, bool) {
	moves := slices.Collect(game.Moves[G, M](g))
	if len(moves) == 0 {
		var none M
		return none, false
	}
	return moves[r.Intn(len(moves))], true
}

// RandomPlayout plays random moves on a copy of g until it finishes or
// maxMoves were made. It returns every position visited, starting with g's
// copy, and the moves between them.
func RandomPlayout[G game.Game[G, M], M comparable](g G, r *rand.Rand, maxMoves int) ([]G, []M) {
	cur := g.Clone()
	states := []G{cur}
	var moves []M
	for len(moves) < maxMoves && !cur.Finished().IsFinished() {
		m, ok := RandomMove[G, M](cur, r)
		if !ok {
			break
		}
		cur = game.WithMove(cur, m)
		states = append(states, cur)
		moves = append(moves, m)
	}
	return states, moves
}

// CheckConsistent verifies that the score s reports for g agrees with the
// scores it reports for every position one move later.
func CheckConsistent[G game.Game[G, M], M comparable](s solver.Solver[G, M], g G, depth uint32) error {
	if depth == 0 || g.Finished().IsFinished() {
		return nil
	}

	best, bestMove, ok := s.BestMove(g, depth)
	if !ok {
		return fmt.Errorf("no move suggested for %v", g)
	}

	found := false
	for m := range game.Moves[G, M](g) {
		next := game.WithMove(g, m)
		moveScore := solver.FinishedScore(next.Finished(), g.CurrentPlayer())
		if !next.Finished().IsFinished() {
			childScore, _, _ := s.BestMove(next, depth-1)
			moveScore = childScore.Backstep()
		}

		if moveScore.Better(best) && !moveScore.Compatible(best) {
			return fmt.Errorf("move %v scores %s, better than best %s for %v", m, moveScore, best, g)
		}
		if m == bestMove {
			found = true
			if !moveScore.Compatible(best) {
				return fmt.Errorf("best move %v scores %s, but %s was reported for %v", m, moveScore, best, g)
			}
		}
	}
	if !found {
		return fmt.Errorf("best move %v is not legal in %v", bestMove, g)
	}
	return nil
}

// CheckDetermined verifies that a complete solver's score for g is fully
// determined at depth, and that it plays to the reported outcome.
func CheckDetermined[G game.Game[G, M], M comparable](s solver.CompleteSolver[G, M], g G, depth uint32) error {
	if g.Finished().IsFinished() {
		return nil
	}
	d, _, _, err := solver.BestMoveDetermined[G, M](s, g, depth)
	if err != nil {
		return err
	}
	if d.Value() == score.Tied {
		return nil
	}

	plies := uint32(0)
	var last G
	for state := range solver.Playout[G, M](s, g, depth) {
		plies++
		last = state
	}
	if plies != d.MovesToWin() {
		return fmt.Errorf("%s reported for %v, but playout took %d moves", d, g, plies)
	}

	want := game.WinFor(g.CurrentPlayer())
	if d.Value() == score.OtherPlayerWins {
		want = game.WinFor(g.CurrentPlayer().Opposite())
	}
	if res := last.Finished(); res != want {
		return fmt.Errorf("%s reported for %v, but playout ended with %s", d, g, res)
	}
	return nil
}
