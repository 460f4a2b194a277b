package mcts

import (
	"math"

	"github.com/ClaytonKnittel/abstract-game/game"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const (
	Win  = 1.0
	Loss = 0.0
	Draw = (Win + Loss) / 2
)

// ucb1 = q/n + sqrt(c^2*ln(N)/n)
func ucb1(rewards float64, visits int, c2LnN float64) float64 {
	// Prioritize unexplored nodes
	if visits == 0 {
		return math.Inf(1)
	}
	return rewards/float64(visits) + math.Sqrt(c2LnN/float64(visits))
}

// reward scores a playout result for p. Ties and playouts cut off before the
// game finished count as draws.
func reward(res game.Result, p game.Player) float64 {
	switch {
	case res.Outcome != game.Win:
		return Draw
	case res.Winner == p:
		return Win
	default:
		return Loss
	}
}
