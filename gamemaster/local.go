package gamemaster

import (
	"errors"
	"fmt"

	"github.com/ClaytonKnittel/abstract-game/game"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrIllegalMove = errors.New("illegal move")
)

// Update is one move of a game, along with who made it and the position it
// led to.
type Update[G any, M comparable] struct {
	Move   M
	Player game.Player
	State  G
}

// Engine owns the authoritative copy of a game and only accepts legal moves.
type Engine[G game.Game[G, M], M comparable] struct {
	state   G
	history []Update[G, M]
}

func NewEngine[G game.Game[G, M], M comparable](g G) *Engine[G, M] {
	return &Engine[G, M]{state: g.Clone()}
}

// State returns a copy of the current position.
func (e *Engine[G, M]) State() G {
	return e.state.Clone()
}

func (e *Engine[G, M]) Result() game.Result {
	return e.state.Finished()
}

func (e *Engine[G, M]) Play(m M) error {
	if e.state.Finished().IsFinished() {
		return ErrGameOver
	}

	legal := false
	for lm := range game.Moves[G, M](e.state) {
		if lm == m {
			legal = true
			break
		}
	}
	if !legal {
		return fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}

	mover := e.state.CurrentPlayer()
	e.state.MakeMove(m)
	e.history = append(e.history, Update[G, M]{Move: m, Player: mover, State: e.state.Clone()})
	return nil
}

// History lists every move played so far, oldest first.
func (e *Engine[G, M]) History() []Update[G, M] {
	return e.history
}
