// Package gamemaster runs games between two players, enforcing turn order and
// move legality.
package gamemaster

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/ClaytonKnittel/abstract-game/game"
	"github.com/ClaytonKnittel/abstract-game/player"
)

// TermInterface plays a game on a terminal, printing the board before every
// move.
type TermInterface[G game.Game[G, M], M comparable] struct {
	engine  *Engine[G, M]
	player1 player.Player[G, M]
	player2 player.Player[G, M]
	out     io.Writer
}

func NewTermInterface[G game.Game[G, M], M comparable](g G, player1, player2 player.Player[G, M], out io.Writer) *TermInterface[G, M] {
	return &TermInterface[G, M]{
		engine:  NewEngine[G, M](g),
		player1: player1,
		player2: player2,
		out:     out,
	}
}

func (t *TermInterface[G, M]) Engine() *Engine[G, M] {
	return t.engine
}

func (t *TermInterface[G, M]) player(p game.Player) player.Player[G, M] {
	if p.IsP1() {
		return t.player1
	}
	return t.player2
}

// Play runs the game to completion. It returns player.ErrQuit if a player
// quit, and internal or I/O errors from players. Any other error is shown to
// the player, who is then asked again.
func (t *TermInterface[G, M]) Play() error {
	for !t.engine.Result().IsFinished() {
		g := t.engine.State()
		p := t.player(g.CurrentPlayer())
		fmt.Fprintln(t.out, g)
		fmt.Fprintf(t.out, "%s to move:\n", p.DisplayName())

		m, err := t.nextMove(p, g)
		if err != nil {
			return err
		}
		log.Debug().Str("player", p.DisplayName()).Msgf("played %v", m)
	}

	res := t.engine.Result()
	switch res.Outcome {
	case game.Win:
		fmt.Fprintf(t.out, "%s wins!\n", t.player(res.Winner).DisplayName())
	case game.Tie:
		fmt.Fprintln(t.out, "It's a tie!")
	}
	return nil
}

func (t *TermInterface[G, M]) nextMove(p player.Player[G, M], g G) (M, error) {
	for {
		if text, ok := p.PromptMoveText(g); ok {
			fmt.Fprintln(t.out, text)
		}

		ctl, err := p.MakeMove(g)
		if err == nil {
			m, done := ctl.Move()
			if !done {
				continue
			}
			if err = t.engine.Play(m); err == nil {
				return m, nil
			}
		}
		if errors.Is(err, player.ErrQuit) || errors.Is(err, player.ErrInternal) || errors.Is(err, player.ErrIO) {
			var none M
			return none, err
		}
		fmt.Fprintln(t.out, err)
	}
}
