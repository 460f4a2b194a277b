package gamemaster

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/ClaytonKnittel/abstract-game/game"
	"github.com/ClaytonKnittel/abstract-game/game/nim"
	"github.com/ClaytonKnittel/abstract-game/game/tictactoe"
	"github.com/ClaytonKnittel/abstract-game/player"
	"github.com/ClaytonKnittel/abstract-game/solver/negamax"
)

func human(name, input string) player.Player[*nim.Nim, uint32] {
	return player.NewHumanTermPlayer[*nim.Nim, uint32](name, nim.Human{}, player.NewBufLineReader(strings.NewReader(input)))
}

func TestEnginePlay(t *testing.T) {
	t.Run("valid move", func(t *testing.T) {
		e := NewEngine[*nim.Nim, uint32](nim.New(4))
		require.NoError(t, e.Play(2))

		history := e.History()
		require.Len(t, history, 1)
		require.Equal(t, uint32(2), history[0].Move)
		require.Equal(t, game.Player1, history[0].Player)
		require.Equal(t, uint32(2), history[0].State.Sticks())
		require.Equal(t, uint32(2), e.State().Sticks())
	})

	t.Run("illegal move", func(t *testing.T) {
		e := NewEngine[*nim.Nim, uint32](nim.New(4))
		require.ErrorIs(t, e.Play(3), ErrIllegalMove)
		require.Empty(t, e.History(), "illegal moves are not recorded")
	})

	t.Run("game over", func(t *testing.T) {
		e := NewEngine[*nim.Nim, uint32](nim.New(2))
		require.NoError(t, e.Play(2))
		require.Equal(t, game.WinFor(game.Player1), e.Result())
		require.ErrorIs(t, e.Play(1), ErrGameOver)
	})

	t.Run("engine owns its copy", func(t *testing.T) {
		g := nim.New(4)
		e := NewEngine[*nim.Nim, uint32](g)
		require.NoError(t, e.Play(1))
		require.Equal(t, uint32(4), g.Sticks())

		s := e.State()
		s.MakeMove(1)
		require.Equal(t, uint32(3), e.State().Sticks(), "state is returned as a copy")
	})
}

func TestTermInterface(t *testing.T) {
	t.Run("humans play to the end", func(t *testing.T) {
		var out bytes.Buffer
		ti := NewTermInterface(nim.New(3), human("alice", "1\n"), human("bob", "2\n"), &out)
		require.NoError(t, ti.Play())

		text := out.String()
		require.Contains(t, text, "Sticks left: 3\nalice to move:\n")
		require.Contains(t, text, "Sticks left: 2\nbob to move:\n")
		require.True(t, strings.HasSuffix(text, "bob wins!\n"), text)
	})

	t.Run("bad input is reported and retried", func(t *testing.T) {
		var out bytes.Buffer
		ti := NewTermInterface(nim.New(2), human("alice", "0\nzz\n2\n"), human("bob", ""), &out)
		require.NoError(t, ti.Play())

		text := out.String()
		require.Contains(t, text, "malformed move: Can't take 0 sticks!")
		require.Contains(t, text, "malformed move: zz is not a number")
		require.Contains(t, text, "alice wins!")
	})

	t.Run("quitting stops the game", func(t *testing.T) {
		var out bytes.Buffer
		ti := NewTermInterface(nim.New(5), human("alice", "1\n"), human("bob", "q\n"), &out)
		require.ErrorIs(t, ti.Play(), player.ErrQuit)
		require.Len(t, ti.Engine().History(), 1)
	})

	t.Run("read errors stop the game", func(t *testing.T) {
		var out bytes.Buffer
		broken := player.NewHumanTermPlayer[*nim.Nim, uint32]("alice", nim.Human{}, player.NewBufLineReader(iotest.ErrReader(errors.New("disconnected"))))
		ti := NewTermInterface(nim.New(5), broken, human("bob", ""), &out)
		require.ErrorIs(t, ti.Play(), player.ErrIO)
		require.Equal(t, 1, strings.Count(out.String(), "alice to move:"), "the move is not asked for again")
	})

	t.Run("perfect tic-tac-toe is a tie", func(t *testing.T) {
		type ttt = tictactoe.TicTacToe
		var out bytes.Buffer
		bot1 := player.NewBotPlayer[*ttt, tictactoe.Move]("crosses", negamax.New[*ttt, tictactoe.Move](negamax.WithTable()), 9)
		bot2 := player.NewBotPlayer[*ttt, tictactoe.Move]("noughts", negamax.New[*ttt, tictactoe.Move](negamax.WithTable()), 9)
		ti := NewTermInterface[*ttt, tictactoe.Move](tictactoe.New(), bot1, bot2, &out)
		require.NoError(t, ti.Play())
		require.True(t, strings.HasSuffix(out.String(), "It's a tie!\n"), out.String())
		require.Len(t, ti.Engine().History(), 9)
	})

	t.Run("bot against bot", func(t *testing.T) {
		var out bytes.Buffer
		bot1 := player.NewBotPlayer[*nim.Nim, uint32]("first", negamax.New[*nim.Nim, uint32](), 20)
		bot2 := player.NewBotPlayer[*nim.Nim, uint32]("second", negamax.New[*nim.Nim, uint32](), 20)
		ti := NewTermInterface[*nim.Nim, uint32](nim.New(9), bot1, bot2, &out)
		require.NoError(t, ti.Play())
		require.Contains(t, out.String(), "second wins!", "9 sticks is lost for the first player")
	})
}
