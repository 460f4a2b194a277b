// Package nim implements single-pile Nim: players alternately take one or two
// sticks and whoever takes the last stick wins.
package nim

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/ClaytonKnittel/abstract-game/game"
)

const MaxSticksPerTurn uint32 = 2

type Nim struct {
	sticks  uint32
	player1 bool
}

// New starts a game with the given number of sticks, Player1 to move.
func New(sticks uint32) *Nim {
	return &Nim{sticks: sticks, player1: true}
}

func (n *Nim) Sticks() uint32 {
	return n.sticks
}

type MoveIter struct {
	taken uint32
}

func (it *MoveIter) Next(n *Nim) (uint32, bool) {
	if it.taken >= min(MaxSticksPerTurn, n.sticks) {
		return 0, false
	}
	it.taken++
	return it.taken, true
}

func (n *Nim) MoveGenerator() game.MoveIterator[*Nim, uint32] {
	return &MoveIter{}
}

func (n *Nim) MakeMove(sticks uint32) {
	if sticks > n.sticks {
		panic(fmt.Sprintf("cannot take %d sticks with only %d left", sticks, n.sticks))
	}
	n.sticks -= sticks
	n.player1 = !n.player1
}

func (n *Nim) CurrentPlayer() game.Player {
	if n.player1 {
		return game.Player1
	}
	return game.Player2
}

// Finished reports a win for the player who took the last stick.
func (n *Nim) Finished() game.Result {
	if n.sticks == 0 {
		return game.WinFor(n.CurrentPlayer().Opposite())
	}
	return game.Unfinished()
}

func (n *Nim) Clone() *Nim {
	c := *n
	return &c
}

func (n *Nim) Hash() game.StateHash {
	var buf [5]byte
	binary.LittleEndian.PutUint32(buf[:4], n.sticks)
	if n.player1 {
		buf[4] = 1
	}
	return game.StateHash(xxhash.Sum64(buf[:]))
}

// Moves lists the legal moves in increasing order.
func (n *Nim) Moves() []uint32 {
	var moves []uint32
	for m := range game.Moves[*Nim, uint32](n) {
		moves = append(moves, m)
	}
	return moves
}

func (n *Nim) String() string {
	return fmt.Sprintf("Sticks left: %d", n.sticks)
}
