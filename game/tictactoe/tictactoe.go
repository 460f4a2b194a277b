// Package tictactoe implements tic-tac-toe on a 3x3 board. Player1 plays X and
// always moves first.
package tictactoe

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/ClaytonKnittel/abstract-game/game"
)

const Size = 3

type tile uint8

const (
	empty tile = iota
	x
	o
)

func (t tile) String() string {
	switch t {
	case x:
		return "X"
	case o:
		return "O"
	default:
		return " "
	}
}

// Move places the current player's mark at column X, row Y, both counted
// from 0.
type Move struct {
	X, Y uint8
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.X, m.Y)
}

func (m Move) index() int {
	return int(m.Y)*Size + int(m.X)
}

type TicTacToe struct {
	board [Size * Size]tile
	turns uint8
}

func New() *TicTacToe {
	return &TicTacToe{}
}

// FromRows builds a position from three rows of "X", "O" and any other
// character for an empty tile. The player to move follows from the mark count.
func FromRows(rows ...string) (*TicTacToe, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("expected %d rows, got %d", Size, len(rows))
	}
	t := New()
	for y, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("row %d has length %d", y, len(row))
		}
		for xi, c := range []byte(row) {
			i := y*Size + xi
			switch c {
			case 'X':
				t.board[i] = x
				t.turns++
			case 'O':
				t.board[i] = o
				t.turns++
			}
		}
	}
	var crosses, noughts int
	for _, tl := range t.board {
		switch tl {
		case x:
			crosses++
		case o:
			noughts++
		}
	}
	if crosses != noughts && crosses != noughts+1 {
		return nil, fmt.Errorf("%d X and %d O is not a reachable position", crosses, noughts)
	}
	return t, nil
}

// IsEmpty reports whether nobody has played at m yet.
func (t *TicTacToe) IsEmpty(m Move) bool {
	return t.board[m.index()] == empty
}

type MoveIter struct {
	next int
}

func (it *MoveIter) Next(t *TicTacToe) (Move, bool) {
	if it.next == 0 && t.Finished().IsFinished() {
		it.next = len(t.board)
	}
	for ; it.next < len(t.board); it.next++ {
		if t.board[it.next] == empty {
			i := it.next
			it.next++
			return Move{X: uint8(i % Size), Y: uint8(i / Size)}, true
		}
	}
	return Move{}, false
}

func (t *TicTacToe) MoveGenerator() game.MoveIterator[*TicTacToe, Move] {
	return &MoveIter{}
}

func (t *TicTacToe) MakeMove(m Move) {
	if m.X >= Size || m.Y >= Size || !t.IsEmpty(m) {
		panic(fmt.Sprintf("cannot play at %v", m))
	}
	t.board[m.index()] = t.mark()
	t.turns++
}

func (t *TicTacToe) mark() tile {
	if t.turns%2 == 0 {
		return x
	}
	return o
}

func (t *TicTacToe) CurrentPlayer() game.Player {
	if t.turns%2 == 0 {
		return game.Player1
	}
	return game.Player2
}

var lines = [...][Size]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Finished reports a win for whoever completed a row, column or diagonal, and
// a tie once the board is full.
func (t *TicTacToe) Finished() game.Result {
	for _, line := range lines {
		first := t.board[line[0]]
		if first != empty && first == t.board[line[1]] && first == t.board[line[2]] {
			if first == x {
				return game.WinFor(game.Player1)
			}
			return game.WinFor(game.Player2)
		}
	}
	if int(t.turns) == len(t.board) {
		return game.Tied()
	}
	return game.Unfinished()
}

func (t *TicTacToe) Clone() *TicTacToe {
	c := *t
	return &c
}

// Hash depends only on the board; the player to move follows from it.
func (t *TicTacToe) Hash() game.StateHash {
	var buf [Size * Size]byte
	for i, tl := range t.board {
		buf[i] = byte(tl)
	}
	return game.StateHash(xxhash.Sum64(buf[:]))
}

func (t *TicTacToe) String() string {
	var b strings.Builder
	for y := 0; y < Size; y++ {
		if y > 0 {
			b.WriteString("-+-+-\n")
		}
		for xi := 0; xi < Size; xi++ {
			if xi > 0 {
				b.WriteByte('|')
			}
			b.WriteString(t.board[y*Size+xi].String())
		}
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}
