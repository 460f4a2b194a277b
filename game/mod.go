package game

import "iter"

// StateHash identifies a game position, e.g. as a transposition table key.
type StateHash uint64

// Hasher is implemented by games whose positions can be cached by solvers.
// Equal positions must hash equally.
type Hasher interface {
	Hash() StateHash
}

// MoveIterator produces the legal moves of a game one at a time. It holds only
// its own cursor; the game is passed to each call and never mutated.
type MoveIterator[G any, M any] interface {
	// Next returns the next legal move, or false once all moves were produced.
	Next(g G) (M, bool)
}

// Game is a two player, turn based, perfect information game. G is the
// concrete game type itself, normally a pointer, so that Clone can return it.
//
// Cloning must be deep: making moves on a clone never affects the original.
type Game[G any, M comparable] interface {
	// MoveGenerator returns a fresh iterator over the legal moves from this
	// position.
	MoveGenerator() MoveIterator[G, M]

	// MakeMove plays m in place. m must be a legal move.
	MakeMove(m M)

	// CurrentPlayer is the player to make the next move.
	CurrentPlayer() Player

	Finished() Result

	Clone() G
}

// Moves returns the legal moves of g. Every call starts a new, independent
// sequence.
func Moves[G Game[G, M], M comparable](g G) iter.Seq[M] {
	return func(yield func(M) bool) {
		it := g.MoveGenerator()
		for m, ok := it.Next(g); ok; m, ok = it.Next(g) {
			if !yield(m) {
				return
			}
		}
	}
}

// WithMove returns a copy of g with m played, leaving g untouched.
func WithMove[G Game[G, M], M comparable](g G, m M) G {
	next := g.Clone()
	next.MakeMove(m)
	return next
}

// SearchImmediateWin returns a move that wins the game on the spot for the
// current player, if there is one.
func SearchImmediateWin[G Game[G, M], M comparable](g G) (M, bool) {
	winner := WinFor(g.CurrentPlayer())
	for m := range Moves[G, M](g) {
		if WithMove[G, M](g, m).Finished() == winner {
			return m, true
		}
	}
	var none M
	return none, false
}
