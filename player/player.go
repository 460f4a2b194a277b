// Package player provides the participants of an interactive game: bots
// backed by a solver and humans typing moves into a terminal.
package player

// MakeMoveControl tells the play loop whether a player settled on a move, or
// needs to be prompted again, e.g. because a move takes several selections.
type MakeMoveControl[M any] struct {
	move M
	done bool
}

func Done[M any](m M) MakeMoveControl[M] {
	return MakeMoveControl[M]{move: m, done: true}
}

func Continue[M any]() MakeMoveControl[M] {
	return MakeMoveControl[M]{}
}

// Move returns the chosen move, or false if the player should be prompted
// again.
func (c MakeMoveControl[M]) Move() (M, bool) {
	return c.move, c.done
}

type Player[G any, M comparable] interface {
	DisplayName() string

	// PromptMoveText is optional flavor text printed when asking for a move.
	PromptMoveText(g G) (string, bool)

	// MakeMove chooses a move in g. Returning ErrQuit ends the game, other
	// errors are reported and the player is asked again.
	MakeMove(g G) (MakeMoveControl[M], error)
}
