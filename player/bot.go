package player

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ClaytonKnittel/abstract-game/game"
	"github.com/ClaytonKnittel/abstract-game/solver"
)

// BotPlayer plays whatever its solver considers best at a fixed depth.
type BotPlayer[G game.Game[G, M], M comparable] struct {
	name   string
	solver solver.Solver[G, M]
	depth  uint32
}

func NewBotPlayer[G game.Game[G, M], M comparable](name string, s solver.Solver[G, M], depth uint32) *BotPlayer[G, M] {
	return &BotPlayer[G, M]{name: name, solver: s, depth: depth}
}

func (b *BotPlayer[G, M]) DisplayName() string {
	return b.name
}

func (b *BotPlayer[G, M]) PromptMoveText(g G) (string, bool) {
	return "", false
}

func (b *BotPlayer[G, M]) MakeMove(g G) (MakeMoveControl[M], error) {
	s, m, ok := b.solver.BestMove(g, b.depth)
	if !ok {
		return MakeMoveControl[M]{}, fmt.Errorf("%w: no move found for game:\n%v", ErrInternal, g)
	}
	log.Info().
		Str("player", b.name).
		Stringer("score", s).
		Msgf("bot chose %v", m)
	return Done(m), nil
}
