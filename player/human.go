package player

import (
	"slices"

	"github.com/samber/lo"

	"github.com/ClaytonKnittel/abstract-game/game"
)

// HumanPlayer knows how to talk to a human about a particular game.
type HumanPlayer[G any, M comparable] interface {
	// PromptMoveText is printed when it is the human's turn.
	PromptMoveText(g G) string

	// ParseMove turns the text the human typed into a move, or returns a
	// MalformedMoveError.
	ParseMove(text string, g G) (M, error)
}

// HumanTermPlayer reads moves typed into a terminal.
type HumanTermPlayer[G game.Game[G, M], M comparable] struct {
	name   string
	human  HumanPlayer[G, M]
	reader LineReader
}

func NewHumanTermPlayer[G game.Game[G, M], M comparable](name string, human HumanPlayer[G, M], reader LineReader) *HumanTermPlayer[G, M] {
	return &HumanTermPlayer[G, M]{name: name, human: human, reader: reader}
}

func (h *HumanTermPlayer[G, M]) DisplayName() string {
	return h.name
}

func (h *HumanTermPlayer[G, M]) PromptMoveText(g G) (string, bool) {
	return h.human.PromptMoveText(g), true
}

func (h *HumanTermPlayer[G, M]) MakeMove(g G) (MakeMoveControl[M], error) {
	line, err := h.reader.NextLine()
	if err != nil {
		return MakeMoveControl[M]{}, err
	}

	m, err := h.human.ParseMove(line, g)
	if err != nil {
		return MakeMoveControl[M]{}, err
	}

	if !lo.Contains(slices.Collect(game.Moves[G, M](g)), m) {
		return MakeMoveControl[M]{}, Malformed("%v is not a legal move!", m)
	}
	return Done(m), nil
}
