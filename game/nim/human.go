package nim

import (
	"strconv"

	"github.com/ClaytonKnittel/abstract-game/player"
)

// Human prompts for and parses Nim moves typed by a person.
type Human struct{}

func (Human) PromptMoveText(n *Nim) string {
	if n.sticks == 1 {
		return "How many sticks would you like to take? 1 is the only option"
	}
	return "How many sticks would you like to take? 1 or 2"
}

func (Human) ParseMove(text string, n *Nim) (uint32, error) {
	sticks, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, player.Malformed("%s is not a number", text)
	}
	if sticks == 0 {
		return 0, player.Malformed("Can't take 0 sticks!")
	}
	if uint32(sticks) > min(n.sticks, MaxSticksPerTurn) {
		return 0, player.Malformed("%d is greater than the number of sticks remaining (%d)", sticks, n.sticks)
	}
	return uint32(sticks), nil
}
