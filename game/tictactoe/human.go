package tictactoe

import (
	"github.com/ClaytonKnittel/abstract-game/game"
	"github.com/ClaytonKnittel/abstract-game/player"
)

// Human prompts for and parses moves typed as "X,Y", both from 1 to 3.
type Human struct{}

func (Human) PromptMoveText(t *TicTacToe) string {
	mark := 'X'
	if t.CurrentPlayer() == game.Player2 {
		mark = 'O'
	}
	return "Where would you like to place the next " + string(mark) + "?"
}

func (Human) ParseMove(text string, t *TicTacToe) (Move, error) {
	if len(text) < 3 {
		return Move{}, player.Malformed("%q is not a valid coordinate pair \"X,Y\"", text)
	}
	if len(text) > 3 {
		return Move{}, player.Malformed("Move string is greater than 3 characters long")
	}
	if text[1] != ',' {
		return Move{}, player.Malformed("Expected ',' in second position of move string")
	}
	if text[0] < '1' || text[0] > '3' {
		return Move{}, player.Malformed("Expected a number from '1' - '3' as the x-coordinate, found %c", text[0])
	}
	if text[2] < '1' || text[2] > '3' {
		return Move{}, player.Malformed("Expected a number from '1' - '3' as the y-coordinate, found %c", text[2])
	}

	m := Move{X: text[0] - '1', Y: text[2] - '1'}
	if !t.IsEmpty(m) {
		return Move{}, player.Malformed("Tile %s is already occupied!", text)
	}
	return m, nil
}
