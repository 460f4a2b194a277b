package game

import "fmt"

// Player labels one of the two sides of a game. Player1 does not need to be
// the first to move.
type Player uint8

const (
	Player1 Player = iota + 1
	Player2
)

func (p Player) IsP1() bool {
	return p == Player1
}

func (p Player) IsP2() bool {
	return p == Player2
}

func (p Player) Opposite() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	default:
		return fmt.Sprintf("Player(%d)", uint8(p))
	}
}

type Outcome uint8

const (
	NotFinished Outcome = iota
	Win
	Tie
)

// Result is the state of a game: still going, won by a player, or tied.
// Winner is only meaningful when Outcome is Win.
type Result struct {
	Outcome Outcome
	Winner  Player
}

func Unfinished() Result {
	return Result{Outcome: NotFinished}
}

func WinFor(p Player) Result {
	return Result{Outcome: Win, Winner: p}
}

func Tied() Result {
	return Result{Outcome: Tie}
}

func (r Result) IsFinished() bool {
	return r.Outcome != NotFinished
}

func (r Result) String() string {
	switch r.Outcome {
	case NotFinished:
		return "not finished"
	case Win:
		return r.Winner.String() + " wins"
	case Tie:
		return "tie"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(r.Outcome))
	}
}
