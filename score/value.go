package score

// Value is the outcome of a game at a fixed search depth, from the perspective
// of the player to move.
type Value uint8

const (
	CurrentPlayerWins Value = iota
	OtherPlayerWins
	Tied
)

func (v Value) IsTied() bool {
	return v == Tied
}

func (v Value) String() string {
	switch v {
	case CurrentPlayerWins:
		return "cur"
	case OtherPlayerWins:
		return "oth"
	case Tied:
		return "tie"
	default:
		return "unknown"
	}
}
