package arena

import (
	"time"

	"github.com/ClaytonKnittel/abstract-game/game"
	"github.com/ClaytonKnittel/abstract-game/solver"
)

// AgentConfig describes one bot taking part in an experiment. Bots with an
// episode budget use MCTS, the others negamax.
type AgentConfig struct {
	ID         int
	Depth      uint32
	Goroutines int
	Table      bool
	Episodes   int
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Agent  int // AgentConfig.ID
	Score  string
	solver.SearchMetric
}

type GameMetric struct {
	StartingAgent int    // AgentConfig.ID
	Winner        string // AgentConfig.ID, "tie" or "unfinished"
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID
	Agent2 int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
