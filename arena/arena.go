// Package arena pits solver configurations against each other and records how
// every game and move went.
package arena

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/ClaytonKnittel/abstract-game/game"
	"github.com/ClaytonKnittel/abstract-game/gamemaster"
	"github.com/ClaytonKnittel/abstract-game/solver"
)

const (
	Tie        = "tie"
	Unfinished = "unfinished"
)

// Agent is a solver that reports what its last search cost.
type Agent[G game.Game[G, M], M comparable] interface {
	solver.Solver[G, M]
	LastMetric() solver.SearchMetric
}

type Option func(o *options)

type options struct {
	goroutines int
	games      int
	maxMoves   int
}

// WithGoroutines sets how many games are played at once.
func WithGoroutines(goroutines int) Option {
	return func(o *options) {
		if goroutines > 0 {
			o.goroutines = goroutines
		}
	}
}

// WithGames sets the number of games per match up. Agents alternate who moves
// first.
func WithGames(games int) Option {
	return func(o *options) {
		if games > 0 {
			o.games = games
		}
	}
}

// WithMaxMoves ends games that run longer than moves as unfinished.
func WithMaxMoves(moves int) Option {
	return func(o *options) {
		if moves > 0 {
			o.maxMoves = moves
		}
	}
}

type Arena[G game.Game[G, M], M comparable] struct {
	newGame  func() G
	newAgent func(AgentConfig) Agent[G, M]
	options
}

func New[G game.Game[G, M], M comparable](newGame func() G, newAgent func(AgentConfig) Agent[G, M], opts ...Option) *Arena[G, M] {
	a := &Arena[G, M]{
		newGame:  newGame,
		newAgent: newAgent,
		options:  options{goroutines: 1, games: 10, maxMoves: 500},
	}
	for _, opt := range opts {
		opt(&a.options)
	}
	return a
}

type Results struct {
	Games []GameRecord
	Moves []MoveRecord
}

// Run plays every match up, each a pair of agents, and collects the records.
// Game IDs count from 1 in match up order.
func (a *Arena[G, M]) Run(ctx context.Context, matchUps [][2]AgentConfig) (Results, error) {
	total := len(matchUps) * a.games
	games := make([]GameRecord, total)
	moves := make([][]MoveMetric, total)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.goroutines)
	for mi, matchUp := range matchUps {
		for i := 0; i < a.games; i++ {
			id := mi*a.games + i
			eg.Go(func() error {
				first, second := matchUp[0], matchUp[1]
				if i%2 == 1 {
					first, second = second, first
				}
				log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, a.games)

				gm, mm, err := a.playGame(ctx, first, second)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				games[id] = GameRecord{
					ID:         id + 1,
					Agent1:     matchUp[0].ID,
					Agent2:     matchUp[1].ID,
					GameMetric: gm,
				}
				moves[id] = mm

				log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, gm.Winner)
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return Results{}, err
	}

	res := Results{Games: games}
	for id, mm := range moves {
		for _, m := range mm {
			res.Moves = append(res.Moves, MoveRecord{Game: id + 1, MoveMetric: m})
		}
	}
	return res, nil
}

// playGame plays a single game, first moving first.
func (a *Arena[G, M]) playGame(ctx context.Context, first, second AgentConfig) (GameMetric, []MoveMetric, error) {
	g := a.newGame()
	configs := map[game.Player]AgentConfig{
		g.CurrentPlayer():            first,
		g.CurrentPlayer().Opposite(): second,
	}
	agents := map[game.Player]Agent[G, M]{
		g.CurrentPlayer():            a.newAgent(first),
		g.CurrentPlayer().Opposite(): a.newAgent(second),
	}
	engine := gamemaster.NewEngine[G, M](g)

	metric := GameMetric{StartingAgent: first.ID, StartTime: time.Now()}
	var moveMetrics []MoveMetric
	for step := 1; !engine.Result().IsFinished() && step <= a.maxMoves; step++ {
		if err := ctx.Err(); err != nil {
			return GameMetric{}, nil, err
		}

		state := engine.State()
		p := state.CurrentPlayer()
		cfg := configs[p]
		s, m, ok := agents[p].BestMove(state, cfg.Depth)
		if !ok {
			return GameMetric{}, nil, fmt.Errorf("agent %d found no move for:\n%v", cfg.ID, state)
		}
		if err := engine.Play(m); err != nil {
			return GameMetric{}, nil, fmt.Errorf("agent %d: %w", cfg.ID, err)
		}
		moveMetrics = append(moveMetrics, MoveMetric{
			Step:         step,
			Player:       p,
			Agent:        cfg.ID,
			Score:        s.String(),
			SearchMetric: agents[p].LastMetric(),
		})
	}

	metric.EndTime = time.Now()
	metric.Duration = metric.EndTime.Sub(metric.StartTime)
	metric.TotalMoves = len(moveMetrics)
	switch res := engine.Result(); res.Outcome {
	case game.Win:
		metric.Winner = strconv.Itoa(configs[res.Winner].ID)
	case game.Tie:
		metric.Winner = Tie
	default:
		metric.Winner = Unfinished
	}
	return metric, moveMetrics, nil
}
