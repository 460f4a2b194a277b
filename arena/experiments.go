package arena

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ClaytonKnittel/abstract-game/solver/mcts"
	"github.com/ClaytonKnittel/abstract-game/solver/negamax"
)

// Experiment is a set of agents and the match ups played between them.
type Experiment struct {
	Name     string
	Configs  []AgentConfig
	MatchUps [][2]AgentConfig
}

// DepthExperiment pairs a baseline agent against agents searching to each of
// depths.
func DepthExperiment(baseline AgentConfig, depths []uint32) Experiment {
	exp := Experiment{Name: "depth_to_strength", Configs: []AgentConfig{baseline}}
	for i, depth := range depths {
		config := baseline
		config.ID = baseline.ID + i + 1
		config.Depth = depth
		exp.Configs = append(exp.Configs, config)
		exp.MatchUps = append(exp.MatchUps, [2]AgentConfig{baseline, config})
	}
	return exp
}

// ParallelizationExperiment plays each goroutine count against itself, for the
// same playing strength and similar game length.
func ParallelizationExperiment(depth uint32, table bool, goroutines []int) Experiment {
	exp := Experiment{Name: "parallelization_to_throughput"}
	for i, g := range goroutines {
		config := AgentConfig{ID: i + 1, Depth: depth, Goroutines: g, Table: table}
		exp.Configs = append(exp.Configs, config)
		exp.MatchUps = append(exp.MatchUps, [2]AgentConfig{config, config})
	}
	return exp
}

// MCTSExperiment pairs a baseline agent against MCTS agents with each of
// episodes as their budget. Playouts are cut off at the baseline's depth.
func MCTSExperiment(baseline AgentConfig, episodes []int) Experiment {
	exp := Experiment{Name: "mcts_to_strength", Configs: []AgentConfig{baseline}}
	for i, e := range episodes {
		config := AgentConfig{ID: baseline.ID + i + 1, Depth: baseline.Depth, Goroutines: baseline.Goroutines, Episodes: e}
		exp.Configs = append(exp.Configs, config)
		exp.MatchUps = append(exp.MatchUps, [2]AgentConfig{baseline, config})
	}
	return exp
}

// NewAgent builds the solver described by config, with metrics enabled.
func NewAgent[G negamax.Position[G, M], M comparable](config AgentConfig) Agent[G, M] {
	if config.Episodes > 0 {
		return mcts.New[G, M](
			mcts.WithMetrics(),
			mcts.WithGoroutines(config.Goroutines),
			mcts.WithEpisodes(config.Episodes),
			mcts.WithSeed(uint64(config.ID)),
		)
	}

	opts := []negamax.Option{negamax.WithMetrics(), negamax.WithGoroutines(config.Goroutines)}
	if config.Table {
		opts = append(opts, negamax.WithTable())
	}
	return negamax.New[G, M](opts...)
}

// RunExperiment plays exp and stores its agents and records under root.
func (a *Arena[G, M]) RunExperiment(ctx context.Context, exp Experiment, root string) (Results, error) {
	log.Info().Msgf("starting %s experiment...", exp.Name)
	res, err := a.Run(ctx, exp.MatchUps)
	if err != nil {
		return Results{}, fmt.Errorf("%s experiment: %w", exp.Name, err)
	}
	log.Info().Msgf("completed %s experiment", exp.Name)

	writer, err := NewWriter(root, exp.Name)
	if err != nil {
		return res, err
	}
	if err := writer.WriteAgentConfigs(exp.Configs); err != nil {
		return res, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(res.Games); err != nil {
		return res, fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(res.Moves); err != nil {
		return res, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored experiment records")
	return res, nil
}
