package arena

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ClaytonKnittel/abstract-game/game/nim"
	"github.com/ClaytonKnittel/abstract-game/score"
)

func newNimArena(sticks uint32, opts ...Option) *Arena[*nim.Nim, uint32] {
	return New(
		func() *nim.Nim { return nim.New(sticks) },
		NewAgent[*nim.Nim, uint32],
		opts...,
	)
}

func TestRun(t *testing.T) {
	t.Run("perfect players win when moving first", func(t *testing.T) {
		a := newNimArena(7, WithGames(2), WithGoroutines(2))
		first := AgentConfig{ID: 1, Depth: 20, Goroutines: 1, Table: true}
		second := AgentConfig{ID: 2, Depth: 20, Goroutines: 2}

		res, err := a.Run(context.Background(), [][2]AgentConfig{{first, second}})
		require.NoError(t, err)
		require.Len(t, res.Games, 2)

		require.Equal(t, 1, res.Games[0].ID)
		require.Equal(t, 1, res.Games[0].StartingAgent)
		require.Equal(t, "1", res.Games[0].Winner)
		require.Equal(t, 2, res.Games[1].StartingAgent, "agents alternate moving first")
		require.Equal(t, "2", res.Games[1].Winner)
		for _, g := range res.Games {
			require.Equal(t, 1, g.Agent1)
			require.Equal(t, 2, g.Agent2)
			require.Equal(t, 5, g.TotalMoves)
		}

		require.Len(t, res.Moves, 10)
		require.Equal(t, 1, res.Moves[0].Game)
		require.Equal(t, 1, res.Moves[0].Step)
		require.Equal(t, 1, res.Moves[0].Agent)
		require.Positive(t, res.Moves[0].Nodes, "search metrics are collected")
		require.Equal(t, 2, res.Moves[5].Game)

		require.Equal(t, map[string]int{"1": 1, "2": 1}, Wins(res.Games))
	})

	t.Run("deeper search beats a blind one", func(t *testing.T) {
		a := newNimArena(10, WithGames(2))
		blind := AgentConfig{ID: 1, Depth: 1, Goroutines: 1}
		deep := AgentConfig{ID: 2, Depth: 20, Goroutines: 1, Table: true}

		res, err := a.Run(context.Background(), [][2]AgentConfig{{blind, deep}})
		require.NoError(t, err)
		require.Equal(t, map[string]int{"2": 2}, Wins(res.Games))
	})

	t.Run("negamax against mcts", func(t *testing.T) {
		a := newNimArena(9, WithGames(2))
		solver := AgentConfig{ID: 1, Depth: 20, Goroutines: 1, Table: true}
		sampler := AgentConfig{ID: 2, Depth: 20, Goroutines: 1, Episodes: 200}

		res, err := a.Run(context.Background(), [][2]AgentConfig{{solver, sampler}})
		require.NoError(t, err)
		require.Equal(t, 2, res.Games[1].StartingAgent)
		require.Equal(t, "1", res.Games[1].Winner, "9 sticks is lost for whoever moves first")
		for _, m := range res.Moves {
			if m.Agent == 2 && m.Score == score.NoInfo().String() {
				require.Equal(t, 200, m.Nodes, "every mcts episode is counted")
			}
		}
	})

	t.Run("long games end unfinished", func(t *testing.T) {
		a := newNimArena(30, WithGames(1), WithMaxMoves(3))
		config := AgentConfig{ID: 1, Depth: 2, Goroutines: 1}

		res, err := a.Run(context.Background(), [][2]AgentConfig{{config, config}})
		require.NoError(t, err)
		require.Equal(t, Unfinished, res.Games[0].Winner)
		require.Equal(t, 3, res.Games[0].TotalMoves)
		require.Empty(t, Wins(res.Games))
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		a := newNimArena(10, WithGames(1))
		config := AgentConfig{ID: 1, Depth: 2, Goroutines: 1}
		_, err := a.Run(ctx, [][2]AgentConfig{{config, config}})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestExperiments(t *testing.T) {
	t.Run("depth", func(t *testing.T) {
		baseline := AgentConfig{ID: 0, Depth: 4, Goroutines: 1}
		exp := DepthExperiment(baseline, []uint32{2, 8})
		require.Len(t, exp.Configs, 3)
		require.Len(t, exp.MatchUps, 2)
		require.Equal(t, AgentConfig{ID: 2, Depth: 8, Goroutines: 1}, exp.MatchUps[1][1])
		require.Equal(t, baseline, exp.MatchUps[1][0])
	})

	t.Run("mcts", func(t *testing.T) {
		baseline := AgentConfig{ID: 0, Depth: 10, Goroutines: 1, Table: true}
		exp := MCTSExperiment(baseline, []int{100, 1000})
		require.Len(t, exp.Configs, 3)
		require.Equal(t, AgentConfig{ID: 2, Depth: 10, Goroutines: 1, Episodes: 1000}, exp.MatchUps[1][1])
	})

	t.Run("parallelization", func(t *testing.T) {
		exp := ParallelizationExperiment(6, true, []int{1, 4})
		require.Len(t, exp.Configs, 2)
		require.Equal(t, exp.MatchUps[1][0], exp.MatchUps[1][1])
		require.Equal(t, 4, exp.MatchUps[1][0].Goroutines)
	})

	t.Run("records are written", func(t *testing.T) {
		root := t.TempDir()
		a := newNimArena(5, WithGames(2))
		exp := ParallelizationExperiment(10, true, []int{1, 2})

		res, err := a.RunExperiment(context.Background(), exp, root)
		require.NoError(t, err)
		require.Len(t, res.Games, 4)

		dirs, err := filepath.Glob(filepath.Join(root, exp.Name, "*"))
		require.NoError(t, err)
		require.Len(t, dirs, 1)

		games := readCSV(t, filepath.Join(dirs[0], "game_records.csv"))
		require.Len(t, games, 5, "header plus one row per game")
		require.Equal(t, "winner", games[0][4])

		configs := readCSV(t, filepath.Join(dirs[0], "agent_configs.csv"))
		require.Equal(t, []string{"2", "10", "2", "true", "0"}, configs[2])

		moves := readCSV(t, filepath.Join(dirs[0], "move_records.csv"))
		require.Len(t, moves, len(res.Moves)+1)
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
