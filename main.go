package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"github.com/ClaytonKnittel/abstract-game/arena"
	"github.com/ClaytonKnittel/abstract-game/config"
	"github.com/ClaytonKnittel/abstract-game/game/nim"
)

func main() {
	cfg, err := config.Load("arena", os.Args[1:], ".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := cfg.SetupLogging(os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sticks := uint32(cfg.Sticks)
	a := arena.New(
		func() *nim.Nim { return nim.New(sticks) },
		arena.NewAgent[*nim.Nim, uint32],
		arena.WithGames(cfg.Games),
		arena.WithGoroutines(cfg.Parallelism),
	)

	depth := uint32(cfg.Depth)
	baseline := arena.AgentConfig{ID: 0, Depth: depth, Goroutines: cfg.Goroutines, Table: cfg.Table}
	experiments := []arena.Experiment{
		arena.DepthExperiment(baseline, []uint32{1, 2, depth / 4, depth / 2}),
		arena.ParallelizationExperiment(depth, cfg.Table, []int{1, 2, 4, 8}),
		arena.MCTSExperiment(baseline, []int{100, 1000, 10000}),
	}

	for _, exp := range experiments {
		res, err := a.RunExperiment(ctx, exp, cfg.OutputDir)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		log.Info().Interface("wins", arena.Wins(res.Games)).Msgf("%s results", exp.Name)
	}
}
