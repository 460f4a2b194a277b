// Command nim plays Nim in the terminal between any mix of humans and bots.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ClaytonKnittel/abstract-game/config"
	"github.com/ClaytonKnittel/abstract-game/game/nim"
	"github.com/ClaytonKnittel/abstract-game/gamemaster"
	"github.com/ClaytonKnittel/abstract-game/player"
	"github.com/ClaytonKnittel/abstract-game/solver/negamax"
)

func main() {
	cfg, err := config.Load("nim", os.Args[1:], ".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := cfg.SetupLogging(os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var reader player.LineReader
	if cfg.Player1 == "human" || cfg.Player2 == "human" {
		term, err := player.NewTermLineReader("> ")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open terminal")
		}
		defer term.Close()
		reader = term
	}

	player1 := newPlayer("Player 1", cfg.Player1, cfg, reader)
	player2 := newPlayer("Player 2", cfg.Player2, cfg, reader)
	ti := gamemaster.NewTermInterface(nim.New(uint32(cfg.Sticks)), player1, player2, os.Stdout)

	err = ti.Play()
	switch {
	case errors.Is(err, player.ErrQuit):
		fmt.Println(err)
	case err != nil:
		log.Error().Err(err).Msg("game aborted")
	}
}

func newPlayer(name, kind string, cfg config.Config, reader player.LineReader) player.Player[*nim.Nim, uint32] {
	if kind == "human" {
		return player.NewHumanTermPlayer[*nim.Nim, uint32](name, nim.Human{}, reader)
	}

	opts := []negamax.Option{negamax.WithGoroutines(cfg.Goroutines)}
	if cfg.Table {
		opts = append(opts, negamax.WithTable())
	}
	return player.NewBotPlayer[*nim.Nim, uint32](name, negamax.New[*nim.Nim, uint32](opts...), uint32(cfg.Depth))
}
