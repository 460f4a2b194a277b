// Package config loads the settings shared by the binaries. Values come from
// ABSTRACT_GAME_* environment variables, optionally read from a .env file,
// and can be overridden by command line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const Prefix = "ABSTRACT_GAME_"

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Search settings for bots.
	Depth      uint `env:"DEPTH" envDefault:"20"`
	Goroutines int  `env:"GOROUTINES" envDefault:"1"`
	Table      bool `env:"TABLE" envDefault:"true"`

	// Nim settings.
	Sticks  uint   `env:"NIM_STICKS" envDefault:"20"`
	Player1 string `env:"PLAYER1" envDefault:"human"`
	Player2 string `env:"PLAYER2" envDefault:"bot"`

	// Arena settings.
	Games       int    `env:"GAMES" envDefault:"10"`
	Parallelism int    `env:"PARALLELISM" envDefault:"4"`
	OutputDir   string `env:"OUTPUT_DIR" envDefault:"experiments"`
}

// Load reads the environment, then applies flags parsed from args. A missing
// envFile is not an error.
func Load(name string, args []string, envFile string) (Config, error) {
	var cfg Config
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.UintVar(&cfg.Depth, "depth", cfg.Depth, "search depth of bots")
	flags.IntVar(&cfg.Goroutines, "goroutines", cfg.Goroutines, "goroutines per bot search")
	flags.BoolVar(&cfg.Table, "table", cfg.Table, "cache positions in a transposition table")
	flags.UintVar(&cfg.Sticks, "sticks", cfg.Sticks, "sticks at the start of a nim game")
	flags.StringVar(&cfg.Player1, "player1", cfg.Player1, "human or bot")
	flags.StringVar(&cfg.Player2, "player2", cfg.Player2, "human or bot")
	flags.IntVar(&cfg.Games, "games", cfg.Games, "games per arena match up")
	flags.IntVar(&cfg.Parallelism, "parallelism", cfg.Parallelism, "arena games played at once")
	flags.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "directory for arena records")
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Goroutines < 1:
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	case c.Games < 1:
		return fmt.Errorf("games must be positive, got %d", c.Games)
	case c.Parallelism < 1:
		return fmt.Errorf("parallelism must be positive, got %d", c.Parallelism)
	case !validPlayer(c.Player1):
		return fmt.Errorf("player1 must be human or bot, got %q", c.Player1)
	case !validPlayer(c.Player2):
		return fmt.Errorf("player2 must be human or bot, got %q", c.Player2)
	}
	return nil
}

func validPlayer(kind string) bool {
	return kind == "human" || kind == "bot"
}

// SetupLogging points the global logger at w with the configured level.
func (c Config) SetupLogging(w io.Writer) error {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
	return nil
}
