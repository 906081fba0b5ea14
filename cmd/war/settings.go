package main

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/DingoEatingFuzz/war/internal/config"
)

// GameFlags override the game block of the config file
type GameFlags struct {
	Players *int    `short:"p" env:"WAR_PLAYERS" help:"Number of players (must divide 52)"`
	Shuffle *string `short:"s" env:"WAR_SHUFFLE" help:"Pot shuffle: none, fisher-yates, smoosh"`
	Seed    *int64  `env:"WAR_SEED" help:"RNG seed (0 for random)"`
}

func (f GameFlags) apply(cfg *config.Config) {
	if f.Players != nil {
		cfg.Game.Players = *f.Players
	}
	if f.Shuffle != nil {
		cfg.Game.Shuffle = *f.Shuffle
	}
	if f.Seed != nil {
		cfg.Game.Seed = *f.Seed
	}
}

// load reads the config file and applies global overrides.
// Command flags are applied by the caller before validation.
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// logger configures charmbracelet/log on stderr so stdout stays clean for
// game output
func (g *Globals) logger(cfg *config.Config) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
	})
}
