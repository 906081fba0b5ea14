package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/DingoEatingFuzz/war/internal/deck"
	"github.com/DingoEatingFuzz/war/internal/war"
)

// Config represents a simulator configuration file:
//
//	log_level = "info"
//
//	game {
//	  players = 2
//	  shuffle = "fisher-yates"
//	  seed    = 42
//	}
//
//	batch {
//	  games   = 1000
//	  workers = 8
//	}
type Config struct {
	LogLevel string         `hcl:"log_level,optional"`
	Game     *GameSettings  `hcl:"game,block"`
	Batch    *BatchSettings `hcl:"batch,block"`
}

// GameSettings configures a single game
type GameSettings struct {
	Players int    `hcl:"players,optional"`
	Shuffle string `hcl:"shuffle,optional"`
	Seed    int64  `hcl:"seed,optional"`
}

// BatchSettings configures a batch of independent games
type BatchSettings struct {
	Games   int `hcl:"games,optional"`
	Workers int `hcl:"workers,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Game: &GameSettings{
			Players: 2,
			Shuffle: war.FisherYates.String(),
		},
		Batch: &BatchSettings{
			Games:   1000,
			Workers: 4,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Game == nil {
		c.Game = def.Game
	}
	if c.Game.Players == 0 {
		c.Game.Players = def.Game.Players
	}
	if c.Game.Shuffle == "" {
		c.Game.Shuffle = def.Game.Shuffle
	}
	if c.Batch == nil {
		c.Batch = def.Batch
	}
	if c.Batch.Games == 0 {
		c.Batch.Games = def.Batch.Games
	}
	if c.Batch.Workers == 0 {
		c.Batch.Workers = def.Batch.Workers
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: invalid log level %q", war.ErrInvalidConfig, c.LogLevel)
	}
	if c.Game == nil || c.Batch == nil {
		return fmt.Errorf("%w: game and batch settings are required", war.ErrInvalidConfig)
	}
	if c.Game.Players < 2 {
		return fmt.Errorf("%w: at least 2 players required, got %d", war.ErrInvalidConfig, c.Game.Players)
	}
	if deck.Size%c.Game.Players != 0 {
		return fmt.Errorf("%w: %d cards cannot be dealt evenly to %d players", war.ErrInvalidConfig, deck.Size, c.Game.Players)
	}
	if _, err := war.ParseShuffle(c.Game.Shuffle); err != nil {
		return err
	}
	if c.Batch.Games < 1 {
		return fmt.Errorf("%w: games must be positive, got %d", war.ErrInvalidConfig, c.Batch.Games)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", war.ErrInvalidConfig, c.Batch.Workers)
	}
	return nil
}

// Shuffle returns the parsed shuffle strategy. Call Validate first.
func (c *Config) Shuffle() war.Shuffle {
	s, _ := war.ParseShuffle(c.Game.Shuffle)
	return s
}

// Level returns the parsed log level, falling back to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
