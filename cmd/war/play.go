package main

import (
	"io"
	"os"

	"github.com/DingoEatingFuzz/war/internal/deck"
	"github.com/DingoEatingFuzz/war/internal/display"
	"github.com/DingoEatingFuzz/war/internal/fileutil"
	"github.com/DingoEatingFuzz/war/internal/gameid"
	"github.com/DingoEatingFuzz/war/internal/history"
	"github.com/DingoEatingFuzz/war/internal/randutil"
	"github.com/DingoEatingFuzz/war/internal/war"
)

// PlayCmd plays one game and prints its outcome
type PlayCmd struct {
	GameFlags

	Replay bool   `short:"r" help:"Print every round"`
	Out    string `short:"o" type:"path" help:"Write the game record as JSON"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := g.logger(cfg)

	seed := randutil.Seed(cfg.Game.Seed)
	logger.Info("Using seed", "seed", seed)
	rng := randutil.New(seed)

	engine, err := war.NewEngine(deck.NewDeck(rng), cfg.Game.Players,
		war.WithShuffle(cfg.Shuffle()),
		war.WithRand(rng),
		war.WithLogger(logger),
		war.WithGameID(gameid.Generate()),
	)
	if err != nil {
		return err
	}

	h, err := engine.Play()
	if err != nil {
		return err
	}

	var opts []display.Option
	if g.NoColor {
		opts = append(opts, display.WithNoColor())
	}
	r := display.NewRenderer(os.Stdout, opts...)
	if err := r.Header(engine, seed); err != nil {
		return err
	}
	if c.Replay {
		if err := r.Replay(h); err != nil {
			return err
		}
	}
	if err := r.Summary(engine, h); err != nil {
		return err
	}

	if c.Out != "" {
		record := history.NewGameRecord(engine, h, seed)
		err := fileutil.WriteAtomic(c.Out, 0o644, func(w io.Writer) error {
			return history.Encode(w, record)
		})
		if err != nil {
			return err
		}
		logger.Info("Wrote game record", "path", c.Out, "rounds", record.Count)
	}
	return nil
}
