package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/DingoEatingFuzz/war/internal/randutil"
	"github.com/DingoEatingFuzz/war/internal/simulator"
)

// BatchCmd simulates many independent games
type BatchCmd struct {
	GameFlags

	Games   *int `short:"n" env:"WAR_GAMES" help:"Number of games to simulate"`
	Workers *int `short:"w" env:"WAR_WORKERS" help:"Games played concurrently"`
}

func (c *BatchCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	c.apply(cfg)
	if c.Games != nil {
		cfg.Batch.Games = *c.Games
	}
	if c.Workers != nil {
		cfg.Batch.Workers = *c.Workers
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := g.logger(cfg)

	seed := randutil.Seed(cfg.Game.Seed)
	ctx, stop := setupSignalHandler(logger)
	defer stop()

	sim := simulator.New(simulator.Config{
		Games:   cfg.Batch.Games,
		Players: cfg.Game.Players,
		Shuffle: cfg.Shuffle(),
		Seed:    seed,
		Workers: cfg.Batch.Workers,
		Logger:  logger.WithPrefix("batch"),
		Clock:   quartz.NewReal(),
	})

	report, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	return simulator.WriteSummary(os.Stdout, report)
}

// setupSignalHandler creates a context that is cancelled on interrupt
// signals. stop releases the signal subscription.
func setupSignalHandler(logger *log.Logger) (ctx context.Context, stop func()) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, stopping batch", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
