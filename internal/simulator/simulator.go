package simulator

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/DingoEatingFuzz/war/internal/deck"
	"github.com/DingoEatingFuzz/war/internal/gameid"
	"github.com/DingoEatingFuzz/war/internal/history"
	"github.com/DingoEatingFuzz/war/internal/randutil"
	"github.com/DingoEatingFuzz/war/internal/statistics"
	"github.com/DingoEatingFuzz/war/internal/war"
)

// Config holds configuration for running a batch of games
type Config struct {
	Games   int
	Players int
	Shuffle war.Shuffle
	Seed    int64 // game k is seeded with Seed+k
	Workers int
	Logger  *log.Logger
	Clock   quartz.Clock
}

// Report is the outcome of a batch
type Report struct {
	Stats      *statistics.Statistics
	Results    []statistics.GameResult // in game order
	StartedAt  time.Time
	FinishedAt time.Time
}

// Duration returns the wall time the batch took
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Simulator runs independent games of War
type Simulator struct {
	config     Config
	gameLogger *log.Logger
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Workers < 1 {
		config.Workers = 1
	}
	s := &Simulator{config: config}

	// Per-game logging is only useful when debugging a batch
	s.gameLogger = log.NewWithOptions(io.Discard, log.Options{})
	if config.Logger.GetLevel() <= log.DebugLevel {
		s.gameLogger = config.Logger
	}
	return s
}

func (s *Simulator) validate() error {
	if s.config.Games < 1 {
		return fmt.Errorf("%w: games must be positive, got %d", war.ErrInvalidConfig, s.config.Games)
	}
	if s.config.Players < 2 || deck.Size%s.config.Players != 0 {
		return fmt.Errorf("%w: cannot deal %d cards to %d players", war.ErrInvalidConfig, deck.Size, s.config.Players)
	}
	if !s.config.Shuffle.Valid() {
		return fmt.Errorf("%w: unknown shuffle %d", war.ErrInvalidConfig, s.config.Shuffle)
	}
	return nil
}

// Run plays every game and aggregates the results. Results are added to
// the statistics in game order so the report does not depend on how the
// workers were scheduled.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	report := &Report{
		Stats:     &statistics.Statistics{},
		Results:   make([]statistics.GameResult, s.config.Games),
		StartedAt: s.config.Clock.Now(),
	}

	s.config.Logger.Info("Starting batch",
		"games", s.config.Games,
		"players", s.config.Players,
		"shuffle", s.config.Shuffle,
		"seed", s.config.Seed,
		"workers", s.config.Workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for k := 0; k < s.config.Games; k++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := s.playGame(randutil.ForGame(s.config.Seed, k))
			if err != nil {
				return fmt.Errorf("game %d: %w", k+1, err)
			}
			report.Results[k] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, result := range report.Results {
		report.Stats.Add(result)
	}
	if err := report.Stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	report.FinishedAt = s.config.Clock.Now()
	s.config.Logger.Info("Batch complete",
		"games", report.Stats.Games,
		"draws", report.Stats.Draws,
		"mean_rounds", fmt.Sprintf("%.1f", report.Stats.Mean()),
		"duration", report.Duration())

	return report, nil
}

// playGame plays a single game from its own seed
func (s *Simulator) playGame(seed int64) (statistics.GameResult, error) {
	rng := randutil.New(seed)
	id := gameid.Generate()

	engine, err := war.NewEngine(deck.NewDeck(rng), s.config.Players,
		war.WithShuffle(s.config.Shuffle),
		war.WithRand(rng),
		war.WithLogger(s.gameLogger),
		war.WithGameID(id),
	)
	if err != nil {
		return statistics.GameResult{}, err
	}

	h, err := engine.Play()
	if err != nil {
		return statistics.GameResult{}, err
	}

	summary := history.Summarize(h)
	if summary.Draw != engine.Draw() {
		return statistics.GameResult{}, fmt.Errorf("%w: history disagrees with engine on the outcome", war.ErrInvariant)
	}
	result := statistics.GameResult{
		ID:         id,
		Seed:       seed,
		Rounds:     summary.Rounds,
		Wars:       summary.Wars,
		LongestWar: summary.LongestWar,
		BiggestPot: summary.BiggestPot,
		Winner:     summary.Winner,
		Draw:       summary.Draw,
	}
	return result, nil
}

// WriteSummary writes a plain text summary of a batch
func WriteSummary(w io.Writer, report *Report) error {
	stats := report.Stats
	low, high := stats.ConfidenceInterval95()

	var b strings.Builder
	fmt.Fprintf(&b, "\n=== FINAL RESULTS ===\n")
	fmt.Fprintf(&b, "Games played: %d (%s)\n", stats.Games, report.Duration().Round(time.Millisecond))
	fmt.Fprintf(&b, "Draws: %d (%.1f%%)\n", stats.Draws, stats.DrawRate()*100)

	fmt.Fprintf(&b, "\n=== GAME LENGTH (rounds) ===\n")
	fmt.Fprintf(&b, "Mean: %.2f\n", stats.Mean())
	fmt.Fprintf(&b, "Median: %.2f\n", stats.Median())
	fmt.Fprintf(&b, "Std Dev: %.2f\n", stats.StdDev())
	fmt.Fprintf(&b, "95%% CI: [%.2f, %.2f]\n", low, high)
	fmt.Fprintf(&b, "Range: %d to %d\n", stats.MinRounds, stats.MaxRounds)
	fmt.Fprintf(&b, "Percentiles: P5=%.0f, P25=%.0f, P75=%.0f, P95=%.0f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Fprintf(&b, "\n=== WARS ===\n")
	fmt.Fprintf(&b, "Total: %d (%.2f per game)\n", stats.Wars, float64(stats.Wars)/float64(stats.Games))
	fmt.Fprintf(&b, "Longest: %d in one round\n", stats.LongestWar)
	fmt.Fprintf(&b, "Biggest pot: %d cards\n", stats.BiggestPot)

	fmt.Fprintf(&b, "\n=== WINS BY SEAT ===\n")
	seats := make([]int, 0, len(stats.Wins))
	for seat := range stats.Wins {
		seats = append(seats, seat)
	}
	slices.Sort(seats)
	for _, seat := range seats {
		fmt.Fprintf(&b, "Seat %d: %d (%.1f%%)\n", seat, stats.Wins[seat], stats.WinRate(seat)*100)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
