package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameResult represents the outcome of a single game of War
type GameResult struct {
	ID         string // Game identifier
	Seed       int64  // RNG seed for this game (for replay)
	Rounds     int    // Completed rounds
	Wars       int    // Wars fought across all rounds
	LongestWar int    // Most wars within one round
	BiggestPot int    // Largest pot in cards
	Winner     int    // Winning seat, -1 on a draw
	Draw       bool   // Stopped at the round cap
}

// Statistics aggregates game lengths and outcomes over many games
type Statistics struct {
	Games      int
	SumRounds  float64
	SumRounds2 float64   // Sum of squares for variance calculation
	Values     []float64 // Round counts, for median/percentile calculation

	Draws      int
	Wars       int
	LongestWar int
	BiggestPot int
	MaxRounds  int
	MinRounds  int

	Wins map[int]int // Games won per seat
}

// Mean returns the mean number of rounds per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumRounds / float64(s.Games)
}

// Variance returns the sample variance of round counts
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumRounds2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of round counts
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	rounds := float64(result.Rounds)
	s.Games++
	s.SumRounds += rounds
	s.SumRounds2 += rounds * rounds
	s.Values = append(s.Values, rounds)

	if s.Games == 1 || result.Rounds < s.MinRounds {
		s.MinRounds = result.Rounds
	}
	if result.Rounds > s.MaxRounds {
		s.MaxRounds = result.Rounds
	}

	s.Wars += result.Wars
	if result.LongestWar > s.LongestWar {
		s.LongestWar = result.LongestWar
	}
	if result.BiggestPot > s.BiggestPot {
		s.BiggestPot = result.BiggestPot
	}

	if result.Draw {
		s.Draws++
		return
	}
	if s.Wins == nil {
		s.Wins = make(map[int]int)
	}
	s.Wins[result.Winner]++
}

// Median returns the median round count
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()
	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the round count at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := s.sorted()

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// WinRate returns the share of all games won by seat
func (s *Statistics) WinRate(seat int) float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins[seat]) / float64(s.Games)
}

// DrawRate returns the share of games that hit the round cap
func (s *Statistics) DrawRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Draws) / float64(s.Games)
}

// Validate checks that the aggregated counts are consistent
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)",
			len(s.Values), s.Games)
	}

	decided := 0
	for _, n := range s.Wins {
		decided += n
	}
	if decided+s.Draws != s.Games {
		return fmt.Errorf("wins (%d) plus draws (%d) does not match games count (%d)",
			decided, s.Draws, s.Games)
	}
	return nil
}

func (s *Statistics) sorted() []float64 {
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return sorted
}
