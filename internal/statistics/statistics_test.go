package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.Percentile(0.5))
	assert.Zero(t, stats.WinRate(0))
	assert.Zero(t, stats.DrawRate())
	assert.Error(t, stats.Validate())
}

func TestStatistics_SingleGame(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Seed: 12345, Rounds: 250, Wars: 14, LongestWar: 2, BiggestPot: 18, Winner: 1})

	assert.Equal(t, 1, stats.Games)
	assert.Equal(t, 250.0, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Equal(t, 250.0, stats.Median())
	assert.Equal(t, 250, stats.MinRounds)
	assert.Equal(t, 250, stats.MaxRounds)
	assert.Equal(t, 14, stats.Wars)
	assert.Equal(t, 2, stats.LongestWar)
	assert.Equal(t, 18, stats.BiggestPot)
	assert.Equal(t, 1.0, stats.WinRate(1))
	assert.NoError(t, stats.Validate())
}

func TestStatistics_MultipleGames(t *testing.T) {
	stats := &Statistics{}
	for i, rounds := range []int{100, 200, 300, 400} {
		stats.Add(GameResult{Rounds: rounds, Winner: i % 2})
	}

	assert.Equal(t, 250.0, stats.Mean())
	assert.Equal(t, 250.0, stats.Median())
	assert.InDelta(t, 16666.67, stats.Variance(), 0.01)
	assert.InDelta(t, math.Sqrt(16666.67), stats.StdDev(), 0.01)
	assert.Equal(t, 100.0, stats.Percentile(0))
	assert.Equal(t, 400.0, stats.Percentile(1))
	assert.Equal(t, 175.0, stats.Percentile(0.25))
	assert.Equal(t, 100, stats.MinRounds)
	assert.Equal(t, 400, stats.MaxRounds)
	assert.Equal(t, 0.5, stats.WinRate(0))
	assert.Equal(t, 0.5, stats.WinRate(1))

	low, high := stats.ConfidenceInterval95()
	assert.Less(t, low, stats.Mean())
	assert.Greater(t, high, stats.Mean())
	assert.NoError(t, stats.Validate())
}

func TestStatistics_Draws(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Rounds: 10000, Winner: -1, Draw: true})
	stats.Add(GameResult{Rounds: 300, Winner: 0})

	assert.Equal(t, 1, stats.Draws)
	assert.Equal(t, 0.5, stats.DrawRate())
	assert.Equal(t, 1, stats.Wins[0])
	assert.NotContains(t, stats.Wins, -1)
	assert.NoError(t, stats.Validate())
}

func TestStatistics_ValidateDetectsMismatch(t *testing.T) {
	stats := &Statistics{}
	stats.Add(GameResult{Rounds: 10, Winner: 0})
	stats.Values = nil
	assert.Error(t, stats.Validate())

	stats = &Statistics{}
	stats.Add(GameResult{Rounds: 10, Winner: 0})
	stats.Wins[1] = 3
	assert.Error(t, stats.Validate())
}
