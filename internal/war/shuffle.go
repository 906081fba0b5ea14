package war

import (
	"fmt"
	rand "math/rand/v2"
	"slices"
	"strings"

	"github.com/DingoEatingFuzz/war/internal/deck"
)

// Shuffle selects how a pot is reordered before it goes back into the
// winner's hand. More entropy breaks repeating cycles and shortens games.
type Shuffle int

const (
	// None keeps the pot in play order. Games are fully deterministic and
	// may cycle until the round cap.
	None Shuffle = iota
	// FisherYates applies a uniform random permutation.
	FisherYates
	// Smoosh sorts with a random comparator. The result is not uniform.
	Smoosh
)

type shuffleFunc func(cards []deck.Card, rng *rand.Rand) []deck.Card

var shuffles = map[Shuffle]shuffleFunc{
	None:        shuffleNone,
	FisherYates: shuffleFisherYates,
	Smoosh:      shuffleSmoosh,
}

// String returns the strategy name as accepted by ParseShuffle
func (s Shuffle) String() string {
	switch s {
	case None:
		return "none"
	case FisherYates:
		return "fisher-yates"
	case Smoosh:
		return "smoosh"
	default:
		return fmt.Sprintf("shuffle(%d)", int(s))
	}
}

// Valid reports whether s is a known strategy
func (s Shuffle) Valid() bool {
	_, ok := shuffles[s]
	return ok
}

// Apply returns a reordered copy of cards. The input is never modified.
// A nil rng falls back to the global math/rand/v2 source.
func (s Shuffle) Apply(cards []deck.Card, rng *rand.Rand) []deck.Card {
	fn, ok := shuffles[s]
	if !ok {
		panic(fmt.Sprintf("unknown shuffle strategy %d", int(s)))
	}
	return fn(cards, rng)
}

// ParseShuffle maps a strategy name to a Shuffle
func ParseShuffle(name string) (Shuffle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None, nil
	case "fisher-yates", "fisheryates", "fy":
		return FisherYates, nil
	case "smoosh":
		return Smoosh, nil
	}
	return None, fmt.Errorf("%w: unknown shuffle strategy %q", ErrInvalidConfig, name)
}

func shuffleNone(cards []deck.Card, _ *rand.Rand) []deck.Card {
	return slices.Clone(cards)
}

func shuffleFisherYates(cards []deck.Card, rng *rand.Rand) []deck.Card {
	out := slices.Clone(cards)
	for i := len(out) - 1; i > 0; i-- {
		j := intN(rng, i+1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func shuffleSmoosh(cards []deck.Card, rng *rand.Rand) []deck.Card {
	out := slices.Clone(cards)
	slices.SortStableFunc(out, func(_, _ deck.Card) int {
		return intN(rng, 3) - 1
	})
	return out
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
