package deck

import (
	rand "math/rand/v2"
)

// Size is the number of cards in a standard deck
const Size = 52

// Deck represents a deck of playing cards
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeck creates a standard 52-card deck in suit-major order
// (A♠..K♠, A♥..K♥, A♦..K♦, A♣..K♣). It is not shuffled.
//
// A nil rng falls back to the global math/rand/v2 source.
func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	for i := 0; i < Size; i++ {
		deck.cards = append(deck.cards, NewCard(Suit(i/13), Rank(i%13+1)))
	}
	return deck
}

// Shuffle randomizes the order of cards in the deck
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Cards returns a copy of the cards in their current order
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Stacked is a card source with a fixed order. Shuffle is a no-op, which
// makes deals reproducible in tests and replays.
type Stacked struct {
	cards []Card
}

// NewStacked returns a source that always yields cards in the given order
func NewStacked(cards []Card) *Stacked {
	return &Stacked{cards: append([]Card(nil), cards...)}
}

// Shuffle does nothing
func (s *Stacked) Shuffle() {}

// Cards returns a copy of the stacked cards
func (s *Stacked) Cards() []Card {
	return append([]Card(nil), s.cards...)
}

// Len returns the number of stacked cards
func (s *Stacked) Len() int {
	return len(s.cards)
}
