package war

import (
	"slices"

	"github.com/DingoEatingFuzz/war/internal/deck"
)

// SetHand replaces a player's hand. cards are given in the order they will
// be dealt, top card first. Intended for tests and replays of fixed
// positions.
func (p *Player) SetHand(cards []deck.Card) {
	hand := slices.Clone(cards)
	slices.Reverse(hand)
	p.hand = hand
}
