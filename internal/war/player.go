package war

import (
	"github.com/DingoEatingFuzz/war/internal/deck"
)

// Player is a seat at the table. The hand is stored bottom first, so the
// last element is the top card and is the next one dealt.
type Player struct {
	Position int
	hand     []deck.Card
}

// NewPlayer creates a player with an empty hand
func NewPlayer(position int) *Player {
	return &Player{Position: position}
}

// Deal removes and returns the top card
func (p *Player) Deal() (deck.Card, error) {
	if len(p.hand) == 0 {
		return deck.Card{}, ErrEmptyHand
	}
	card := p.hand[len(p.hand)-1]
	p.hand = p.hand[:len(p.hand)-1]
	return card, nil
}

// DealUpTo deals at most n cards, stopping early when the hand runs out.
// The cards are returned in the order they were dealt.
func (p *Player) DealUpTo(n int) []deck.Card {
	cards := make([]deck.Card, 0, n)
	for len(cards) < n && len(p.hand) > 0 {
		card, _ := p.Deal()
		cards = append(cards, card)
	}
	return cards
}

// Win puts cards at the bottom of the hand. They are played only after
// everything already held.
func (p *Player) Win(cards []deck.Card) {
	hand := make([]deck.Card, 0, len(cards)+len(p.hand))
	hand = append(hand, cards...)
	p.hand = append(hand, p.hand...)
}

// Hand returns a copy of the hand, bottom first
func (p *Player) Hand() []deck.Card {
	return append([]deck.Card(nil), p.hand...)
}

// Len returns the number of cards held
func (p *Player) Len() int {
	return len(p.hand)
}

// HasCards returns true while the player is still in the game
func (p *Player) HasCards() bool {
	return len(p.hand) > 0
}

func (p *Player) push(card deck.Card) {
	p.hand = append(p.hand, card)
}

func (p *Player) reset() {
	p.hand = p.hand[:0]
}
